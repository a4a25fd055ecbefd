package overpass

// QueryAPIResponse is the Overpass interpreter response for an `out
// center` query. Nodes carry lat/lon directly; ways and relations carry a
// computed center instead.
type QueryAPIResponse struct {
	Elements []Element `json:"elements"`
}

type Element struct {
	Type   string  `json:"type"`
	Id     int64   `json:"id"`
	Lat    float64 `json:"lat"`
	Lon    float64 `json:"lon"`
	Center *struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"center"`
	Tags map[string]string `json:"tags"`
}

// Position returns the element's own coordinates for nodes, or the center
// for ways and relations. Missing coordinates come back as zeros.
func (e Element) Position() (float64, float64) {
	if e.Lat != 0 || e.Lon != 0 {
		return e.Lat, e.Lon
	}
	if e.Center != nil {
		return e.Center.Lat, e.Center.Lon
	}
	return 0, 0
}
