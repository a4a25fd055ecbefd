package nominatim

// ReverseAPIResponse is the Nominatim reverse geocoding response. The
// address block is sparse; which fields are present depends on the place.
type ReverseAPIResponse struct {
	PlaceId     int     `json:"place_id"`
	Licence     string  `json:"licence"`
	OsmType     string  `json:"osm_type"`
	OsmId       int64   `json:"osm_id"`
	Lat         string  `json:"lat"`
	Lon         string  `json:"lon"`
	Name        string  `json:"name"`
	DisplayName string  `json:"display_name"`
	Address     Address `json:"address"`
}

type Address struct {
	CityDistrict string `json:"city_district"`
	Town         string `json:"town"`
	City         string `json:"city"`
	Province     string `json:"province"`
	State        string `json:"state"`
	Region       string `json:"region"`
	County       string `json:"county"`
	Country      string `json:"country"`
	CountryCode  string `json:"country_code"`
}
