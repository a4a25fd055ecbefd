package googleplaces

// NearbySearchAPIResponse is the Places Nearby Search response.
type NearbySearchAPIResponse struct {
	Results []PlaceResult `json:"results"`
	Status  string        `json:"status"`
}

type PlaceResult struct {
	Name     string `json:"name"`
	Geometry struct {
		Location Location `json:"location"`
	} `json:"geometry"`
	Rating           float64 `json:"rating"`
	UserRatingsTotal int     `json:"user_ratings_total"`
	PlaceId          string  `json:"place_id"`
}

type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}
