package tripadvisor

// LocationSearchAPIResponse is the nearby location search response. Only
// the location IDs are useful; everything else comes from the details call.
type LocationSearchAPIResponse struct {
	Data []struct {
		LocationId string `json:"location_id"`
		Name       string `json:"name"`
	} `json:"data"`
}

// LocationDetailsAPIResponse is the per-location details response. The
// content API serializes numbers as strings.
type LocationDetailsAPIResponse struct {
	LocationId string `json:"location_id"`
	Name       string `json:"name"`
	Latitude   string `json:"latitude"`
	Longitude  string `json:"longitude"`
	Rating     string `json:"rating"`
	NumReviews string `json:"num_reviews"`
	WebUrl     string `json:"web_url"`
}
