package types

// Point is the normalized attraction record produced by every source
// adapter and consumed by the GPX serializer. Description carries a
// source-specific annotation (rating/review counts, tag dump, links).
type Point struct {
	Name        string `json:"name"`
	Coordinates Coords `json:"coordinates"`
	Description string `json:"description"`
}
