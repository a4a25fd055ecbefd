package wikidata

// SPARQLAPIResponse is the Wikidata Query Service JSON result envelope.
// Every value comes wrapped in a {type, value} literal.
type SPARQLAPIResponse struct {
	Results struct {
		Bindings []Binding `json:"bindings"`
	} `json:"results"`
}

type Binding struct {
	Item             Literal  `json:"item"`
	ItemLabel        *Literal `json:"itemLabel"`
	Lat              Literal  `json:"lat"`
	Lon              Literal  `json:"lon"`
	InstanceOfLabels *Literal `json:"instanceOfLabels"`
	Sitelinks        *Literal `json:"sitelinks"`
}

type Literal struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}
