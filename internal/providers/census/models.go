package census

// Coordinates is a geographic point from a geocoder match. The Census API
// reports longitude as x and latitude as y.
type Coordinates struct {
	Latitude  float64 `json:"y"`
	Longitude float64 `json:"x"`
}

// GeocodeAPIResponse mirrors the onelineaddress geocoder response, reduced
// to the fields this service reads.
type GeocodeAPIResponse struct {
	Result struct {
		AddressMatches []AddressMatch `json:"addressMatches"`
	} `json:"result"`
}

// AddressMatch is a single candidate match for the queried address.
type AddressMatch struct {
	MatchedAddress string      `json:"matchedAddress"`
	Coordinates    Coordinates `json:"coordinates"`
}
