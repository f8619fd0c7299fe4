package geocoder

// Location результат геокодирования адреса
type Location struct {
	Latitude  float64
	Longitude float64
}

// geocodeResponse ответ Mapbox Geocoding API (forward geocoding)
type geocodeResponse struct {
	Features []feature `json:"features"`
}

type feature struct {
	// Center координаты в порядке [longitude, latitude]
	Center    []float64 `json:"center"`
	Relevance float64   `json:"relevance"`
}
