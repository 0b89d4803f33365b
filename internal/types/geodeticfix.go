package types

// GeodeticFix holds the derived geographic quantities for one epoch.
// Altitude uses the mean-Earth-radius spherical approximation, so values near
// the surface can go slightly negative.
type GeodeticFix struct {
	Epoch       string  `json:"epoch" example:"2024-079T00:56:00.000Z"`
	Latitude    float64 `json:"latitude" example:"39.2277"`
	Longitude   float64 `json:"longitude" example:"-111.8648"`
	AltitudeKm  float64 `json:"altitude_km" example:"420.339"`
	Geoposition string  `json:"geoposition" example:"Sanpete County, Utah, United States"`
	Timezone    string  `json:"timezone,omitempty" example:"America/Denver"`
}

// NowReport is the payload for the nearest-to-now query: the matched state
// vector plus every derived quantity. SkippedEpochs counts feed records whose
// epoch could not be parsed during the nearest-epoch search.
type NowReport struct {
	StateVector StateVector `json:"state_vector"`
	SpeedKmS    float64     `json:"speed_km_s" example:"7.6603"`
	GeodeticFix
	SkippedEpochs int `json:"skipped_epochs,omitempty"`
}

// Speed is the instantaneous-speed payload for a single epoch.
type Speed struct {
	Epoch    string  `json:"epoch"`
	SpeedKmS float64 `json:"speed_km_s" example:"7.6603"`
}
