package types

// Vector3 is a Cartesian triple in the Earth-centered inertial frame.
type Vector3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// StateVector is a single ephemeris sample: position in km and velocity in
// km/s, tagged with the feed's day-of-year epoch string (e.g.
// "2024-079T00:56:00.000Z").
type StateVector struct {
	Epoch    string  `json:"epoch" example:"2024-079T00:56:00.000Z"`
	Position Vector3 `json:"position"`
	Velocity Vector3 `json:"velocity"`
}

func NewStateVector(epoch string, position, velocity Vector3) StateVector {
	return StateVector{
		Epoch:    epoch,
		Position: position,
		Velocity: velocity,
	}
}
