package tracker

import "errors"

// LocationUnavailable is embedded in place of a place name when the reverse
// geocoder cannot resolve one on the degradable path.
const LocationUnavailable = "Location currently unavailable"

var (
	// ErrDataUnavailable means the ephemeris feed could not be fetched or
	// decoded. Fatal for the whole query.
	ErrDataUnavailable = errors.New("ephemeris data unavailable")

	// ErrNotFound means the requested epoch is absent from the current set.
	ErrNotFound = errors.New("epoch not found")

	// ErrEmptySet means the feed contained no state vectors to search.
	ErrEmptySet = errors.New("ephemeris set is empty")

	// ErrGeopositionUnavailable means the reverse-geocoding call itself
	// failed (network, quota, malformed response). Distinct from the
	// no-match case, which yields the LocationUnavailable sentinel.
	ErrGeopositionUnavailable = errors.New("geoposition lookup failed")
)
