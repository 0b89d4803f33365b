// Package geodesy converts Earth-centered inertial state vectors to geodetic
// coordinates. The transforms are the point-wise geometric ones used by the
// NASA ephemeris tooling: latitude and altitude come straight from the
// position vector, longitude additionally compensates for Earth's rotation
// using the epoch's UTC hour and minute.
package geodesy

import (
	"math"
	"time"

	"iss-tracker/internal/types"
)

// MeanEarthRadiusKm is the IUGG mean Earth radius. Altitude derived from it is
// a spherical approximation, not a true ellipsoidal height; that is a known
// accuracy limitation of this pipeline.
const MeanEarthRadiusKm = 6371.0088

// degreesPerHour is Earth's rotation rate used by the longitude compensation.
const degreesPerHour = 360.0 / 24.0

// Latitude returns the geocentric latitude in degrees for a position in km.
// For x=y=0 the atan2 convention yields +/-90 by the sign of z, and 0 when z
// is also zero.
func Latitude(p types.Vector3) float64 {
	return radToDeg(math.Atan2(p.Z, math.Sqrt(p.X*p.X+p.Y*p.Y)))
}

// AltitudeKm returns the height above the mean Earth radius in km.
func AltitudeKm(p types.Vector3) float64 {
	return math.Sqrt(p.X*p.X+p.Y*p.Y+p.Z*p.Z) - MeanEarthRadiusKm
}

// Longitude returns the longitude in degrees for a position in km at the given
// UTC instant. The inertial-frame angle is shifted by the hours elapsed since
// the reference convention where longitude 0 aligns at hour 12, then wrapped
// into [-180, 180].
func Longitude(p types.Vector3, epoch time.Time) float64 {
	utc := epoch.UTC()
	hours := float64(utc.Hour()-12) + float64(utc.Minute())/60.0
	raw := radToDeg(math.Atan2(p.Y, p.X)) - hours*degreesPerHour
	return WrapLongitude(raw)
}

// WrapLongitude folds a longitude that exceeds +/-180 degrees back into range.
// This is a single fold, not a modulo: it assumes the raw value never exceeds
// +/-360 in magnitude, which holds for Longitude's inputs because the rotation
// term is bounded by +/-180. The fold is idempotent, so applying it to an
// already-wrapped value is a no-op.
func WrapLongitude(deg float64) float64 {
	if deg > 180 {
		return -180 + (deg - 180)
	}
	if deg < -180 {
		return 180 + (deg + 180)
	}
	return deg
}

// SpeedKmS returns the magnitude of a velocity vector in km/s.
func SpeedKmS(v types.Vector3) float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

func radToDeg(rad float64) float64 {
	return rad * 180.0 / math.Pi
}
