package geodesy

import (
	"math"
	"testing"
	"time"

	"iss-tracker/internal/types"
)

// Reference sample from the live feed: the ISS over Sanpete County, Utah.
var (
	referencePosition = types.Vector3{X: 719.875689675049, Y: 5211.35844946617, Z: 4294.87217744873}
	referenceEpoch    = "2024-079T00:56:00.000Z"
)

func relClose(got, want, relTol float64) bool {
	return math.Abs(got-want) <= relTol*math.Max(math.Abs(got), math.Abs(want))
}

func TestLatitude(t *testing.T) {
	tests := []struct {
		name     string
		position types.Vector3
		want     float64
	}{
		{
			name:     "reference vector",
			position: referencePosition,
			want:     39.227672510032775,
		},
		{
			name:     "equatorial plane",
			position: types.Vector3{X: 6771, Y: 0, Z: 0},
			want:     0,
		},
		{
			name:     "north pole axis",
			position: types.Vector3{X: 0, Y: 0, Z: 6771},
			want:     90,
		},
		{
			name:     "south pole axis",
			position: types.Vector3{X: 0, Y: 0, Z: -6771},
			want:     -90,
		},
		{
			name:     "degenerate origin",
			position: types.Vector3{},
			want:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Latitude(tt.position)
			if !relClose(got, tt.want, 1e-3) && got != tt.want {
				t.Errorf("Latitude(%v) = %v, want %v", tt.position, got, tt.want)
			}
		})
	}
}

func TestAltitudeKm(t *testing.T) {
	got := AltitudeKm(referencePosition)
	want := 420.33899834097247
	if !relClose(got, want, 1e-3) {
		t.Errorf("AltitudeKm(%v) = %v, want %v", referencePosition, got, want)
	}

	// A point on the mean sphere has altitude zero.
	surface := types.Vector3{X: MeanEarthRadiusKm, Y: 0, Z: 0}
	if got := AltitudeKm(surface); math.Abs(got) > 1e-9 {
		t.Errorf("AltitudeKm(surface point) = %v, want 0", got)
	}
}

func TestLongitude(t *testing.T) {
	epoch, err := ParseEpoch(referenceEpoch)
	if err != nil {
		t.Fatalf("ParseEpoch(%q) unexpected error: %v", referenceEpoch, err)
	}

	got := Longitude(referencePosition, epoch)
	want := -111.86483176776528
	if !relClose(got, want, 1e-3) {
		t.Errorf("Longitude(%v, %s) = %v, want %v", referencePosition, referenceEpoch, got, want)
	}
	if got < -180 || got > 180 {
		t.Errorf("Longitude out of range: %v", got)
	}
}

func TestLongitudeAlwaysInRange(t *testing.T) {
	// The rotation term sweeps up to +/-180 degrees across a day; the raw
	// inertial angle adds another +/-180. Sweep both.
	positions := []types.Vector3{
		{X: 6771, Y: 0, Z: 0},
		{X: -6771, Y: 0, Z: 0},
		{X: 0, Y: 6771, Z: 0},
		{X: 0, Y: -6771, Z: 0},
		{X: 4000, Y: -4000, Z: 2000},
	}
	for hour := 0; hour < 24; hour++ {
		for _, p := range positions {
			epoch := time.Date(2024, time.March, 19, hour, 37, 0, 0, time.UTC)
			got := Longitude(p, epoch)
			if got < -180 || got > 180 {
				t.Fatalf("Longitude(%v, hour %d) = %v, out of [-180, 180]", p, hour, got)
			}
		}
	}
}

func TestWrapLongitude(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{name: "in range positive", in: 150, want: 150},
		{name: "in range negative", in: -150, want: -150},
		{name: "zero", in: 0, want: 0},
		{name: "boundary high", in: 180, want: 180},
		{name: "boundary low", in: -180, want: -180},
		{name: "fold above", in: 190, want: -170},
		{name: "fold below", in: -190, want: 170},
		{name: "large excursion above", in: 359, want: -1},
		{name: "large excursion below", in: -359, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WrapLongitude(tt.in)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("WrapLongitude(%v) = %v, want %v", tt.in, got, tt.want)
			}
			if got < -180 || got > 180 {
				t.Errorf("WrapLongitude(%v) = %v, out of [-180, 180]", tt.in, got)
			}

			// Wrapping twice equals wrapping once.
			if again := WrapLongitude(got); again != got {
				t.Errorf("WrapLongitude not idempotent: %v -> %v -> %v", tt.in, got, again)
			}
		})
	}
}

func TestSpeedKmS(t *testing.T) {
	tests := []struct {
		name     string
		velocity types.Vector3
		want     float64
	}{
		{
			name:     "axis aligned",
			velocity: types.Vector3{X: 3, Y: 4, Z: 0},
			want:     5,
		},
		{
			name:     "typical orbital velocity",
			velocity: types.Vector3{X: -3.2, Y: 5.1, Z: -4.7},
			want:     math.Sqrt(3.2*3.2 + 5.1*5.1 + 4.7*4.7),
		},
		{
			name:     "at rest",
			velocity: types.Vector3{},
			want:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SpeedKmS(tt.velocity)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("SpeedKmS(%v) = %v, want %v", tt.velocity, got, tt.want)
			}
		})
	}
}
