// Package timezone resolves the IANA timezone under a ground-track point.
package timezone

import (
	"fmt"
	"sync"

	"github.com/ringsaturn/tzf"
)

// Service looks up the timezone name for a coordinate pair.
type Service interface {
	Lookup(latitude, longitude float64) (string, error)
}

type service struct {
	finder tzf.F
	mu     sync.RWMutex
}

var (
	instance *service
	once     sync.Once
)

// NewService creates or returns the singleton service. The tzf finder loads
// the compressed timezone shapes into memory once, so it is shared.
func NewService() (Service, error) {
	var err error
	once.Do(func() {
		finder, findErr := tzf.NewDefaultFinder()
		if findErr != nil {
			err = fmt.Errorf("failed to initialize timezone finder: %w", findErr)
			return
		}
		instance = &service{finder: finder}
	})
	if err != nil {
		return nil, err
	}
	return instance, nil
}

// Lookup returns the IANA timezone name (e.g. "America/Denver", or "Etc/GMT+8"
// over open ocean) for the given coordinates.
func (s *service) Lookup(latitude, longitude float64) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tz := s.finder.GetTimezoneName(longitude, latitude)
	if tz == "" {
		return "", fmt.Errorf("could not determine timezone for coordinates lat=%f, lon=%f", latitude, longitude)
	}

	return tz, nil
}
