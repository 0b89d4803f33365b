// Package tracker answers the derived ISS queries: state-vector lookup,
// instantaneous speed, geoposition at a given epoch, and the full picture for
// the epoch nearest to now. Every query re-fetches the feed, so no state is
// shared across requests.
package tracker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"iss-tracker/internal/config"
	"iss-tracker/internal/geodesy"
	"iss-tracker/internal/observability"
	"iss-tracker/internal/providers/nasa"
	"iss-tracker/internal/providers/openstreetmap"
	"iss-tracker/internal/timezone"
	"iss-tracker/internal/types"
)

// EphemerisProvider fetches one immutable snapshot of the OEM feed.
type EphemerisProvider interface {
	GetEphemeris(ctx context.Context) (*nasa.EphemerisSnapshot, error)
}

// ReverseGeocodeProvider resolves coordinates to a place description.
type ReverseGeocodeProvider interface {
	Reverse(ctx context.Context, latitude, longitude float64) (*openstreetmap.ReverseAPIResponse, error)
}

// Service exposes the tracker queries consumed by the HTTP layer.
type Service interface {
	// ListEpochs returns a window of the current ephemeris set. A limit of
	// zero or less returns everything from offset onward.
	ListEpochs(ctx context.Context, limit, offset int) ([]types.StateVector, error)
	// GetStateVector returns the record whose epoch matches exactly.
	GetStateVector(ctx context.Context, epoch string) (*types.StateVector, error)
	// GetSpeed returns the velocity magnitude for an exact epoch match.
	GetSpeed(ctx context.Context, epoch string) (*types.Speed, error)
	// GetLocation derives latitude, longitude, altitude, and geoposition for
	// an exact epoch match. A geocoding failure is fatal on this path.
	GetLocation(ctx context.Context, epoch string) (*types.GeodeticFix, error)
	// GetNow locates the record nearest to the current UTC instant and
	// derives everything from it. A geocoding failure degrades to the
	// LocationUnavailable sentinel instead of failing the response.
	GetNow(ctx context.Context) (*types.NowReport, error)

	GetFeedHeader(ctx context.Context) (*types.FeedHeader, error)
	GetFeedMetadata(ctx context.Context) (*types.FeedMetadata, error)
	GetFeedComments(ctx context.Context) ([]string, error)
}

type trackerService struct {
	feed      EphemerisProvider
	geocoder  ReverseGeocodeProvider
	timezones timezone.Service
	metrics   *observability.Collector
	logger    *slog.Logger
	tracer    trace.Tracer
	now       func() time.Time
}

// NewService creates a tracker service backed by the real NASA and Nominatim
// clients.
func NewService(cfg *config.Config, metrics *observability.Collector, logger *slog.Logger) (Service, error) {
	tzSvc, err := timezone.NewService()
	if err != nil {
		return nil, fmt.Errorf("failed to create timezone service: %w", err)
	}

	geocoder := openstreetmap.NewClient(
		cfg.Geocoder.BaseURL,
		cfg.Geocoder.Zoom,
		cfg.Geocoder.Language,
		cfg.Geocoder.UserAgent,
	)

	return NewServiceWithProviders(nasa.NewClient(cfg.Feed.URL, cfg.FeedTimeout(), logger), geocoder, tzSvc, metrics, logger), nil
}

// NewServiceWithProviders creates a tracker service with custom providers.
// This is useful for testing with mock providers.
func NewServiceWithProviders(
	feed EphemerisProvider,
	geocoder ReverseGeocodeProvider,
	timezones timezone.Service,
	metrics *observability.Collector,
	logger *slog.Logger,
) Service {
	return &trackerService{
		feed:      feed,
		geocoder:  geocoder,
		timezones: timezones,
		metrics:   metrics,
		logger:    logger.With("component", "tracker-service"),
		tracer:    otel.Tracer("iss-tracker/tracker"),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *trackerService) ListEpochs(ctx context.Context, limit, offset int) ([]types.StateVector, error) {
	snapshot, err := s.fetchEphemeris(ctx)
	if err != nil {
		return nil, err
	}

	records := snapshot.StateVectors
	if offset < 0 {
		offset = 0
	}
	if offset >= len(records) {
		return []types.StateVector{}, nil
	}
	records = records[offset:]
	if limit > 0 && limit < len(records) {
		records = records[:limit]
	}
	return records, nil
}

func (s *trackerService) GetStateVector(ctx context.Context, epoch string) (*types.StateVector, error) {
	snapshot, err := s.fetchEphemeris(ctx)
	if err != nil {
		return nil, err
	}
	return findStateVector(snapshot.StateVectors, epoch)
}

func (s *trackerService) GetSpeed(ctx context.Context, epoch string) (*types.Speed, error) {
	snapshot, err := s.fetchEphemeris(ctx)
	if err != nil {
		return nil, err
	}

	record, err := findStateVector(snapshot.StateVectors, epoch)
	if err != nil {
		return nil, err
	}

	return &types.Speed{
		Epoch:    record.Epoch,
		SpeedKmS: geodesy.SpeedKmS(record.Velocity),
	}, nil
}

func (s *trackerService) GetLocation(ctx context.Context, epoch string) (*types.GeodeticFix, error) {
	snapshot, err := s.fetchEphemeris(ctx)
	if err != nil {
		return nil, err
	}

	record, err := findStateVector(snapshot.StateVectors, epoch)
	if err != nil {
		return nil, err
	}

	parsed, err := geodesy.ParseEpoch(record.Epoch)
	if err != nil {
		// Latitude and altitude do not need the epoch, but the
		// longitude does; a record with a malformed epoch cannot yield
		// a complete fix.
		return nil, err
	}

	fix := s.deriveFix(record, parsed)

	geoposition, err := s.resolveGeoposition(ctx, fix.Latitude, fix.Longitude)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGeopositionUnavailable, err)
	}
	fix.Geoposition = geoposition

	return &fix, nil
}

func (s *trackerService) GetNow(ctx context.Context) (*types.NowReport, error) {
	ctx, span := s.tracer.Start(ctx, "tracker.GetNow")
	defer span.End()

	snapshot, err := s.fetchEphemeris(ctx)
	if err != nil {
		return nil, err
	}

	record, parsed, skipped, err := nearestEpoch(snapshot.StateVectors, s.now())
	if err != nil {
		return nil, err
	}
	if skipped > 0 {
		s.logger.Warn("skipped records with malformed epochs during nearest search", "skipped", skipped)
	}

	fix := s.deriveFix(record, parsed)

	// Geocoding failure never aborts the now query; the sentinel stands in.
	geoposition, err := s.resolveGeoposition(ctx, fix.Latitude, fix.Longitude)
	if err != nil {
		s.logger.Warn("geoposition unavailable for now query",
			"epoch", record.Epoch,
			"error", err,
		)
		geoposition = LocationUnavailable
	}
	fix.Geoposition = geoposition

	return &types.NowReport{
		StateVector:   record,
		SpeedKmS:      geodesy.SpeedKmS(record.Velocity),
		GeodeticFix:   fix,
		SkippedEpochs: skipped,
	}, nil
}

func (s *trackerService) GetFeedHeader(ctx context.Context) (*types.FeedHeader, error) {
	snapshot, err := s.fetchEphemeris(ctx)
	if err != nil {
		return nil, err
	}
	return &snapshot.Header, nil
}

func (s *trackerService) GetFeedMetadata(ctx context.Context) (*types.FeedMetadata, error) {
	snapshot, err := s.fetchEphemeris(ctx)
	if err != nil {
		return nil, err
	}
	return &snapshot.Metadata, nil
}

func (s *trackerService) GetFeedComments(ctx context.Context) ([]string, error) {
	snapshot, err := s.fetchEphemeris(ctx)
	if err != nil {
		return nil, err
	}
	return snapshot.Comments, nil
}

// fetchEphemeris retrieves one snapshot, folding any provider failure into the
// single DataUnavailable kind.
func (s *trackerService) fetchEphemeris(ctx context.Context) (*nasa.EphemerisSnapshot, error) {
	ctx, span := s.tracer.Start(ctx, "tracker.fetchEphemeris")
	defer span.End()

	snapshot, err := s.feed.GetEphemeris(ctx)
	if err != nil {
		s.metrics.ObserveFeedFetch(observability.OutcomeError)
		span.RecordError(err)
		s.logger.Error("ephemeris fetch failed", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}

	s.metrics.ObserveFeedFetch(observability.OutcomeOK)
	span.SetAttributes(
		attribute.Int("ephemeris.records", len(snapshot.StateVectors)),
		attribute.Int("ephemeris.dropped", snapshot.Dropped),
	)
	return snapshot, nil
}

// deriveFix computes the geodetic quantities for a record. Geoposition and
// timezone are filled in by the caller; timezone degrades to empty when the
// subpoint cannot be resolved.
func (s *trackerService) deriveFix(record types.StateVector, epoch time.Time) types.GeodeticFix {
	fix := types.GeodeticFix{
		Epoch:      record.Epoch,
		Latitude:   geodesy.Latitude(record.Position),
		Longitude:  geodesy.Longitude(record.Position, epoch),
		AltitudeKm: geodesy.AltitudeKm(record.Position),
	}

	if s.timezones != nil {
		tz, err := s.timezones.Lookup(fix.Latitude, fix.Longitude)
		if err != nil {
			s.logger.Debug("timezone lookup failed", "epoch", record.Epoch, "error", err)
		} else {
			fix.Timezone = tz
		}
	}

	return fix
}

// resolveGeoposition maps coordinates to a place description. A point the
// geocoder cannot match (open ocean) yields the LocationUnavailable sentinel
// without an error; a failed call yields an error for the caller to classify.
func (s *trackerService) resolveGeoposition(ctx context.Context, latitude, longitude float64) (string, error) {
	ctx, span := s.tracer.Start(ctx, "tracker.resolveGeoposition")
	defer span.End()

	resp, err := s.geocoder.Reverse(ctx, latitude, longitude)
	if err != nil {
		s.metrics.ObserveGeocode(observability.OutcomeError)
		span.RecordError(err)
		return "", err
	}

	if resp == nil || resp.Error != "" || resp.DisplayName == "" {
		s.metrics.ObserveGeocode(observability.OutcomeNoMatch)
		return LocationUnavailable, nil
	}

	s.metrics.ObserveGeocode(observability.OutcomeOK)
	return resp.DisplayName, nil
}

// findStateVector scans for an exact epoch string match; the lookup is not
// time-tolerant.
func findStateVector(records []types.StateVector, epoch string) (*types.StateVector, error) {
	for i := range records {
		if records[i].Epoch == epoch {
			return &records[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, epoch)
}
