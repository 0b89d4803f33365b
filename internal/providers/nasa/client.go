package nasa

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"iss-tracker/internal/types"
)

// Feed docs: https://spotthestation.nasa.gov/trajectory_data.cfm
// The OEM ephemeris is republished every few hours at a fixed S3 location.
const (
	defaultFeedURL = "https://nasa-public-data.s3.amazonaws.com/iss-coords/current/ISS_OEM/ISS.OEM_J2K_EPH.xml"

	defaultTimeout = 30 * time.Second
)

type Client struct {
	httpClient *http.Client
	feedURL    string
	logger     *slog.Logger
}

// NewClient creates a feed client. An empty feedURL selects the public NASA
// location; a non-positive timeout selects the default.
func NewClient(feedURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if feedURL == "" {
		feedURL = defaultFeedURL
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		feedURL:    feedURL,
		logger:     logger.With("component", "nasa-client"),
	}
}

// GetEphemeris fetches and parses the OEM document. Records missing a
// component or carrying a non-finite value are dropped and counted rather than
// failing the whole fetch.
func (c *Client) GetEphemeris(ctx context.Context) (*EphemerisSnapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build feed request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch ephemeris feed: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("feed returned status %d: %s", resp.StatusCode, string(body))
	}

	var doc oemDocument
	if err := xml.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode OEM document: %w", err)
	}

	snapshot := &EphemerisSnapshot{
		Header: types.FeedHeader{
			CreationDate: doc.OEM.Header.CreationDate,
			Originator:   doc.OEM.Header.Originator,
		},
		Metadata: types.FeedMetadata{
			ObjectName: doc.OEM.Segment.Metadata.ObjectName,
			ObjectID:   doc.OEM.Segment.Metadata.ObjectID,
			CenterName: doc.OEM.Segment.Metadata.CenterName,
			RefFrame:   doc.OEM.Segment.Metadata.RefFrame,
			TimeSystem: doc.OEM.Segment.Metadata.TimeSystem,
			StartTime:  doc.OEM.Segment.Metadata.StartTime,
			StopTime:   doc.OEM.Segment.Metadata.StopTime,
		},
		Comments: doc.OEM.Segment.Data.Comments,
	}

	snapshot.StateVectors = make([]types.StateVector, 0, len(doc.OEM.Segment.Data.StateVectors))
	for _, raw := range doc.OEM.Segment.Data.StateVectors {
		sv, err := translateStateVector(raw)
		if err != nil {
			snapshot.Dropped++
			c.logger.Warn("dropping invalid state vector", "epoch", raw.Epoch, "error", err)
			continue
		}
		snapshot.StateVectors = append(snapshot.StateVectors, sv)
	}

	if snapshot.Dropped > 0 {
		c.logger.Info("feed contained invalid records",
			"dropped", snapshot.Dropped,
			"kept", len(snapshot.StateVectors),
		)
	}

	return snapshot, nil
}

// translateStateVector converts a raw OEM record to the domain type, rejecting
// records with missing or non-finite components.
func translateStateVector(raw oemStateVector) (types.StateVector, error) {
	components := [6]struct {
		name string
		m    oemMeasurement
	}{
		{"X", raw.X}, {"Y", raw.Y}, {"Z", raw.Z},
		{"X_DOT", raw.XDot}, {"Y_DOT", raw.YDot}, {"Z_DOT", raw.ZDot},
	}

	var values [6]float64
	for i, c := range components {
		text := strings.TrimSpace(c.m.Value)
		if text == "" {
			return types.StateVector{}, fmt.Errorf("missing component %s", c.name)
		}
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return types.StateVector{}, fmt.Errorf("component %s: %w", c.name, err)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return types.StateVector{}, fmt.Errorf("component %s is not finite", c.name)
		}
		values[i] = v
	}

	return types.NewStateVector(
		raw.Epoch,
		types.Vector3{X: values[0], Y: values[1], Z: values[2]},
		types.Vector3{X: values[3], Y: values[4], Z: values[5]},
	), nil
}
