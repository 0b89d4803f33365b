package tracker

import (
	"time"

	"iss-tracker/internal/geodesy"
	"iss-tracker/internal/types"
)

// nearestEpoch returns the state vector whose epoch is closest in absolute
// time to ref, along with its parsed epoch and the number of records skipped
// because their epoch would not parse. Ties keep the first record in sequence
// order. An empty set yields ErrEmptySet; a set whose epochs all fail to parse
// yields the last parse error.
func nearestEpoch(records []types.StateVector, ref time.Time) (types.StateVector, time.Time, int, error) {
	if len(records) == 0 {
		return types.StateVector{}, time.Time{}, 0, ErrEmptySet
	}

	var (
		best     types.StateVector
		bestTime time.Time
		bestDiff time.Duration
		found    bool
		skipped  int
		lastErr  error
	)

	for _, record := range records {
		t, err := geodesy.ParseEpoch(record.Epoch)
		if err != nil {
			skipped++
			lastErr = err
			continue
		}

		diff := t.Sub(ref)
		if diff < 0 {
			diff = -diff
		}
		if !found || diff < bestDiff {
			best = record
			bestTime = t
			bestDiff = diff
			found = true
		}
	}

	if !found {
		return types.StateVector{}, time.Time{}, skipped, lastErr
	}
	return best, bestTime, skipped, nil
}
