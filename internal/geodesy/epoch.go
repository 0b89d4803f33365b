package geodesy

import (
	"fmt"
	"time"
)

// EpochLayout is the feed's day-of-year timestamp format, e.g.
// "2024-079T00:56:00.000Z".
const EpochLayout = "2006-002T15:04:05.000Z"

// epochLayouts lists accepted variants; the feed writes millisecond
// precision but microseconds and whole seconds appear in older archives.
var epochLayouts = []string{
	EpochLayout,
	"2006-002T15:04:05.000000Z",
	"2006-002T15:04:05Z",
}

// EpochParseError reports an epoch string that does not match the day-of-year
// timestamp format.
type EpochParseError struct {
	Epoch string
	Err   error
}

func (e *EpochParseError) Error() string {
	return fmt.Sprintf("malformed epoch %q: %v", e.Epoch, e.Err)
}

func (e *EpochParseError) Unwrap() error { return e.Err }

// ParseEpoch parses a feed epoch string into a UTC instant.
func ParseEpoch(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range epochLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t.UTC(), nil
		}
		lastErr = err
	}
	return time.Time{}, &EpochParseError{Epoch: s, Err: lastErr}
}
