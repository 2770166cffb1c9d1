package catalog

import (
	"fmt"
	"time"
)

// iso8601Millis matches the wire format of the backend: UTC with
// exactly three fractional digits, e.g. "2024-01-15T10:00:00.000Z".
const iso8601Millis = "2006-01-02T15:04:05.000Z"

// Timestamp is a time.Time that marshals as an ISO-8601 string with
// millisecond precision in UTC.
type Timestamp struct {
	time.Time
}

func Now() Timestamp {
	return Timestamp{time.Now().UTC()}
}

func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{t.UTC()}
}

// MustParseTimestamp panics on malformed input. Only for seed data and
// tests where the literal is known good.
func MustParseTimestamp(s string) Timestamp {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return Timestamp{t.UTC()}
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.UTC().Format(iso8601Millis) + `"`), nil
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("timestamp is not a JSON string: %s", data)
	}
	parsed, err := time.Parse(time.RFC3339, string(data[1:len(data)-1]))
	if err != nil {
		return fmt.Errorf("parsing timestamp: %w", err)
	}
	t.Time = parsed.UTC()
	return nil
}
