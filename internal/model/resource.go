package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// Resource is an uploaded PDF (notes, question papers) attached to a
// Semester and a Subject. Both references are unenforced, same as
// Subject.SemesterID. Default listing is newest first.
type Resource struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	FileName   string    `json:"fileName"`
	FileURL    string    `json:"fileUrl"`
	SemesterID string    `json:"semesterId"`
	SubjectID  string    `json:"subjectId"`
	CreatedAt  Timestamp `json:"createdAt"`
}

// Timestamp is a time.Time that travels as milliseconds since epoch.
// Both store backends must agree on the wire shape of records, so the
// JSON form is always a number; on decode an RFC 3339 string is also
// accepted because document stores may hand back native datetimes.
type Timestamp struct {
	time.Time
}

// Now returns the current time as a Timestamp, truncated to millisecond
// precision so a value survives an encode/decode round trip unchanged.
func Now() Timestamp {
	return Timestamp{time.Now().UTC().Truncate(time.Millisecond)}
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	// null, not 0: the zero time is "unset", not the 1970 epoch, and
	// must come back as the zero time.
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.UnixMilli())
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch x := v.(type) {
	case nil:
		t.Time = time.Time{}
	case float64:
		t.Time = time.UnixMilli(int64(x)).UTC()
	case string:
		parsed, err := time.Parse(time.RFC3339Nano, x)
		if err != nil {
			return fmt.Errorf("timestamp: unsupported string form %q: %w", x, err)
		}
		t.Time = parsed.UTC().Truncate(time.Millisecond)
	default:
		return fmt.Errorf("timestamp: unsupported JSON type %T", v)
	}
	return nil
}
