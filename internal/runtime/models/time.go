package models

import (
	"fmt"
	"time"
)

// AsteriskTimeFormat is the timestamp layout Asterisk uses on the wire. It is
// almost RFC3339, but carries exactly millisecond precision and a zone offset
// without a colon.
const AsteriskTimeFormat = "2006-01-02T15:04:05.000-0700"

// DateTime wraps time.Time with ARI's wire format. Asterisk is inconsistent
// across versions, so parsing falls back to RFC3339 variants before giving up.
type DateTime struct {
	time.Time
}

var parseLayouts = []string{
	AsteriskTimeFormat,
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
}

func (d *DateTime) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" || s == `""` {
		d.Time = time.Time{}
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("timestamp is not a JSON string: %s", s)
	}
	s = s[1 : len(s)-1]

	for _, layout := range parseLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t
			return nil
		}
	}
	return fmt.Errorf("cannot parse %q as an Asterisk timestamp", s)
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(`"` + d.Format(AsteriskTimeFormat) + `"`), nil
}
