package models

import (
	"testing"
	"time"

	"github.com/drblury/ariflow/internal/runtime/jsoncodec"
)

func TestDateTimeUnmarshalAsteriskFormat(t *testing.T) {
	var d DateTime
	if err := d.UnmarshalJSON([]byte(`"2024-05-01T12:30:45.123+0200"`)); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if d.Year() != 2024 || d.Month() != time.May || d.Second() != 45 {
		t.Fatalf("unexpected time: %v", d.Time)
	}
	_, offset := d.Zone()
	if offset != 2*60*60 {
		t.Fatalf("unexpected zone offset %d", offset)
	}
}

func TestDateTimeUnmarshalFallbacks(t *testing.T) {
	cases := []string{
		`"2024-05-01T12:30:45Z"`,
		`"2024-05-01T12:30:45.999999999+02:00"`,
		`"2024-05-01T12:30:45"`,
	}
	for _, raw := range cases {
		var d DateTime
		if err := d.UnmarshalJSON([]byte(raw)); err != nil {
			t.Fatalf("unmarshal %s failed: %v", raw, err)
		}
		if d.IsZero() {
			t.Fatalf("unmarshal %s produced zero time", raw)
		}
	}
}

func TestDateTimeUnmarshalEmpty(t *testing.T) {
	for _, raw := range []string{`null`, `""`} {
		var d DateTime
		if err := d.UnmarshalJSON([]byte(raw)); err != nil {
			t.Fatalf("unmarshal %s failed: %v", raw, err)
		}
		if !d.IsZero() {
			t.Fatalf("unmarshal %s should yield zero time, got %v", raw, d.Time)
		}
	}
}

func TestDateTimeUnmarshalGarbage(t *testing.T) {
	var d DateTime
	if err := d.UnmarshalJSON([]byte(`"not a time"`)); err == nil {
		t.Fatal("expected error for unparseable timestamp")
	}
	if err := d.UnmarshalJSON([]byte(`12345`)); err == nil {
		t.Fatal("expected error for non-string timestamp")
	}
}

func TestDateTimeRoundTripInsideStruct(t *testing.T) {
	payload := []byte(`{"id": "c1", "creationtime": "2024-05-01T12:30:45.123+0200"}`)

	var ch Channel
	if err := jsoncodec.Unmarshal(payload, &ch); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if ch.CreationTime.IsZero() {
		t.Fatal("creationtime not parsed")
	}

	out, err := jsoncodec.Marshal(ch)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var back Channel
	if err := jsoncodec.Unmarshal(out, &back); err != nil {
		t.Fatalf("re-unmarshal failed: %v", err)
	}
	if !back.CreationTime.Equal(ch.CreationTime.Time) {
		t.Fatalf("round trip changed the timestamp: %v != %v", back.CreationTime, ch.CreationTime)
	}
}
