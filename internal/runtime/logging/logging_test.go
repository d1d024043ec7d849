package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestSlogServiceLoggerWritesFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewSlogServiceLogger(slog.New(slog.NewJSONHandler(&buf, nil)))

	log.Info("session opened", LogFields{"application": "app1"})

	out := buf.String()
	if !strings.Contains(out, `"msg":"session opened"`) {
		t.Fatalf("message missing from output: %s", out)
	}
	if !strings.Contains(out, `"application":"app1"`) {
		t.Fatalf("field missing from output: %s", out)
	}
}

func TestSlogServiceLoggerWithAddsPersistentFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewSlogServiceLogger(slog.New(slog.NewJSONHandler(&buf, nil)))

	scoped := log.With(LogFields{"component": "session"})
	scoped.Info("ready", nil)

	if !strings.Contains(buf.String(), `"component":"session"`) {
		t.Fatalf("persistent field missing: %s", buf.String())
	}
}

func TestSlogServiceLoggerErrorAttachesError(t *testing.T) {
	var buf bytes.Buffer
	log := NewSlogServiceLogger(slog.New(slog.NewJSONHandler(&buf, nil)))

	log.Error("dispatch failed", errors.New("boom"), LogFields{"event_type": "Dial"})

	out := buf.String()
	if !strings.Contains(out, `"error":"boom"`) {
		t.Fatalf("error missing from output: %s", out)
	}
	if !strings.Contains(out, `"event_type":"Dial"`) {
		t.Fatalf("field missing from output: %s", out)
	}
}

func TestNewSlogServiceLoggerPanicsOnNil(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic for a nil slog logger")
		}
	}()
	NewSlogServiceLogger(nil)
}

func TestNopLoggerDiscardsEverything(t *testing.T) {
	log := Nop()
	log.Debug("a", nil)
	log.Info("b", LogFields{"k": "v"})
	log.Error("c", errors.New("x"), nil)
	if log.With(LogFields{"k": "v"}) == nil {
		t.Fatal("With must return a usable logger")
	}
}
