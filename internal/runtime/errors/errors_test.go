package errors

import (
	sterrors "errors"
	"strings"
	"testing"
)

func TestRequestErrorMessage(t *testing.T) {
	err := &RequestError{StatusCode: 404, Body: `{"message":"Channel not found"}`}
	if !strings.Contains(err.Error(), "404") {
		t.Fatalf("status missing from message: %s", err)
	}
	if !strings.Contains(err.Error(), "Channel not found") {
		t.Fatalf("body missing from message: %s", err)
	}
}

func TestTransportErrorUnwraps(t *testing.T) {
	cause := sterrors.New("connection reset")
	err := &TransportError{Op: "read", Err: cause}

	if !sterrors.Is(err, cause) {
		t.Fatal("TransportError must unwrap to its cause")
	}
	if !strings.Contains(err.Error(), "read") {
		t.Fatalf("op missing from message: %s", err)
	}
}
