package events

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/drblury/ariflow/internal/runtime/jsoncodec"
)

// DecodeErrorKind classifies why a frame could not be decoded.
type DecodeErrorKind int

const (
	// UnknownEventType means the discriminator named a type outside the
	// catalogue.
	UnknownEventType DecodeErrorKind = iota
	// FieldTypeMismatch means a field held a value of the wrong kind, or the
	// frame was not a JSON object at all.
	FieldTypeMismatch
)

func (k DecodeErrorKind) String() string {
	switch k {
	case UnknownEventType:
		return "unknown event type"
	case FieldTypeMismatch:
		return "field type mismatch"
	default:
		return fmt.Sprintf("decode error kind %d", int(k))
	}
}

// DecodeError reports a per-frame decode failure. It never escapes the
// session: the frame is logged and dropped while the connection stays open.
type DecodeError struct {
	Kind      DecodeErrorKind
	EventType string
	// FieldPath names the offending field for FieldTypeMismatch when the
	// codec can attribute the failure; empty otherwise.
	FieldPath string
	Err       error
}

func (e *DecodeError) Error() string {
	msg := fmt.Sprintf("ariflow: %s", e.Kind)
	if e.EventType != "" {
		msg += fmt.Sprintf(" %q", e.EventType)
	}
	if e.FieldPath != "" {
		msg += fmt.Sprintf(" at field %q", e.FieldPath)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *DecodeError) Unwrap() error { return e.Err }

// IsUnknownEventType reports whether err is a DecodeError for an event type
// outside the catalogue.
func IsUnknownEventType(err error) bool {
	var de *DecodeError
	return errors.As(err, &de) && de.Kind == UnknownEventType
}

// IsFieldTypeMismatch reports whether err is a DecodeError caused by a
// malformed field value.
func IsFieldTypeMismatch(err error) bool {
	var de *DecodeError
	return errors.As(err, &de) && de.Kind == FieldTypeMismatch
}

// factories is the closed decode table: one constructor per known event type.
// It is never mutated after package initialisation, so concurrent decodes
// need no locking.
var factories = map[string]func() Event{
	TypeApplicationReplaced:    func() Event { return &ApplicationReplaced{} },
	TypeBridgeCreated:          func() Event { return &BridgeCreated{} },
	TypeBridgeDestroyed:        func() Event { return &BridgeDestroyed{} },
	TypeBridgeMerged:           func() Event { return &BridgeMerged{} },
	TypeChannelCallerID:        func() Event { return &ChannelCallerID{} },
	TypeChannelCreated:         func() Event { return &ChannelCreated{} },
	TypeChannelDestroyed:       func() Event { return &ChannelDestroyed{} },
	TypeChannelDialplan:        func() Event { return &ChannelDialplan{} },
	TypeChannelDtmfReceived:    func() Event { return &ChannelDtmfReceived{} },
	TypeChannelEnteredBridge:   func() Event { return &ChannelEnteredBridge{} },
	TypeChannelHangupRequest:   func() Event { return &ChannelHangupRequest{} },
	TypeChannelLeftBridge:      func() Event { return &ChannelLeftBridge{} },
	TypeChannelStateChange:     func() Event { return &ChannelStateChange{} },
	TypeChannelTalkingFinished: func() Event { return &ChannelTalkingFinished{} },
	TypeChannelTalkingStarted:  func() Event { return &ChannelTalkingStarted{} },
	TypeChannelVarset:          func() Event { return &ChannelVarset{} },
	TypeDeviceStateChanged:     func() Event { return &DeviceStateChanged{} },
	TypeDial:                   func() Event { return &Dial{} },
	TypeEndpointStateChange:    func() Event { return &EndpointStateChange{} },
	TypePlaybackFinished:       func() Event { return &PlaybackFinished{} },
	TypePlaybackStarted:        func() Event { return &PlaybackStarted{} },
	TypeRecordingFailed:        func() Event { return &RecordingFailed{} },
	TypeRecordingFinished:      func() Event { return &RecordingFinished{} },
	TypeRecordingStarted:       func() Event { return &RecordingStarted{} },
	TypeStasisEnd:              func() Event { return &StasisEnd{} },
	TypeStasisStart:            func() Event { return &StasisStart{} },
}

// Known reports whether name is part of the event catalogue.
func Known(name string) bool {
	_, ok := factories[name]
	return ok
}

// Types returns the names of all catalogued event types.
func Types() []string {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	return names
}

// typeProbe reads only the discriminator field from a raw frame.
type typeProbe struct {
	Type string `json:"type"`
}

// Decode reads the discriminator field from a raw frame and hydrates the
// matching typed event. Decoding is pure: a fresh event value is allocated
// per call and no shared state is touched.
func Decode(payload []byte) (Event, error) {
	var probe typeProbe
	if err := jsoncodec.Unmarshal(payload, &probe); err != nil {
		return nil, &DecodeError{
			Kind:      FieldTypeMismatch,
			FieldPath: fieldPath(err, payload, new(typeProbe)),
			Err:       err,
		}
	}
	return DecodeAs(probe.Type, payload)
}

// DecodeAs hydrates payload into the event shape registered for name. Useful
// for captured frames where the caller already knows the target type.
func DecodeAs(name string, payload []byte) (Event, error) {
	factory, ok := factories[name]
	if !ok {
		return nil, &DecodeError{Kind: UnknownEventType, EventType: name}
	}

	ev := factory()
	if err := jsoncodec.Unmarshal(payload, ev); err != nil {
		return nil, &DecodeError{
			Kind:      FieldTypeMismatch,
			EventType: name,
			FieldPath: fieldPath(err, payload, factory()),
			Err:       err,
		}
	}
	return ev, nil
}

// fieldPath attributes a decode failure to a field path. The sonic mismatch
// error carries only a byte offset, so when it does not unwrap to an
// *encoding/json.UnmarshalTypeError the payload is re-decoded with
// encoding/json into a fresh target, whose error names the field.
func fieldPath(err error, payload []byte, fresh any) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return typeErr.Field
	}
	if jerr := json.Unmarshal(payload, fresh); errors.As(jerr, &typeErr) {
		return typeErr.Field
	}
	return ""
}
