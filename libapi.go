package ariflow

import (
	"context"

	runtimepkg "github.com/drblury/ariflow/internal/runtime"
	configpkg "github.com/drblury/ariflow/internal/runtime/config"
	errspkg "github.com/drblury/ariflow/internal/runtime/errors"
	eventspkg "github.com/drblury/ariflow/internal/runtime/events"
	idspkg "github.com/drblury/ariflow/internal/runtime/ids"
	jsoncodec "github.com/drblury/ariflow/internal/runtime/jsoncodec"
	loggingpkg "github.com/drblury/ariflow/internal/runtime/logging"
	modelspkg "github.com/drblury/ariflow/internal/runtime/models"
	restpkg "github.com/drblury/ariflow/internal/runtime/rest"
	transportpkg "github.com/drblury/ariflow/transport"
	wspkg "github.com/drblury/ariflow/transport/websocket"
)

type (
	Config             = configpkg.Config
	Client             = runtimepkg.Client
	ClientDependencies = runtimepkg.ClientDependencies
	ClientMetrics      = runtimepkg.ClientMetrics

	EventHandler = runtimepkg.EventHandler
	SessionState = runtimepkg.SessionState

	LogFields     = loggingpkg.LogFields
	ServiceLogger = loggingpkg.ServiceLogger

	// Event stream types.
	Event           = eventspkg.Event
	DecodeError     = eventspkg.DecodeError
	DecodeErrorKind = eventspkg.DecodeErrorKind

	// Event catalogue.
	ApplicationReplaced    = eventspkg.ApplicationReplaced
	BridgeCreated          = eventspkg.BridgeCreated
	BridgeDestroyed        = eventspkg.BridgeDestroyed
	BridgeMerged           = eventspkg.BridgeMerged
	ChannelCallerID        = eventspkg.ChannelCallerID
	ChannelCreated         = eventspkg.ChannelCreated
	ChannelDestroyed       = eventspkg.ChannelDestroyed
	ChannelDialplan        = eventspkg.ChannelDialplan
	ChannelDtmfReceived    = eventspkg.ChannelDtmfReceived
	ChannelEnteredBridge   = eventspkg.ChannelEnteredBridge
	ChannelHangupRequest   = eventspkg.ChannelHangupRequest
	ChannelLeftBridge      = eventspkg.ChannelLeftBridge
	ChannelStateChange     = eventspkg.ChannelStateChange
	ChannelTalkingFinished = eventspkg.ChannelTalkingFinished
	ChannelTalkingStarted  = eventspkg.ChannelTalkingStarted
	ChannelVarset          = eventspkg.ChannelVarset
	DeviceStateChanged     = eventspkg.DeviceStateChanged
	Dial                   = eventspkg.Dial
	EndpointStateChange    = eventspkg.EndpointStateChange
	PlaybackFinished       = eventspkg.PlaybackFinished
	PlaybackStarted        = eventspkg.PlaybackStarted
	RecordingFailed        = eventspkg.RecordingFailed
	RecordingFinished      = eventspkg.RecordingFinished
	RecordingStarted       = eventspkg.RecordingStarted
	StasisEnd              = eventspkg.StasisEnd
	StasisStart            = eventspkg.StasisStart

	// Resource models.
	AsteriskInfo    = modelspkg.AsteriskInfo
	Bridge          = modelspkg.Bridge
	CallerID        = modelspkg.CallerID
	Channel         = modelspkg.Channel
	DateTime        = modelspkg.DateTime
	DeviceState     = modelspkg.DeviceState
	DialplanCEP     = modelspkg.DialplanCEP
	Endpoint        = modelspkg.Endpoint
	LiveRecording   = modelspkg.LiveRecording
	Peer            = modelspkg.Peer
	Playback        = modelspkg.Playback
	StoredRecording = modelspkg.StoredRecording

	// REST request and error types.
	OriginateRequest = restpkg.OriginateRequest
	RecordRequest    = restpkg.RecordRequest
	RequestError     = errspkg.RequestError
	TransportError   = errspkg.TransportError

	// Transport boundary, substitutable in tests.
	Transport          = transportpkg.Conn
	TransportConnector = transportpkg.Connector
	TransportFrame     = transportpkg.Frame
)

var (
	NewClient      = runtimepkg.NewClient
	ValidateConfig = configpkg.ValidateConfig

	RegisterHandler    = runtimepkg.RegisterHandler
	RegisterAnyHandler = runtimepkg.RegisterAnyHandler

	// Decoder, usable standalone for captured frames.
	DecodeEvent         = eventspkg.Decode
	DecodeEventAs       = eventspkg.DecodeAs
	KnownEventType      = eventspkg.Known
	EventTypes          = eventspkg.Types
	IsUnknownEventType  = eventspkg.IsUnknownEventType
	IsFieldTypeMismatch = eventspkg.IsFieldTypeMismatch

	NewWebsocketConnector = wspkg.New
	NewSlogServiceLogger  = loggingpkg.NewSlogServiceLogger

	Marshal   = jsoncodec.Marshal
	Unmarshal = jsoncodec.Unmarshal

	CreateULID = idspkg.New

	ErrClientRequired      = errspkg.ErrClientRequired
	ErrHandlerRequired     = errspkg.ErrHandlerRequired
	ErrEventTypeRequired   = errspkg.ErrEventTypeRequired
	ErrAlreadyStarted      = errspkg.ErrAlreadyStarted
	ErrApplicationRequired = errspkg.ErrApplicationRequired
	ErrConfigRequired      = errspkg.ErrConfigRequired
)

// Session lifecycle states.
const (
	StateConnecting = runtimepkg.StateConnecting
	StateOpen       = runtimepkg.StateOpen
	StateClosed     = runtimepkg.StateClosed
	StateFailed     = runtimepkg.StateFailed
)

// Decode error kinds.
const (
	UnknownEventType  = eventspkg.UnknownEventType
	FieldTypeMismatch = eventspkg.FieldTypeMismatch
)

// Event type names, for RegisterHandler and RegisterEventHandler.
const (
	EventApplicationReplaced    = eventspkg.TypeApplicationReplaced
	EventBridgeCreated          = eventspkg.TypeBridgeCreated
	EventBridgeDestroyed        = eventspkg.TypeBridgeDestroyed
	EventBridgeMerged           = eventspkg.TypeBridgeMerged
	EventChannelCallerID        = eventspkg.TypeChannelCallerID
	EventChannelCreated         = eventspkg.TypeChannelCreated
	EventChannelDestroyed       = eventspkg.TypeChannelDestroyed
	EventChannelDialplan        = eventspkg.TypeChannelDialplan
	EventChannelDtmfReceived    = eventspkg.TypeChannelDtmfReceived
	EventChannelEnteredBridge   = eventspkg.TypeChannelEnteredBridge
	EventChannelHangupRequest   = eventspkg.TypeChannelHangupRequest
	EventChannelLeftBridge      = eventspkg.TypeChannelLeftBridge
	EventChannelStateChange     = eventspkg.TypeChannelStateChange
	EventChannelTalkingFinished = eventspkg.TypeChannelTalkingFinished
	EventChannelTalkingStarted  = eventspkg.TypeChannelTalkingStarted
	EventChannelVarset          = eventspkg.TypeChannelVarset
	EventDeviceStateChanged     = eventspkg.TypeDeviceStateChanged
	EventDial                   = eventspkg.TypeDial
	EventEndpointStateChange    = eventspkg.TypeEndpointStateChange
	EventPlaybackFinished       = eventspkg.TypePlaybackFinished
	EventPlaybackStarted        = eventspkg.TypePlaybackStarted
	EventRecordingFailed        = eventspkg.TypeRecordingFailed
	EventRecordingFinished      = eventspkg.TypeRecordingFinished
	EventRecordingStarted       = eventspkg.TypeRecordingStarted
	EventStasisEnd              = eventspkg.TypeStasisEnd
	EventStasisStart            = eventspkg.TypeStasisStart
)

// RegisterEventHandler binds a handler taking the concrete event type; the
// event type name and T must agree, for example:
//
//	ariflow.RegisterEventHandler(c, ariflow.EventStasisStart,
//		func(ctx context.Context, e *ariflow.StasisStart) error { ... })
func RegisterEventHandler[T eventspkg.Event](c *Client, eventType string, handler func(ctx context.Context, event T) error) error {
	return runtimepkg.RegisterTypedHandler[T](c, eventType, handler)
}
