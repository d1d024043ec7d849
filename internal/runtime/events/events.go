// Package events defines the closed set of ARI event types the client can
// receive and the decoder that hydrates them from raw websocket frames.
package events

import (
	"github.com/drblury/ariflow/internal/runtime/models"
)

// Event type names as they appear in the wire discriminator field.
const (
	TypeApplicationReplaced    = "ApplicationReplaced"
	TypeBridgeCreated          = "BridgeCreated"
	TypeBridgeDestroyed        = "BridgeDestroyed"
	TypeBridgeMerged           = "BridgeMerged"
	TypeChannelCallerID        = "ChannelCallerId"
	TypeChannelCreated         = "ChannelCreated"
	TypeChannelDestroyed       = "ChannelDestroyed"
	TypeChannelDialplan        = "ChannelDialplan"
	TypeChannelDtmfReceived    = "ChannelDtmfReceived"
	TypeChannelEnteredBridge   = "ChannelEnteredBridge"
	TypeChannelHangupRequest   = "ChannelHangupRequest"
	TypeChannelLeftBridge      = "ChannelLeftBridge"
	TypeChannelStateChange     = "ChannelStateChange"
	TypeChannelTalkingFinished = "ChannelTalkingFinished"
	TypeChannelTalkingStarted  = "ChannelTalkingStarted"
	TypeChannelVarset          = "ChannelVarset"
	TypeDeviceStateChanged     = "DeviceStateChanged"
	TypeDial                   = "Dial"
	TypeEndpointStateChange    = "EndpointStateChange"
	TypePlaybackFinished       = "PlaybackFinished"
	TypePlaybackStarted        = "PlaybackStarted"
	TypeRecordingFailed        = "RecordingFailed"
	TypeRecordingFinished      = "RecordingFinished"
	TypeRecordingStarted       = "RecordingStarted"
	TypeStasisEnd              = "StasisEnd"
	TypeStasisStart            = "StasisStart"
)

// Event is implemented by every decoded ARI event.
type Event interface {
	GetType() string
	GetApplication() string
}

// Header carries the protocol metadata present on every event. Concrete
// event types embed it.
type Header struct {
	Type        string          `json:"type"`
	Application string          `json:"application"`
	Timestamp   models.DateTime `json:"timestamp"`
	AsteriskID  string          `json:"asterisk_id"`
}

func (h *Header) GetType() string        { return h.Type }
func (h *Header) GetApplication() string { return h.Application }

// ApplicationReplaced notifies that another websocket took over the
// application registration.
type ApplicationReplaced struct {
	Header
}

type BridgeCreated struct {
	Header
	Bridge models.Bridge `json:"bridge"`
}

type BridgeDestroyed struct {
	Header
	Bridge models.Bridge `json:"bridge"`
}

type BridgeMerged struct {
	Header
	Bridge     models.Bridge `json:"bridge"`
	BridgeFrom models.Bridge `json:"bridge_from"`
}

type ChannelCallerID struct {
	Header
	CallerPresentation    int64          `json:"caller_presentation"`
	CallerPresentationTxt string         `json:"caller_presentation_txt"`
	Channel               models.Channel `json:"channel"`
}

type ChannelCreated struct {
	Header
	Channel models.Channel `json:"channel"`
}

type ChannelDestroyed struct {
	Header
	Cause    int64          `json:"cause"`
	CauseTxt string         `json:"cause_txt"`
	Channel  models.Channel `json:"channel"`
}

type ChannelDialplan struct {
	Header
	Channel         models.Channel `json:"channel"`
	DialplanApp     string         `json:"dialplan_app"`
	DialplanAppData string         `json:"dialplan_app_data"`
}

type ChannelDtmfReceived struct {
	Header
	Digit      string         `json:"digit"`
	DurationMs int64          `json:"duration_ms"`
	Channel    models.Channel `json:"channel"`
}

type ChannelEnteredBridge struct {
	Header
	Bridge  models.Bridge  `json:"bridge"`
	Channel models.Channel `json:"channel"`
}

type ChannelHangupRequest struct {
	Header
	Cause   int64          `json:"cause"`
	Soft    bool           `json:"soft"`
	Channel models.Channel `json:"channel"`
}

type ChannelLeftBridge struct {
	Header
	Bridge  models.Bridge  `json:"bridge"`
	Channel models.Channel `json:"channel"`
}

type ChannelStateChange struct {
	Header
	Channel models.Channel `json:"channel"`
}

type ChannelTalkingFinished struct {
	Header
	Channel  models.Channel `json:"channel"`
	Duration int64          `json:"duration"`
}

type ChannelTalkingStarted struct {
	Header
	Channel models.Channel `json:"channel"`
}

// ChannelVarset reports a variable assignment. Channel is the zero value for
// global variables.
type ChannelVarset struct {
	Header
	Variable string         `json:"variable"`
	Value    string         `json:"value"`
	Channel  models.Channel `json:"channel"`
}

type DeviceStateChanged struct {
	Header
	DeviceState models.DeviceState `json:"device_state"`
}

type Dial struct {
	Header
	Caller     models.Channel `json:"caller"`
	Peer       models.Channel `json:"peer"`
	Forward    string         `json:"forward"`
	Forwarded  models.Channel `json:"forwarded"`
	DialString string         `json:"dialstring"`
	DialStatus string         `json:"dialstatus"`
}

type EndpointStateChange struct {
	Header
	Endpoint models.Endpoint `json:"endpoint"`
}

type PlaybackFinished struct {
	Header
	Playback models.Playback `json:"playback"`
}

type PlaybackStarted struct {
	Header
	Playback models.Playback `json:"playback"`
}

type RecordingFailed struct {
	Header
	Recording models.LiveRecording `json:"recording"`
}

type RecordingFinished struct {
	Header
	Recording models.LiveRecording `json:"recording"`
}

type RecordingStarted struct {
	Header
	Recording models.LiveRecording `json:"recording"`
}

type StasisEnd struct {
	Header
	Channel models.Channel `json:"channel"`
}

// StasisStart announces that a channel entered the application. Args are the
// dialplan arguments passed to Stasis().
type StasisStart struct {
	Header
	Args           []string       `json:"args"`
	Channel        models.Channel `json:"channel"`
	ReplaceChannel models.Channel `json:"replace_channel"`
}
