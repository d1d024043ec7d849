// Package models contains the ARI resource representations shared by the
// event stream and the REST clients. Field names follow the ARI schema; the
// structs are flat value carriers with no behaviour.
package models

// CallerID identifies the calling party of a channel.
type CallerID struct {
	Name   string `json:"name"`
	Number string `json:"number"`
}

// DialplanCEP describes a location in the Asterisk dialplan.
type DialplanCEP struct {
	Context  string `json:"context"`
	Exten    string `json:"exten"`
	Priority int64  `json:"priority"`
	AppName  string `json:"app_name"`
	AppData  string `json:"app_data"`
}

// Channel is a communication channel controlled by the application.
type Channel struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	State        string      `json:"state"`
	ProtocolID   string      `json:"protocol_id"`
	Caller       CallerID    `json:"caller"`
	Connected    CallerID    `json:"connected"`
	AccountCode  string      `json:"accountcode"`
	Dialplan     DialplanCEP `json:"dialplan"`
	CreationTime DateTime    `json:"creationtime"`
	Language     string      `json:"language"`
}

// Bridge is a mixing bridge between channels.
type Bridge struct {
	ID           string   `json:"id"`
	Technology   string   `json:"technology"`
	BridgeType   string   `json:"bridge_type"`
	BridgeClass  string   `json:"bridge_class"`
	Creator      string   `json:"creator"`
	Name         string   `json:"name"`
	ChannelIDs   []string `json:"channels"`
	VideoMode    string   `json:"video_mode"`
	CreationTime DateTime `json:"creationtime"`
}

// Playback is an in-progress media playback operation.
type Playback struct {
	ID           string `json:"id"`
	MediaURI     string `json:"media_uri"`
	NextMediaURI string `json:"next_media_uri"`
	TargetURI    string `json:"target_uri"`
	Language     string `json:"language"`
	State        string `json:"state"`
}

// LiveRecording is a recording that is currently being captured.
type LiveRecording struct {
	Name            string `json:"name"`
	Format          string `json:"format"`
	TargetURI       string `json:"target_uri"`
	State           string `json:"state"`
	Duration        int64  `json:"duration"`
	TalkingDuration int64  `json:"talking_duration"`
	SilenceDuration int64  `json:"silence_duration"`
	Cause           string `json:"cause"`
}

// StoredRecording is a completed recording available on disk.
type StoredRecording struct {
	Name   string `json:"name"`
	Format string `json:"format"`
}

// Endpoint is an external device or service Asterisk can reach.
type Endpoint struct {
	Technology string   `json:"technology"`
	Resource   string   `json:"resource"`
	State      string   `json:"state"`
	ChannelIDs []string `json:"channel_ids"`
}

// DeviceState is the aggregate state of a device.
type DeviceState struct {
	Name  string `json:"name"`
	State string `json:"state"`
}

// Peer describes the far end of a dialed connection.
type Peer struct {
	PeerStatus string `json:"peer_status"`
	Cause      string `json:"cause"`
	Address    string `json:"address"`
	Port       string `json:"port"`
}

// Application describes a Stasis application registered with Asterisk.
type Application struct {
	Name          string              `json:"name"`
	ChannelIDs    []string            `json:"channel_ids"`
	BridgeIDs     []string            `json:"bridge_ids"`
	EndpointIDs   []string            `json:"endpoint_ids"`
	DeviceNames   []string            `json:"device_names"`
	EventsAllowed []map[string]string `json:"events_allowed"`
}

// Variable is the value of a channel or global variable.
type Variable struct {
	Value string `json:"value"`
}

// BuildInfo reports how the connected Asterisk was built.
type BuildInfo struct {
	OS      string `json:"os"`
	Kernel  string `json:"kernel"`
	Machine string `json:"machine"`
	Options string `json:"options"`
	Date    string `json:"date"`
	User    string `json:"user"`
}

// SystemInfo identifies the connected Asterisk instance.
type SystemInfo struct {
	Version  string `json:"version"`
	EntityID string `json:"entity_id"`
}

// StatusInfo reports uptime details of the connected Asterisk instance.
type StatusInfo struct {
	StartupTime    DateTime `json:"startup_time"`
	LastReloadTime DateTime `json:"last_reload_time"`
}

// AsteriskInfo aggregates the /asterisk/info response.
type AsteriskInfo struct {
	Build  BuildInfo  `json:"build"`
	System SystemInfo `json:"system"`
	Status StatusInfo `json:"status"`
}
