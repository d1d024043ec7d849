package rest

import (
	"context"
	"net/url"

	"github.com/drblury/ariflow/internal/runtime/ids"
	"github.com/drblury/ariflow/internal/runtime/models"
)

// ChannelsClient exposes the /channels resource family.
type ChannelsClient struct {
	c *Client
}

// OriginateRequest describes a new outbound call. Either App or the
// Context/Extension/Priority triple selects where the answered channel lands.
type OriginateRequest struct {
	Endpoint  string `json:"endpoint"`
	Extension string `json:"extension,omitempty"`
	Context   string `json:"context,omitempty"`
	Priority  int64  `json:"priority,omitempty"`
	App       string `json:"app,omitempty"`
	AppArgs   string `json:"appArgs,omitempty"`
	CallerID  string `json:"callerId,omitempty"`
	// Timeout is the dial timeout in seconds; -1 waits forever. Zero falls
	// back to the Asterisk default of 30.
	Timeout int64 `json:"timeout,omitempty"`
	// ChannelID pre-assigns the new channel's ID. Generated when empty so the
	// caller can correlate stream events before the response arrives.
	ChannelID string            `json:"channelId,omitempty"`
	Variables map[string]string `json:"variables,omitempty"`
}

// RecordRequest captures the tunables of a live recording.
type RecordRequest struct {
	Name               string `json:"name"`
	Format             string `json:"format"`
	MaxDurationSeconds int64  `json:"maxDurationSeconds,omitempty"`
	MaxSilenceSeconds  int64  `json:"maxSilenceSeconds,omitempty"`
	IfExists           string `json:"ifExists,omitempty"`
	Beep               bool   `json:"beep,omitempty"`
	TerminateOn        string `json:"terminateOn,omitempty"`
}

func (cc *ChannelsClient) List(ctx context.Context) ([]models.Channel, error) {
	var out []models.Channel
	if err := cc.c.get(ctx, "/channels", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (cc *ChannelsClient) Get(ctx context.Context, channelID string) (*models.Channel, error) {
	var out models.Channel
	if err := cc.c.get(ctx, "/channels/"+url.PathEscape(channelID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (cc *ChannelsClient) Originate(ctx context.Context, req OriginateRequest) (*models.Channel, error) {
	if req.ChannelID == "" {
		req.ChannelID = ids.New()
	}
	var out models.Channel
	if err := cc.c.post(ctx, "/channels", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Hangup tears down a channel. reason may be empty, "normal", "busy",
// "congestion", or "no_answer".
func (cc *ChannelsClient) Hangup(ctx context.Context, channelID, reason string) error {
	query := url.Values{}
	if reason != "" {
		query.Set("reason", reason)
	}
	return cc.c.delete(ctx, "/channels/"+url.PathEscape(channelID), query)
}

func (cc *ChannelsClient) Answer(ctx context.Context, channelID string) error {
	return cc.c.post(ctx, "/channels/"+url.PathEscape(channelID)+"/answer", nil, nil, nil)
}

func (cc *ChannelsClient) Ring(ctx context.Context, channelID string) error {
	return cc.c.post(ctx, "/channels/"+url.PathEscape(channelID)+"/ring", nil, nil, nil)
}

func (cc *ChannelsClient) RingStop(ctx context.Context, channelID string) error {
	return cc.c.delete(ctx, "/channels/"+url.PathEscape(channelID)+"/ring", nil)
}

// Continue returns the channel to the dialplan at the given location. Zero
// values continue from the channel's current position.
func (cc *ChannelsClient) Continue(ctx context.Context, channelID, context_, extension string, priority int64) error {
	body := struct {
		Context   string `json:"context,omitempty"`
		Extension string `json:"extension,omitempty"`
		Priority  int64  `json:"priority,omitempty"`
	}{context_, extension, priority}
	return cc.c.post(ctx, "/channels/"+url.PathEscape(channelID)+"/continue", nil, body, nil)
}

func (cc *ChannelsClient) SendDTMF(ctx context.Context, channelID, dtmf string) error {
	query := url.Values{"dtmf": []string{dtmf}}
	return cc.c.post(ctx, "/channels/"+url.PathEscape(channelID)+"/dtmf", query, nil, nil)
}

// Play starts playback of mediaURI on the channel using a client-assigned
// playback ID, so PlaybackStarted events can be matched before the response
// returns.
func (cc *ChannelsClient) Play(ctx context.Context, channelID, mediaURI string) (*models.Playback, error) {
	playbackID := ids.New()
	query := url.Values{"media": []string{mediaURI}}
	var out models.Playback
	path := "/channels/" + url.PathEscape(channelID) + "/play/" + url.PathEscape(playbackID)
	if err := cc.c.post(ctx, path, query, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (cc *ChannelsClient) Record(ctx context.Context, channelID string, req RecordRequest) (*models.LiveRecording, error) {
	var out models.LiveRecording
	if err := cc.c.post(ctx, "/channels/"+url.PathEscape(channelID)+"/record", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Mute silences a channel in the given direction: "in", "out", or "both".
func (cc *ChannelsClient) Mute(ctx context.Context, channelID, direction string) error {
	query := url.Values{"direction": []string{direction}}
	return cc.c.post(ctx, "/channels/"+url.PathEscape(channelID)+"/mute", query, nil, nil)
}

func (cc *ChannelsClient) Unmute(ctx context.Context, channelID, direction string) error {
	query := url.Values{"direction": []string{direction}}
	return cc.c.delete(ctx, "/channels/"+url.PathEscape(channelID)+"/mute", query)
}

func (cc *ChannelsClient) Hold(ctx context.Context, channelID string) error {
	return cc.c.post(ctx, "/channels/"+url.PathEscape(channelID)+"/hold", nil, nil, nil)
}

func (cc *ChannelsClient) Unhold(ctx context.Context, channelID string) error {
	return cc.c.delete(ctx, "/channels/"+url.PathEscape(channelID)+"/hold", nil)
}

func (cc *ChannelsClient) GetVariable(ctx context.Context, channelID, name string) (string, error) {
	query := url.Values{"variable": []string{name}}
	var out models.Variable
	if err := cc.c.get(ctx, "/channels/"+url.PathEscape(channelID)+"/variable", query, &out); err != nil {
		return "", err
	}
	return out.Value, nil
}

func (cc *ChannelsClient) SetVariable(ctx context.Context, channelID, name, value string) error {
	body := struct {
		Variable string `json:"variable"`
		Value    string `json:"value"`
	}{name, value}
	return cc.c.post(ctx, "/channels/"+url.PathEscape(channelID)+"/variable", nil, body, nil)
}

// Snoop spies on a channel. whisper and spy take "none", "in", "out", or
// "both". The snoop channel gets a client-assigned ID and enters app.
func (cc *ChannelsClient) Snoop(ctx context.Context, channelID, spy, whisper, app string) (*models.Channel, error) {
	snoopID := ids.New()
	body := struct {
		Spy     string `json:"spy,omitempty"`
		Whisper string `json:"whisper,omitempty"`
		App     string `json:"app"`
	}{spy, whisper, app}
	var out models.Channel
	path := "/channels/" + url.PathEscape(channelID) + "/snoop/" + url.PathEscape(snoopID)
	if err := cc.c.post(ctx, path, nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
