package rest

import (
	"context"
	"net/url"

	"github.com/drblury/ariflow/internal/runtime/ids"
	"github.com/drblury/ariflow/internal/runtime/models"
)

// BridgesClient exposes the /bridges resource family.
type BridgesClient struct {
	c *Client
}

func (bc *BridgesClient) List(ctx context.Context) ([]models.Bridge, error) {
	var out []models.Bridge
	if err := bc.c.get(ctx, "/bridges", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (bc *BridgesClient) Get(ctx context.Context, bridgeID string) (*models.Bridge, error) {
	var out models.Bridge
	if err := bc.c.get(ctx, "/bridges/"+url.PathEscape(bridgeID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create makes a new bridge. bridgeType is a comma-separated set of "mixing",
// "holding", "dtmf_events", "proxy_media"; empty means "mixing".
func (bc *BridgesClient) Create(ctx context.Context, bridgeType, name string) (*models.Bridge, error) {
	body := struct {
		BridgeID string `json:"bridgeId"`
		Type     string `json:"type,omitempty"`
		Name     string `json:"name,omitempty"`
	}{ids.New(), bridgeType, name}
	var out models.Bridge
	if err := bc.c.post(ctx, "/bridges", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (bc *BridgesClient) Destroy(ctx context.Context, bridgeID string) error {
	return bc.c.delete(ctx, "/bridges/"+url.PathEscape(bridgeID), nil)
}

func (bc *BridgesClient) AddChannel(ctx context.Context, bridgeID, channelID string) error {
	query := url.Values{"channel": []string{channelID}}
	return bc.c.post(ctx, "/bridges/"+url.PathEscape(bridgeID)+"/addChannel", query, nil, nil)
}

func (bc *BridgesClient) RemoveChannel(ctx context.Context, bridgeID, channelID string) error {
	query := url.Values{"channel": []string{channelID}}
	return bc.c.post(ctx, "/bridges/"+url.PathEscape(bridgeID)+"/removeChannel", query, nil, nil)
}

// Play starts playback of mediaURI on the bridge with a client-assigned
// playback ID.
func (bc *BridgesClient) Play(ctx context.Context, bridgeID, mediaURI string) (*models.Playback, error) {
	playbackID := ids.New()
	query := url.Values{"media": []string{mediaURI}}
	var out models.Playback
	path := "/bridges/" + url.PathEscape(bridgeID) + "/play/" + url.PathEscape(playbackID)
	if err := bc.c.post(ctx, path, query, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (bc *BridgesClient) Record(ctx context.Context, bridgeID string, req RecordRequest) (*models.LiveRecording, error) {
	var out models.LiveRecording
	if err := bc.c.post(ctx, "/bridges/"+url.PathEscape(bridgeID)+"/record", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
