package rest

import (
	"context"
	"net/url"

	"github.com/drblury/ariflow/internal/runtime/models"
)

// PlaybacksClient exposes the /playbacks resource family.
type PlaybacksClient struct {
	c *Client
}

func (pc *PlaybacksClient) Get(ctx context.Context, playbackID string) (*models.Playback, error) {
	var out models.Playback
	if err := pc.c.get(ctx, "/playbacks/"+url.PathEscape(playbackID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Control operates on a running playback. operation is one of "restart",
// "pause", "unpause", "reverse", "forward".
func (pc *PlaybacksClient) Control(ctx context.Context, playbackID, operation string) error {
	query := url.Values{"operation": []string{operation}}
	return pc.c.post(ctx, "/playbacks/"+url.PathEscape(playbackID)+"/control", query, nil, nil)
}

func (pc *PlaybacksClient) Stop(ctx context.Context, playbackID string) error {
	return pc.c.delete(ctx, "/playbacks/"+url.PathEscape(playbackID), nil)
}
