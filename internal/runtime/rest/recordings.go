package rest

import (
	"context"
	"net/url"

	"github.com/drblury/ariflow/internal/runtime/models"
)

// RecordingsClient exposes the /recordings resource family.
type RecordingsClient struct {
	c *Client
}

func (rc *RecordingsClient) ListStored(ctx context.Context) ([]models.StoredRecording, error) {
	var out []models.StoredRecording
	if err := rc.c.get(ctx, "/recordings/stored", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (rc *RecordingsClient) GetStored(ctx context.Context, name string) (*models.StoredRecording, error) {
	var out models.StoredRecording
	if err := rc.c.get(ctx, "/recordings/stored/"+url.PathEscape(name), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (rc *RecordingsClient) DeleteStored(ctx context.Context, name string) error {
	return rc.c.delete(ctx, "/recordings/stored/"+url.PathEscape(name), nil)
}

func (rc *RecordingsClient) GetLive(ctx context.Context, name string) (*models.LiveRecording, error) {
	var out models.LiveRecording
	if err := rc.c.get(ctx, "/recordings/live/"+url.PathEscape(name), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Stop ends the recording and stores the result.
func (rc *RecordingsClient) Stop(ctx context.Context, name string) error {
	return rc.c.post(ctx, "/recordings/live/"+url.PathEscape(name)+"/stop", nil, nil, nil)
}

func (rc *RecordingsClient) Pause(ctx context.Context, name string) error {
	return rc.c.post(ctx, "/recordings/live/"+url.PathEscape(name)+"/pause", nil, nil, nil)
}

func (rc *RecordingsClient) Unpause(ctx context.Context, name string) error {
	return rc.c.delete(ctx, "/recordings/live/"+url.PathEscape(name)+"/pause", nil)
}

func (rc *RecordingsClient) Mute(ctx context.Context, name string) error {
	return rc.c.post(ctx, "/recordings/live/"+url.PathEscape(name)+"/mute", nil, nil, nil)
}

func (rc *RecordingsClient) Unmute(ctx context.Context, name string) error {
	return rc.c.delete(ctx, "/recordings/live/"+url.PathEscape(name)+"/mute", nil)
}
