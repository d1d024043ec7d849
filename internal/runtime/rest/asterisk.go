package rest

import (
	"context"
	"net/url"

	"github.com/drblury/ariflow/internal/runtime/models"
)

// AsteriskClient exposes the /asterisk resource family.
type AsteriskClient struct {
	c *Client
}

func (ac *AsteriskClient) Info(ctx context.Context) (*models.AsteriskInfo, error) {
	var out models.AsteriskInfo
	if err := ac.c.get(ctx, "/asterisk/info", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (ac *AsteriskClient) GetGlobalVariable(ctx context.Context, name string) (string, error) {
	query := url.Values{"variable": []string{name}}
	var out models.Variable
	if err := ac.c.get(ctx, "/asterisk/variable", query, &out); err != nil {
		return "", err
	}
	return out.Value, nil
}

func (ac *AsteriskClient) SetGlobalVariable(ctx context.Context, name, value string) error {
	body := struct {
		Variable string `json:"variable"`
		Value    string `json:"value"`
	}{name, value}
	return ac.c.post(ctx, "/asterisk/variable", nil, body, nil)
}
