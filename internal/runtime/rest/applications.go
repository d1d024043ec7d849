package rest

import (
	"context"
	"net/http"
	"net/url"

	"github.com/drblury/ariflow/internal/runtime/models"
)

// ApplicationsClient exposes the /applications resource family.
type ApplicationsClient struct {
	c *Client
}

func (ac *ApplicationsClient) List(ctx context.Context) ([]models.Application, error) {
	var out []models.Application
	if err := ac.c.get(ctx, "/applications", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (ac *ApplicationsClient) Get(ctx context.Context, name string) (*models.Application, error) {
	var out models.Application
	if err := ac.c.get(ctx, "/applications/"+url.PathEscape(name), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Subscribe adds an event source to the application, for example
// "channel:1234" or "endpoint:PJSIP/agent".
func (ac *ApplicationsClient) Subscribe(ctx context.Context, name, eventSource string) (*models.Application, error) {
	query := url.Values{"eventSource": []string{eventSource}}
	var out models.Application
	if err := ac.c.post(ctx, "/applications/"+url.PathEscape(name)+"/subscription", query, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (ac *ApplicationsClient) Unsubscribe(ctx context.Context, name, eventSource string) (*models.Application, error) {
	query := url.Values{"eventSource": []string{eventSource}}
	var out models.Application
	if err := ac.c.do(ctx, http.MethodDelete, "/applications/"+url.PathEscape(name)+"/subscription", query, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
