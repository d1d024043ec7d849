// Package rest implements the ARI REST resource clients. Every call is a
// plain request/response translation: method, path template, query or JSON
// body, and a typed decode of the response. Any non-2xx status surfaces as
// *errors.RequestError carrying the status code and raw body.
package rest

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	errspkg "github.com/drblury/ariflow/internal/runtime/errors"
	"github.com/drblury/ariflow/internal/runtime/jsoncodec"
)

const defaultTimeout = 30 * time.Second

// Client is the shared HTTP layer beneath the resource clients.
type Client struct {
	baseURL    string
	username   string
	password   string
	httpClient *http.Client
}

// New builds the REST base client. httpClient may be nil, in which case a
// client with a 30s timeout is used.
func New(baseURL, username, password string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		username:   username,
		password:   password,
		httpClient: httpClient,
	}
}

// Channels returns the client for /channels resources.
func (c *Client) Channels() *ChannelsClient { return &ChannelsClient{c: c} }

// Bridges returns the client for /bridges resources.
func (c *Client) Bridges() *BridgesClient { return &BridgesClient{c: c} }

// Playbacks returns the client for /playbacks resources.
func (c *Client) Playbacks() *PlaybacksClient { return &PlaybacksClient{c: c} }

// Recordings returns the client for /recordings resources.
func (c *Client) Recordings() *RecordingsClient { return &RecordingsClient{c: c} }

// Applications returns the client for /applications resources.
func (c *Client) Applications() *ApplicationsClient { return &ApplicationsClient{c: c} }

// Asterisk returns the client for /asterisk resources.
func (c *Client) Asterisk() *AsteriskClient { return &AsteriskClient{c: c} }

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, query url.Values, body, out any) error {
	return c.do(ctx, http.MethodPost, path, query, body, out)
}

func (c *Client) delete(ctx context.Context, path string, query url.Values) error {
	return c.do(ctx, http.MethodDelete, path, query, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := jsoncodec.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return err
	}
	req.SetBasicAuth(c.username, c.password)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(resp.Body)
		return &errspkg.RequestError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	return jsoncodec.Decode(resp.Body, out)
}
