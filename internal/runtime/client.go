package runtime

import (
	"context"
	"net/http"
	"net/url"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	configpkg "github.com/drblury/ariflow/internal/runtime/config"
	errspkg "github.com/drblury/ariflow/internal/runtime/errors"
	"github.com/drblury/ariflow/internal/runtime/logging"
	"github.com/drblury/ariflow/internal/runtime/rest"
	"github.com/drblury/ariflow/transport"
	"github.com/drblury/ariflow/transport/websocket"
)

// ClientDependencies holds the optional collaborators a Client can use.
// Leave fields nil for production defaults; tests substitute fakes.
type ClientDependencies struct {
	// Connector dials the event stream. Defaults to the gorilla/websocket
	// connector.
	Connector transport.Connector
	// HTTPClient is used by the REST resource clients.
	HTTPClient *http.Client
	// Registerer receives the client's Prometheus collectors when
	// Config.MetricsEnabled is set.
	Registerer prometheus.Registerer
}

// Client is the composition root for one ARI client instance: it wires the
// connection settings, the handler registry, the REST resource clients, and
// the event stream session. Register handlers on a stopped Client, then call
// Start.
type Client struct {
	Conf   *configpkg.Config
	Logger logging.ServiceLogger

	rest      *rest.Client
	connector transport.Connector
	metrics   *ClientMetrics

	mu      sync.Mutex
	reg     *registry
	started bool
	session *Session
}

// NewClient validates the configuration and builds a stopped client. A nil
// logger discards all output.
func NewClient(conf *configpkg.Config, log logging.ServiceLogger, deps ClientDependencies) (*Client, error) {
	if conf == nil {
		return nil, errspkg.ErrConfigRequired
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = logging.Nop()
	}
	log = log.With(logging.LogFields{"application": conf.Application})

	connector := deps.Connector
	if connector == nil {
		connector = websocket.New()
	}

	metrics := NewClientMetrics(deps.Registerer)
	if conf.MetricsEnabled {
		if err := metrics.Register(); err != nil {
			return nil, err
		}
	}

	log.Info("creating ARI client", logging.LogFields{"config": conf})

	return &Client{
		Conf:      conf,
		Logger:    log,
		rest:      rest.New(conf.URL, conf.Username, conf.Password, deps.HTTPClient),
		connector: connector,
		metrics:   metrics,
		reg:       newRegistry(),
	}, nil
}

// Start connects to the event stream and blocks until the session ends. It
// returns nil when the server closes the connection cleanly, ctx.Err() on
// cancellation, and a *errors.TransportError on connection failure. The
// handler registry is frozen for the duration of the call.
func (c *Client) Start(ctx context.Context) error {
	c.mu.Lock()
	if c.started {
		c.mu.Unlock()
		return errspkg.ErrAlreadyStarted
	}
	c.started = true
	sess := newSession(c.connector, c.eventsURL(), c.reg, c.Logger, c.metrics)
	c.session = sess
	c.mu.Unlock()

	c.Logger.Info("starting event stream session", logging.LogFields{
		"url": c.Conf.DeriveWebsocketURL(),
	})

	err := sess.run(ctx)

	c.mu.Lock()
	c.started = false
	c.mu.Unlock()

	return err
}

// SessionState reports the state of the current (or most recent) session.
// Returns StateClosed before the first Start.
func (c *Client) SessionState() SessionState {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session == nil {
		return StateClosed
	}
	return c.session.State()
}

// eventsURL builds the subscription URL. Credentials travel in the api_key
// query parameter, which is why it is never logged.
func (c *Client) eventsURL() string {
	values := url.Values{}
	values.Set("app", c.Conf.Application)
	values.Set("api_key", c.Conf.Username+":"+c.Conf.Password)
	if c.Conf.SubscribeAll {
		values.Set("subscribeAll", "true")
	}
	return c.Conf.DeriveWebsocketURL() + "?" + values.Encode()
}

func (c *Client) bind(eventType string, handler EventHandler) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.started {
		return errspkg.ErrAlreadyStarted
	}
	c.reg.bind(eventType, handler)
	return nil
}

func (c *Client) bindAny(handler EventHandler) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.started {
		return errspkg.ErrAlreadyStarted
	}
	c.reg.bindAny(handler)
	return nil
}

// Channels returns the REST client for /channels.
func (c *Client) Channels() *rest.ChannelsClient { return c.rest.Channels() }

// Bridges returns the REST client for /bridges.
func (c *Client) Bridges() *rest.BridgesClient { return c.rest.Bridges() }

// Playbacks returns the REST client for /playbacks.
func (c *Client) Playbacks() *rest.PlaybacksClient { return c.rest.Playbacks() }

// Recordings returns the REST client for /recordings.
func (c *Client) Recordings() *rest.RecordingsClient { return c.rest.Recordings() }

// Applications returns the REST client for /applications.
func (c *Client) Applications() *rest.ApplicationsClient { return c.rest.Applications() }

// Asterisk returns the REST client for /asterisk.
func (c *Client) Asterisk() *rest.AsteriskClient { return c.rest.Asterisk() }
