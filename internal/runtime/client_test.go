package runtime

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	configpkg "github.com/drblury/ariflow/internal/runtime/config"
	errspkg "github.com/drblury/ariflow/internal/runtime/errors"
	"github.com/drblury/ariflow/internal/runtime/events"
)

func testConfig() *configpkg.Config {
	return &configpkg.Config{
		Application: "app1",
		Username:    "asterisk",
		Password:    "secret",
		URL:         "http://localhost:8088/ari",
	}
}

func TestNewClientValidation(t *testing.T) {
	_, err := NewClient(nil, nil, ClientDependencies{})
	require.ErrorIs(t, err, errspkg.ErrConfigRequired)

	_, err = NewClient(&configpkg.Config{}, nil, ClientDependencies{})
	require.Error(t, err, "an empty config must be rejected")
}

func TestNewClientDefaults(t *testing.T) {
	c, err := NewClient(testConfig(), nil, ClientDependencies{})
	require.NoError(t, err)
	require.NotNil(t, c.Logger, "nil logger must be replaced with a no-op")
	require.NotNil(t, c.connector, "connector must default to the websocket dialer")
	assert.Equal(t, StateClosed, c.SessionState(), "state before first Start")
}

func TestClientEventsURL(t *testing.T) {
	conf := testConfig()
	conf.SubscribeAll = true
	connector := &fakeConnector{dialErr: errors.New("stop here")}

	c, err := NewClient(conf, nil, ClientDependencies{Connector: connector})
	require.NoError(t, err)
	_ = c.Start(context.Background())

	parsed, err := url.Parse(connector.gotURL)
	require.NoError(t, err)
	assert.Equal(t, "ws", parsed.Scheme)
	assert.Equal(t, "/ari/events", parsed.Path)

	query := parsed.Query()
	assert.Equal(t, "app1", query.Get("app"))
	assert.Equal(t, "asterisk:secret", query.Get("api_key"))
	assert.Equal(t, "true", query.Get("subscribeAll"))
}

func TestClientEventsURLWithoutSubscribeAll(t *testing.T) {
	connector := &fakeConnector{dialErr: errors.New("stop here")}
	c, err := NewClient(testConfig(), nil, ClientDependencies{Connector: connector})
	require.NoError(t, err)
	_ = c.Start(context.Background())

	parsed, err := url.Parse(connector.gotURL)
	require.NoError(t, err)
	assert.False(t, parsed.Query().Has("subscribeAll"))
}

func TestClientStartDialFailure(t *testing.T) {
	connector := &fakeConnector{dialErr: errors.New("connection refused")}
	c, err := NewClient(testConfig(), nil, ClientDependencies{Connector: connector})
	require.NoError(t, err)

	require.NoError(t, RegisterAnyHandler(c, func(context.Context, events.Event) error {
		t.Fatal("no handler may run when the dial fails")
		return nil
	}))

	startErr := c.Start(context.Background())
	var terr *errspkg.TransportError
	require.ErrorAs(t, startErr, &terr)
	assert.Equal(t, StateFailed, c.SessionState())
}

func TestClientStartEndToEnd(t *testing.T) {
	conn := newFakeConn(
		frameStep(stateChangeFrame("123456", "Up")),
		closeStep(),
	)
	c, err := NewClient(testConfig(), nil, ClientDependencies{Connector: &fakeConnector{conn: conn}})
	require.NoError(t, err)

	var got *events.ChannelStateChange
	require.NoError(t, RegisterTypedHandler(c, events.TypeChannelStateChange,
		func(_ context.Context, event *events.ChannelStateChange) error {
			got = event
			return nil
		}))

	require.NoError(t, c.Start(context.Background()), "a clean server close ends Start without error")
	require.NotNil(t, got)
	assert.Equal(t, "123456", got.Channel.ID)
	assert.Equal(t, "Up", got.Channel.State)
	assert.Equal(t, "app1", got.GetApplication())
	assert.Equal(t, StateClosed, c.SessionState())
}

func TestClientStartIsExclusive(t *testing.T) {
	conn := newFakeConn() // blocks until closed
	c, err := NewClient(testConfig(), nil, ClientDependencies{Connector: &fakeConnector{conn: conn}})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- c.Start(ctx) }()

	require.Eventually(t, func() bool {
		return c.SessionState() == StateOpen
	}, time.Second, 5*time.Millisecond)

	assert.ErrorIs(t, c.Start(ctx), errspkg.ErrAlreadyStarted)
	assert.ErrorIs(t, RegisterHandler(c, events.TypeDial, noopHandler), errspkg.ErrAlreadyStarted,
		"the registry is frozen while a session runs")
	assert.ErrorIs(t, RegisterAnyHandler(c, noopHandler), errspkg.ErrAlreadyStarted)

	cancel()
	require.ErrorIs(t, <-done, context.Canceled)
}

func TestClientRestAccessors(t *testing.T) {
	c, err := NewClient(testConfig(), nil, ClientDependencies{})
	require.NoError(t, err)

	assert.NotNil(t, c.Channels())
	assert.NotNil(t, c.Bridges())
	assert.NotNil(t, c.Playbacks())
	assert.NotNil(t, c.Recordings())
	assert.NotNil(t, c.Applications())
	assert.NotNil(t, c.Asterisk())
}
