package ariflow

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFacadeBuildsAndRegisters(t *testing.T) {
	client, err := NewClient(&Config{
		Application: "app1",
		Username:    "asterisk",
		Password:    "secret",
		URL:         "http://localhost:8088/ari",
	}, nil, ClientDependencies{})
	require.NoError(t, err)

	err = RegisterEventHandler(client, EventStasisStart,
		func(_ context.Context, _ *StasisStart) error { return nil })
	require.NoError(t, err)

	err = RegisterHandler(client, EventDial,
		func(_ context.Context, _ Event) error { return nil })
	require.NoError(t, err)

	err = RegisterAnyHandler(client,
		func(_ context.Context, _ Event) error { return nil })
	require.NoError(t, err)

	assert.Equal(t, StateClosed, client.SessionState())
}

func TestFacadeDecodeEvent(t *testing.T) {
	event, err := DecodeEvent([]byte(`{"type":"StasisStart","application":"app1","args":["a"]}`))
	require.NoError(t, err)

	start, ok := event.(*StasisStart)
	require.True(t, ok, "expected *StasisStart, got %T", event)
	assert.Equal(t, []string{"a"}, start.Args)
	assert.Equal(t, EventStasisStart, start.GetType())
}

func TestFacadeDecodeErrorClassifiers(t *testing.T) {
	_, err := DecodeEvent([]byte(`{"type":"NotAnEvent"}`))
	require.Error(t, err)
	assert.True(t, IsUnknownEventType(err))
	assert.False(t, IsFieldTypeMismatch(err))
}

func TestFacadeEventCatalogue(t *testing.T) {
	types := EventTypes()
	require.NotEmpty(t, types)
	for _, name := range types {
		assert.True(t, KnownEventType(name), "catalogue entry %q must be known", name)
	}
	assert.True(t, KnownEventType(EventChannelStateChange))
	assert.False(t, KnownEventType("Bogus"))
}

func TestFacadeUtilities(t *testing.T) {
	payload, err := Marshal(map[string]string{"k": "v"})
	require.NoError(t, err)

	var got map[string]string
	require.NoError(t, Unmarshal(payload, &got))
	assert.Equal(t, "v", got["k"])

	assert.Len(t, CreateULID(), 26)
}

func TestFacadeValidateConfig(t *testing.T) {
	require.ErrorIs(t, ValidateConfig(nil), ErrConfigRequired)
	require.Error(t, ValidateConfig(&Config{}))
}
