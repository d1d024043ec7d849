// Package ariflow is a client library for the Asterisk REST Interface (ARI).
// It maps the untyped JSON messages of the ARI event stream onto
// strongly-typed event values and dispatches them to application-supplied
// handler functions, while REST operations stay simple request/response
// calls against the same control plane.
//
// A Client owns one websocket connection to /ari/events. Inbound frames are
// decoded through a closed, table-driven event catalogue and routed to the
// handler registered for their type; frames are processed strictly in
// arrival order, one at a time, so handlers never run concurrently within a
// session. Decode failures and handler errors are logged and contained; the
// connection stays open. Only transport-level failures end the session, and
// those surface as the return value of Start.
//
// A minimal setup fills Config, creates a Client, registers handlers, and
// calls Start:
//
//	cfg := &ariflow.Config{
//		Application: "myapp",
//		Username:    "asterisk",
//		Password:    "asterisk",
//		URL:         "http://localhost:8088/ari",
//	}
//	client, err := ariflow.NewClient(cfg, logger, ariflow.ClientDependencies{})
//	...
//	ariflow.RegisterEventHandler(client, ariflow.EventStasisStart,
//		func(ctx context.Context, e *ariflow.StasisStart) error {
//			return client.Channels().Answer(ctx, e.Channel.ID)
//		})
//	err = client.Start(ctx)
//
// # REST resources
//
// Client exposes one resource client per ARI family: Channels, Bridges,
// Playbacks, Recordings, Applications, and Asterisk. Any non-2xx response
// is returned as *RequestError carrying the HTTP status and raw body.
//
// # Handlers
//
// RegisterHandler binds an untyped handler; RegisterEventHandler binds one
// taking the concrete event struct. Event types with no bound handler are
// dropped silently, since applications only care about a subset of the stream.
// RegisterAnyHandler observes every decoded event, after the per-type
// handler. Handler errors never tear down the connection.
//
// # Reconnection
//
// Start returns when the connection ends; the library does not reconnect on
// its own. Callers that want a resilient session wrap Start in their own
// retry loop.
//
// ClientDependencies exposes the seams for testing: a fake transport
// Connector, a custom *http.Client for REST, and a Prometheus registerer
// for the session metrics.
package ariflow
