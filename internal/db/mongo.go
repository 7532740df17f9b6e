package db

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/event"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/description"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// State is the observable state of the database connection.
type State int

const (
	Connecting State = iota
	Connected
	Error
	Disconnected
)

func (s State) String() string {
	switch s {
	case Connecting:
		return "connecting"
	case Connected:
		return "connected"
	case Error:
		return "error"
	case Disconnected:
		return "disconnected"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// EventKind names a connection lifecycle notification.
type EventKind string

const (
	EventConnected    EventKind = "connected"
	EventError        EventKind = "error"
	EventDisconnected EventKind = "disconnected"
)

// Event is a lifecycle notification delivered by the driver.
type Event struct {
	Kind EventKind
	Err  error
}

// Connection holds the process' MongoDB handle and tracks its lifecycle.
// It never retries or reconnects on its own.
type Connection struct {
	mu     sync.Mutex
	state  State
	client *mongo.Client
	db     *mongo.Database
	logger *log.Logger
	subs   []chan State
}

// NewConnection creates a connection in the Connecting state.
// A nil logger uses the standard logger.
func NewConnection(logger *log.Logger) *Connection {
	if logger == nil {
		logger = log.Default()
	}
	return &Connection{state: Connecting, logger: logger}
}

// Open connects to uri and selects dbName. Failures are reported as an error
// event and returned; the connection is left in the Error state.
func (c *Connection) Open(ctx context.Context, uri, dbName string) error {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	clientOptions := options.Client().
		ApplyURI(uri).
		SetServerMonitor(c.serverMonitor())
	client, err := mongo.Connect(connectCtx, clientOptions)
	if err != nil {
		err = fmt.Errorf("failed to connect to MongoDB: %w", err)
		c.HandleEvent(Event{Kind: EventError, Err: err})
		return err
	}

	c.mu.Lock()
	c.client = client
	c.db = client.Database(dbName)
	c.mu.Unlock()

	pingCtx, cancelPing := context.WithTimeout(ctx, 5*time.Second)
	defer cancelPing()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		err = fmt.Errorf("failed to ping MongoDB: %w", err)
		c.reportFailure(err)
		return err
	}

	c.HandleEvent(Event{Kind: EventConnected})
	return nil
}

// Close disconnects the client if one was opened.
func (c *Connection) Close(ctx context.Context) error {
	c.mu.Lock()
	client := c.client
	c.client = nil
	c.db = nil
	c.mu.Unlock()

	if client == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect MongoDB: %w", err)
	}
	c.HandleEvent(Event{Kind: EventDisconnected})
	return nil
}

// State returns the current connection state.
func (c *Connection) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Database returns the selected database, or nil if Open has not succeeded
// in creating a client.
func (c *Connection) Database() *mongo.Database {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.db
}

// Subscribe returns a channel that receives every state change.
// Changes are dropped for a subscriber whose buffer is full.
func (c *Connection) Subscribe() <-chan State {
	ch := make(chan State, 8)
	c.mu.Lock()
	c.subs = append(c.subs, ch)
	c.mu.Unlock()
	return ch
}

// HandleEvent applies a lifecycle event. Every error event is logged;
// connected and disconnected are logged when they change the state.
func (c *Connection) HandleEvent(e Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.apply(e)
}

// reportFailure logs err unless the connection is already failed, so that
// repeated heartbeat failures produce a single entry.
func (c *Connection) reportFailure(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == Error {
		return
	}
	c.apply(Event{Kind: EventError, Err: err})
}

// apply requires c.mu.
func (c *Connection) apply(e Event) {
	var next State
	switch e.Kind {
	case EventConnected:
		next = Connected
		if c.state != next {
			c.logger.Println("Connected to MongoDB")
		}
	case EventError:
		next = Error
		c.logger.Printf("MongoDB connection error: %v", e.Err)
	case EventDisconnected:
		next = Disconnected
		if c.state != next {
			c.logger.Println("Disconnected from MongoDB")
		}
	default:
		return
	}
	if c.state == next {
		return
	}
	c.state = next
	for _, ch := range c.subs {
		select {
		case ch <- next:
		default:
		}
	}
}

// serverMonitor translates driver topology notifications into lifecycle events.
func (c *Connection) serverMonitor() *event.ServerMonitor {
	return &event.ServerMonitor{
		TopologyDescriptionChanged: func(e *event.TopologyDescriptionChangedEvent) {
			switch {
			case hasAvailableServer(e.NewDescription):
				c.HandleEvent(Event{Kind: EventConnected})
			case hasAvailableServer(e.PreviousDescription):
				c.HandleEvent(Event{Kind: EventDisconnected})
			}
		},
		ServerHeartbeatFailed: func(e *event.ServerHeartbeatFailedEvent) {
			c.reportFailure(e.Failure)
		},
	}
}

func hasAvailableServer(t description.Topology) bool {
	for _, s := range t.Servers {
		if s.Kind != description.Unknown {
			return true
		}
	}
	return false
}

var (
	shared     *Connection
	sharedOnce sync.Once
)

// Init opens the process-wide connection. Only the first call connects;
// later calls return the same connection. Connection failures are logged,
// not returned, so the caller can keep serving.
func Init(ctx context.Context, uri, dbName string, logger *log.Logger) *Connection {
	sharedOnce.Do(func() {
		shared = NewConnection(logger)
		_ = shared.Open(ctx, uri, dbName)
	})
	return shared
}
