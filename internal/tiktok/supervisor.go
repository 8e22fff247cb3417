package tiktok

import (
	"context"
	"log"
	"math"
	"sync"
	"time"
)

const (
	reconnectDelayBase = 2 * time.Second
	reconnectDelayMax  = 30 * time.Second
)

// Feed status values broadcast to clients.
const (
	StatusDisconnected = "disconnected"
	StatusConnecting   = "connecting"
	StatusConnected    = "connected"
	StatusReconnecting = "reconnecting"
)

// Broadcaster fans one message out to every connected panel/overlay client.
type Broadcaster interface {
	Broadcast(v interface{})
}

// UserStore persists which live username the relay is subscribed to.
type UserStore interface {
	SetConnectedUser(username *string) error
}

// statusMessage is the tiktokStatus broadcast. NextRetry lets clients render
// a countdown to the next reconnect attempt.
type statusMessage struct {
	Type        string `json:"type"`
	Status      string `json:"status"`
	ViewerCount int    `json:"viewerCount,omitempty"`
	NextRetry   int64  `json:"nextRetry,omitempty"`
}

// Supervisor owns the live-feed subscription lifecycle: connect on demand,
// route every failure into capped exponential backoff, and guarantee at most
// one live connector and at most one pending reconnect timer at any time.
//
// Feed failures are never fatal to the process; they only surface to clients
// as status broadcasts.
type Supervisor struct {
	factory  ConnectorFactory
	handlers Handlers
	hub      Broadcaster
	store    UserStore

	baseDelay time.Duration
	maxDelay  time.Duration

	mu        sync.Mutex
	gen       int
	connector Connector
	username  string
	status    string
	attempts  int
	retry     *time.Timer
}

// NewSupervisor builds a supervisor around the given connector factory and
// event handlers. The supervisor overrides OnDisconnected and OnError to own
// the reconnect path; the remaining handlers pass through untouched.
func NewSupervisor(factory ConnectorFactory, handlers Handlers, hub Broadcaster, store UserStore) *Supervisor {
	return &Supervisor{
		factory:   factory,
		handlers:  handlers,
		hub:       hub,
		store:     store,
		baseDelay: reconnectDelayBase,
		maxDelay:  reconnectDelayMax,
		status:    StatusDisconnected,
	}
}

// ReconnectDelay returns the backoff delay before the given attempt: base
// grows 1.5x per attempt until it hits max.
func ReconnectDelay(base, max time.Duration, attempts int) time.Duration {
	delay := time.Duration(float64(base) * math.Pow(1.5, float64(attempts)))
	if delay > max {
		return max
	}
	return delay
}

// Status returns the current feed status for snapshot payloads.
func (s *Supervisor) Status() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Start subscribes to username's live room, tearing down any previous
// subscription or pending retry first. The username is persisted so the relay
// can resume the subscription after a restart.
func (s *Supervisor) Start(username string) {
	if username == "" {
		return
	}
	if err := s.store.SetConnectedUser(&username); err != nil {
		log.Printf("supervisor: persist user: %v", err)
	}

	s.mu.Lock()
	s.teardownLocked()
	gen := s.gen
	s.username = username
	s.attempts = 0
	s.mu.Unlock()

	go s.connect(username, gen)
}

// Stop tears down the live subscription and cancels any pending reconnect.
// This is the user-initiated stop, so the persisted username is cleared; the
// internal teardown inside Start keeps it.
func (s *Supervisor) Stop() {
	s.mu.Lock()
	s.teardownLocked()
	s.username = ""
	s.status = StatusDisconnected
	s.mu.Unlock()

	if err := s.store.SetConnectedUser(nil); err != nil {
		log.Printf("supervisor: clear user: %v", err)
	}
	s.hub.Broadcast(statusMessage{Type: "tiktokStatus", Status: StatusDisconnected})
}

// teardownLocked disconnects the live connector, cancels the pending retry
// and invalidates every in-flight callback by bumping the generation. Callers
// hold s.mu.
func (s *Supervisor) teardownLocked() {
	s.gen++
	if s.connector != nil {
		s.connector.Disconnect()
		s.connector = nil
	}
	if s.retry != nil {
		s.retry.Stop()
		s.retry = nil
	}
}

func (s *Supervisor) connect(username string, gen int) {
	s.mu.Lock()
	if gen != s.gen {
		s.mu.Unlock()
		return
	}
	attempt := s.attempts
	s.status = StatusConnecting

	h := s.handlers
	h.OnDisconnected = func() {
		log.Printf("supervisor: feed disconnected")
		s.scheduleReconnect(username, gen)
	}
	h.OnError = func(err error) {
		log.Printf("supervisor: feed error: %v", err)
		s.scheduleReconnect(username, gen)
	}
	conn := s.factory(h)
	s.connector = conn
	s.mu.Unlock()

	log.Printf("supervisor: connecting to @%s (attempt %d)", username, attempt+1)
	s.hub.Broadcast(statusMessage{Type: "tiktokStatus", Status: StatusConnecting})

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	info, err := conn.Connect(ctx, username)
	if err != nil {
		log.Printf("supervisor: connect failed: %v", err)
		s.scheduleReconnect(username, gen)
		return
	}

	s.mu.Lock()
	if gen != s.gen {
		s.mu.Unlock()
		conn.Disconnect()
		return
	}
	s.attempts = 0
	s.status = StatusConnected
	s.mu.Unlock()

	log.Printf("supervisor: connected to @%s (room %s)", username, info.RoomID)
	s.hub.Broadcast(statusMessage{
		Type:        "tiktokStatus",
		Status:      StatusConnected,
		ViewerCount: info.ViewerCount,
	})
}

// scheduleReconnect arms one reconnect timer. Duplicate failure signals for
// the same subscription are ignored while a retry is already pending, and the
// attempt counter only moves when the scheduled attempt actually fires.
func (s *Supervisor) scheduleReconnect(username string, gen int) {
	s.mu.Lock()
	if gen != s.gen || s.retry != nil {
		s.mu.Unlock()
		return
	}
	if s.connector != nil {
		s.connector.Disconnect()
		s.connector = nil
	}

	delay := ReconnectDelay(s.baseDelay, s.maxDelay, s.attempts)
	s.status = StatusReconnecting
	nextRetry := time.Now().Add(delay).UnixMilli()
	s.retry = time.AfterFunc(delay, func() {
		s.mu.Lock()
		if gen != s.gen {
			s.mu.Unlock()
			return
		}
		s.retry = nil
		s.attempts++
		s.mu.Unlock()
		s.connect(username, gen)
	})
	s.mu.Unlock()

	log.Printf("supervisor: reconnecting to @%s in %s", username, delay)
	s.hub.Broadcast(statusMessage{
		Type:      "tiktokStatus",
		Status:    StatusReconnecting,
		NextRetry: nextRetry,
	})
}
