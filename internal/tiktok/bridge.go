package tiktok

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const connectTimeout = 20 * time.Second

// BridgeConnector subscribes to a live room through the webcast bridge
// sidecar, which wraps the platform's push connection and re-emits chat, gift
// and room events as JSON frames over a local websocket.
type BridgeConnector struct {
	url      string
	handlers Handlers

	mu     sync.Mutex
	conn   *websocket.Conn
	closed bool
}

func NewBridgeConnector(url string, h Handlers) *BridgeConnector {
	return &BridgeConnector{url: url, handlers: h}
}

type bridgeFrame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

type bridgeConnectRequest struct {
	Action   string `json:"action"`
	Username string `json:"username"`
}

// Connect dials the bridge, requests a subscription for username and waits
// for the room handshake. After a successful handshake, feed events are
// dispatched from a background read loop until the connection drops or
// Disconnect is called.
func (b *BridgeConnector) Connect(ctx context.Context, username string) (*RoomInfo, error) {
	dialer := websocket.Dialer{HandshakeTimeout: connectTimeout}
	conn, _, err := dialer.DialContext(ctx, b.url, nil)
	if err != nil {
		return nil, fmt.Errorf("bridge dial: %w", err)
	}

	if err := conn.WriteJSON(bridgeConnectRequest{Action: "connect", Username: username}); err != nil {
		conn.Close()
		return nil, fmt.Errorf("bridge connect: %w", err)
	}

	deadline := time.Now().Add(connectTimeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	conn.SetReadDeadline(deadline)

	var frame bridgeFrame
	if err := conn.ReadJSON(&frame); err != nil {
		conn.Close()
		return nil, fmt.Errorf("bridge handshake: %w", err)
	}

	switch frame.Event {
	case "connected":
	case "error":
		conn.Close()
		return nil, fmt.Errorf("bridge: %s", string(frame.Data))
	default:
		conn.Close()
		return nil, fmt.Errorf("bridge handshake: unexpected %q frame", frame.Event)
	}

	var info RoomInfo
	if err := json.Unmarshal(frame.Data, &info); err != nil {
		conn.Close()
		return nil, fmt.Errorf("bridge handshake: %w", err)
	}

	conn.SetReadDeadline(time.Time{})
	b.mu.Lock()
	b.conn = conn
	b.mu.Unlock()

	go b.readLoop(conn)
	return &info, nil
}

func (b *BridgeConnector) readLoop(conn *websocket.Conn) {
	for {
		var frame bridgeFrame
		if err := conn.ReadJSON(&frame); err != nil {
			b.mu.Lock()
			closed := b.closed
			b.mu.Unlock()
			if !closed && b.handlers.OnDisconnected != nil {
				b.handlers.OnDisconnected()
			}
			return
		}
		b.dispatch(frame)
	}
}

func (b *BridgeConnector) dispatch(frame bridgeFrame) {
	switch frame.Event {
	case "chat":
		var ev ChatEvent
		if err := json.Unmarshal(frame.Data, &ev); err != nil {
			log.Printf("bridge: bad chat frame: %v", err)
			return
		}
		if ev.Timestamp == 0 {
			ev.Timestamp = time.Now().UnixMilli()
		}
		if b.handlers.OnChat != nil {
			b.handlers.OnChat(ev)
		}
	case "gift":
		var ev GiftEvent
		if err := json.Unmarshal(frame.Data, &ev); err != nil {
			log.Printf("bridge: bad gift frame: %v", err)
			return
		}
		if ev.Timestamp == 0 {
			ev.Timestamp = time.Now().UnixMilli()
		}
		if b.handlers.OnGift != nil {
			b.handlers.OnGift(ev)
		}
	case "roomUser":
		var ev RoomUserEvent
		if err := json.Unmarshal(frame.Data, &ev); err != nil {
			log.Printf("bridge: bad roomUser frame: %v", err)
			return
		}
		if b.handlers.OnRoomUser != nil {
			b.handlers.OnRoomUser(ev)
		}
	case "disconnected":
		if b.handlers.OnDisconnected != nil {
			b.handlers.OnDisconnected()
		}
	case "error":
		if b.handlers.OnError != nil {
			b.handlers.OnError(fmt.Errorf("bridge: %s", string(frame.Data)))
		}
	default:
		log.Printf("bridge: unknown frame %q", frame.Event)
	}
}

// Disconnect closes the bridge connection. Safe to call more than once; the
// read loop will not report the close as a feed drop.
func (b *BridgeConnector) Disconnect() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.closed = true
	if b.conn != nil {
		b.conn.Close()
		b.conn = nil
	}
}
