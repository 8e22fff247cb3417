package tiktok

import "context"

// Handlers is the fixed callback set a Connector dispatches feed events to.
// It is bound once at construction; handlers read current quiz state through
// the services that own it, never through captured snapshots.
//
// OnDisconnected and OnError are reserved for the Supervisor, which overrides
// them to drive the reconnect path.
type Handlers struct {
	OnChat         func(ChatEvent)
	OnGift         func(GiftEvent)
	OnRoomUser     func(RoomUserEvent)
	OnDisconnected func()
	OnError        func(error)
}

// Connector is one subscription to a live room. Implementations are single
// use: after Disconnect, or after the feed drops, a new Connector is built for
// the next attempt.
type Connector interface {
	Connect(ctx context.Context, username string) (*RoomInfo, error)
	Disconnect()
}

// ConnectorFactory builds a Connector around a fixed handler set.
type ConnectorFactory func(h Handlers) Connector
