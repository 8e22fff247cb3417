package tiktok

// ChatEvent is a normalized chat message from the live feed.
type ChatEvent struct {
	UniqueID          string `json:"uniqueId"`
	Nickname          string `json:"nickname"`
	Comment           string `json:"comment"`
	ProfilePictureURL string `json:"profilePictureUrl,omitempty"`
	Timestamp         int64  `json:"timestamp"`
}

// GiftEvent is a normalized gift from the live feed. Streak-capable gifts
// (giftType 1) arrive as a series of partial events closed by one with
// RepeatEnd set; only the closing event carries the final repeat count.
type GiftEvent struct {
	UniqueID          string `json:"uniqueId"`
	Nickname          string `json:"nickname"`
	ProfilePictureURL string `json:"profilePictureUrl,omitempty"`
	GiftName          string `json:"giftName"`
	GiftType          int    `json:"giftType"`
	DiamondCount      int    `json:"diamondCount"`
	RepeatCount       int    `json:"repeatCount"`
	RepeatEnd         bool   `json:"repeatEnd"`
	GiftPictureURL    string `json:"giftPictureUrl,omitempty"`
	Timestamp         int64  `json:"timestamp"`
}

// Streakable reports whether this gift type batches repeats into a streak.
func (g GiftEvent) Streakable() bool {
	return g.GiftType == 1
}

// RoomUserEvent carries the room's current viewer count.
type RoomUserEvent struct {
	ViewerCount int `json:"viewerCount"`
}

// RoomInfo is returned by a successful connect.
type RoomInfo struct {
	RoomID      string `json:"roomId"`
	ViewerCount int    `json:"viewerCount"`
}
