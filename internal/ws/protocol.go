package ws

import (
	"github.com/BriyanNicho/tiktok-quiz/internal/models"
	"github.com/BriyanNicho/tiktok-quiz/internal/tiktok"
)

// Outbound message type names.
const (
	TypeSync         = "sync"
	TypeStateUpdated = "stateUpdated"
	TypeChat         = "chat"
	TypeGift         = "gift"
	TypeUpdatePintar = "updatePintar"
	TypeUpdateSultan = "updateSultan"
	TypeViewerCount  = "viewerCount"
	TypeReset        = "reset"
)

// SyncMessage is sent only to a newly registered client and carries
// everything needed to render: session state, both leaderboards and the feed
// status.
type SyncMessage struct {
	Type         string              `json:"type"`
	State        models.SessionState `json:"state"`
	PintarScores []models.ScoreEntry `json:"pintarScores"`
	SultanScores []models.ScoreEntry `json:"sultanScores"`
	TikTokStatus string              `json:"tiktokStatus"`
}

// StateUpdatedMessage follows every successful state merge.
type StateUpdatedMessage struct {
	Type  string              `json:"type"`
	State models.SessionState `json:"state"`
}

// ChatMessage relays a normalized chat event.
type ChatMessage struct {
	Type string           `json:"type"`
	Data tiktok.ChatEvent `json:"data"`
}

// GiftMessage relays a completed gift event along with the gift leaderboard
// it just updated.
type GiftMessage struct {
	Type         string              `json:"type"`
	Data         tiktok.GiftEvent    `json:"data"`
	SultanScores []models.ScoreEntry `json:"sultanScores"`
}

// LedgerMessage carries a refreshed leaderboard snapshot after a score change.
type LedgerMessage struct {
	Type         string              `json:"type"`
	PintarScores []models.ScoreEntry `json:"pintarScores,omitempty"`
	SultanScores []models.ScoreEntry `json:"sultanScores,omitempty"`
}

// ViewerCountMessage mirrors the room's viewer count to all clients.
type ViewerCountMessage struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// ResetMessage tells clients to drop all quiz and leaderboard display state.
type ResetMessage struct {
	Type string `json:"type"`
}
