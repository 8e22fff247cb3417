package models

import "time"

// ScoreEntry is one participant's row in a score ledger. The same shape backs
// both the pintar_scores and the sultan_scores table; the ledger service picks
// the table at runtime.
//
// CreatedAt is the insertion-order tie-break for equal scores and never goes
// out on the wire.
type ScoreEntry struct {
	UniqueID  string    `gorm:"primaryKey;size:100" json:"uniqueId"`
	Nickname  string    `gorm:"size:100" json:"nickname"`
	Score     int       `gorm:"not null;default:0" json:"score"`
	Avatar    string    `gorm:"size:500" json:"avatar,omitempty"`
	CreatedAt time.Time `json:"-"`
}
