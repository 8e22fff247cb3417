package services

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/BriyanNicho/tiktok-quiz/internal/models"

	"gorm.io/gorm"
)

// ScoreLedger is a cumulative per-participant score table. Two instances
// exist, one over pintar_scores (correct answers) and one over sultan_scores
// (gift value); both share the same row shape and behavior.
//
// A ledger-level mutex serializes increments, so two simultaneous events for
// the same participant never lose an update.
type ScoreLedger struct {
	db    *gorm.DB
	table string

	mu sync.Mutex
}

func NewScoreLedger(db *gorm.DB, table string) *ScoreLedger {
	return &ScoreLedger{db: db, table: table}
}

// Increment adds delta to the participant's score, creating the row on first
// sight. The nickname and avatar are refreshed with the latest values seen,
// except an empty avatar never overwrites a known one. The write is durable
// before the new score is returned.
func (l *ScoreLedger) Increment(uniqueID, nickname, avatar string, delta int) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var existing models.ScoreEntry
	err := l.db.Table(l.table).Where("unique_id = ?", uniqueID).First(&existing).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		entry := models.ScoreEntry{
			UniqueID:  uniqueID,
			Nickname:  nickname,
			Score:     delta,
			Avatar:    avatar,
			CreatedAt: time.Now(),
		}
		if cerr := l.db.Table(l.table).Create(&entry).Error; cerr != nil {
			return 0, fmt.Errorf("%s: create %s: %w", l.table, uniqueID, cerr)
		}
		return entry.Score, nil
	case err != nil:
		return 0, fmt.Errorf("%s: lookup %s: %w", l.table, uniqueID, err)
	}

	newScore := existing.Score + delta
	updates := map[string]interface{}{"nickname": nickname, "score": newScore}
	if avatar != "" {
		updates["avatar"] = avatar
	}
	if uerr := l.db.Table(l.table).Where("unique_id = ?", uniqueID).
		Updates(updates).Error; uerr != nil {
		return 0, fmt.Errorf("%s: update %s: %w", l.table, uniqueID, uerr)
	}
	return newScore, nil
}

// List returns all entries ordered by score descending. Equal scores rank the
// earlier-created entry first, keeping the leaderboard order deterministic.
func (l *ScoreLedger) List() ([]models.ScoreEntry, error) {
	var entries []models.ScoreEntry
	if err := l.db.Table(l.table).
		Order("score DESC, created_at ASC").
		Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("%s: list: %w", l.table, err)
	}
	if entries == nil {
		entries = []models.ScoreEntry{}
	}
	return entries, nil
}

// ResetAll empties the ledger.
func (l *ScoreLedger) ResetAll() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.db.Table(l.table).Where("1 = 1").Delete(&models.ScoreEntry{}).Error; err != nil {
		return fmt.Errorf("%s: reset: %w", l.table, err)
	}
	return nil
}
