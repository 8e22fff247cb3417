package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/BriyanNicho/tiktok-quiz/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const stateKey = "appState"

// StateService owns the authoritative session state. All reads go through Get
// and all writes through Merge, Reset or SetConnectedUser; callers only ever
// see snapshots, never the live struct.
type StateService struct {
	db *gorm.DB

	mu    sync.Mutex
	state models.SessionState
}

// NewStateService loads the persisted state from global_state, or starts from
// defaults on a fresh database.
func NewStateService(db *gorm.DB) (*StateService, error) {
	s := &StateService{db: db}

	var row models.GlobalState
	err := db.Where("key = ?", stateKey).First(&row).Error
	switch {
	case err == nil:
		if uerr := json.Unmarshal([]byte(row.Value), &s.state); uerr != nil {
			return nil, fmt.Errorf("load state: %w", uerr)
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		// fresh install, keep defaults
	default:
		return nil, fmt.Errorf("load state: %w", err)
	}

	return s, nil
}

// Get returns a snapshot of the current state.
func (s *StateService) Get() models.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Merge shallow-merges the given fields into the session state. Only keys
// present in the patch are touched; an explicit JSON null clears a nullable
// field, and unknown keys are dropped. The merged state is persisted before
// the in-memory copy is replaced, so a failed write leaves the state as it
// was.
//
// The isActive/timerEndTime relationship is not validated here: the panel is
// trusted to send both together when it activates a question.
func (s *StateService) Merge(patch map[string]json.RawMessage) (models.SessionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state
	for key, raw := range patch {
		var err error
		switch key {
		case "activeQuestion":
			next.ActiveQuestion = nil
			err = json.Unmarshal(raw, &next.ActiveQuestion)
		case "isActive":
			err = json.Unmarshal(raw, &next.IsActive)
		case "timerEndTime":
			next.TimerEndTime = nil
			err = json.Unmarshal(raw, &next.TimerEndTime)
		case "connectedUser":
			next.ConnectedUser = nil
			err = json.Unmarshal(raw, &next.ConnectedUser)
		case "questionIndex":
			next.QuestionIndex = nil
			err = json.Unmarshal(raw, &next.QuestionIndex)
		case "totalQuestions":
			next.TotalQuestions = nil
			err = json.Unmarshal(raw, &next.TotalQuestions)
		default:
			continue
		}
		if err != nil {
			return s.state, fmt.Errorf("merge %s: %w", key, err)
		}
	}

	if err := s.persist(next); err != nil {
		return s.state, err
	}
	s.state = next
	return next, nil
}

// Reset returns activeQuestion, isActive and timerEndTime to their defaults.
// connectedUser is left alone so a running feed subscription survives a quiz
// reset.
func (s *StateService) Reset() (models.SessionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state
	next.ActiveQuestion = nil
	next.IsActive = false
	next.TimerEndTime = nil

	if err := s.persist(next); err != nil {
		return s.state, err
	}
	s.state = next
	return next, nil
}

// SetConnectedUser persists which live username the relay is subscribed to,
// or clears it when nil.
func (s *StateService) SetConnectedUser(username *string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state
	next.ConnectedUser = username
	if err := s.persist(next); err != nil {
		return err
	}
	s.state = next
	return nil
}

func (s *StateService) persist(state models.SessionState) error {
	value, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("persist state: %w", err)
	}

	row := models.GlobalState{Key: stateKey, Value: string(value)}
	if err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&row).Error; err != nil {
		return fmt.Errorf("persist state: %w", err)
	}
	return nil
}
