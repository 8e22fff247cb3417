package services

import (
	"strings"
	"sync"

	"github.com/BriyanNicho/tiktok-quiz/internal/models"
	"github.com/BriyanNicho/tiktok-quiz/internal/tiktok"
)

// PointsPerCorrectAnswer is awarded on the pintar ledger for the first correct
// answer a participant sends for the active question.
const PointsPerCorrectAnswer = 10

// answerLetters map chat answers to option indexes; the quiz format is fixed
// at three options.
var answerLetters = []string{"A", "B", "C"}

// giftCoinValues maps known gift names to their per-unit coin value. Gifts not
// in the table fall back to the diamond count reported on the event itself.
var giftCoinValues = map[string]int{
	"Rose":         1,
	"Heart":        5,
	"Finger Heart": 5,
	"Doughnut":     30,
	"Hand Hearts":  100,
}

// ScoringEngine applies the quiz rules to incoming feed events and routes the
// resulting mutations to the two ledgers. It also tracks which participants
// have been credited for the currently active question.
type ScoringEngine struct {
	state  *StateService
	pintar *ScoreLedger
	sultan *ScoreLedger

	mu       sync.Mutex
	answered map[string]struct{}
}

func NewScoringEngine(state *StateService, pintar, sultan *ScoreLedger) *ScoringEngine {
	return &ScoringEngine{
		state:    state,
		pintar:   pintar,
		sultan:   sultan,
		answered: make(map[string]struct{}),
	}
}

// QuestionChanged clears the credited set. It is called exactly when a new
// activeQuestion is merged into the session state, so pausing and resuming the
// same question does not open a second credit.
func (e *ScoringEngine) QuestionChanged() {
	e.mu.Lock()
	e.answered = make(map[string]struct{})
	e.mu.Unlock()
}

// AnswerIndex normalizes a chat comment to an option index, or -1 when the
// comment is not an eligible answer. Only the single letters A, B and C count.
func AnswerIndex(comment string) int {
	answer := strings.ToUpper(strings.TrimSpace(comment))
	for i, letter := range answerLetters {
		if answer == letter {
			return i
		}
	}
	return -1
}

// GiftValue returns the coin value of a gift event: coins per unit times the
// repeat count. Mid-streak events of streak-capable gifts are worth zero until
// the closing event arrives with the final count.
func GiftValue(ev tiktok.GiftEvent) int {
	if ev.Streakable() && !ev.RepeatEnd {
		return 0
	}

	coins := giftCoinValues[ev.GiftName]
	if coins == 0 {
		coins = ev.DiamondCount
	}
	if coins == 0 {
		coins = 1
	}

	repeat := ev.RepeatCount
	if repeat < 1 {
		repeat = 1
	}
	return coins * repeat
}

// HandleChat checks a chat message against the active question and credits the
// pintar ledger at most once per participant per question. It returns the
// updated leaderboard when a point was awarded, nil otherwise.
func (e *ScoringEngine) HandleChat(ev tiktok.ChatEvent) ([]models.ScoreEntry, error) {
	st := e.state.Get()
	if !st.IsActive || st.ActiveQuestion == nil {
		return nil, nil
	}

	idx := AnswerIndex(ev.Comment)
	if idx < 0 || idx != st.ActiveQuestion.CorrectAnswer {
		return nil, nil
	}

	e.mu.Lock()
	if _, credited := e.answered[ev.UniqueID]; credited {
		e.mu.Unlock()
		return nil, nil
	}
	e.answered[ev.UniqueID] = struct{}{}
	e.mu.Unlock()

	if _, err := e.pintar.Increment(ev.UniqueID, ev.Nickname, ev.ProfilePictureURL, PointsPerCorrectAnswer); err != nil {
		// the credit was not recorded, let the participant try again
		e.mu.Lock()
		delete(e.answered, ev.UniqueID)
		e.mu.Unlock()
		return nil, err
	}
	return e.pintar.List()
}

// HandleGift credits a completed gift to the sultan ledger regardless of quiz
// activity. It returns the updated leaderboard, or nil when the event was a
// mid-streak signal.
func (e *ScoringEngine) HandleGift(ev tiktok.GiftEvent) ([]models.ScoreEntry, error) {
	value := GiftValue(ev)
	if value == 0 {
		return nil, nil
	}

	if _, err := e.sultan.Increment(ev.UniqueID, ev.Nickname, ev.ProfilePictureURL, value); err != nil {
		return nil, err
	}
	return e.sultan.List()
}
