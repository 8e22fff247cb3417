package services

import (
	"encoding/json"
	"testing"

	"github.com/BriyanNicho/tiktok-quiz/internal/models"
	"github.com/BriyanNicho/tiktok-quiz/internal/tiktok"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) (*ScoringEngine, *StateService, *ScoreLedger, *ScoreLedger) {
	t.Helper()

	db := newTestDB(t)
	state, err := NewStateService(db)
	require.NoError(t, err)
	pintar := NewScoreLedger(db, "pintar_scores")
	sultan := NewScoreLedger(db, "sultan_scores")
	return NewScoringEngine(state, pintar, sultan), state, pintar, sultan
}

// activateQuestion merges a three-option question with the given correct
// index and opens the answer window, the way the panel does over updateState.
func activateQuestion(t *testing.T, engine *ScoringEngine, state *StateService, id, correct int) {
	t.Helper()

	q := models.Question{
		ID:            uint(id),
		Indonesian:    "q",
		Arabic:        "a",
		OptionA:       "x",
		OptionB:       "y",
		OptionC:       "z",
		CorrectAnswer: correct,
		TimerSeconds:  15,
	}
	card, err := json.Marshal(q.Card())
	require.NoError(t, err)

	_, err = state.Merge(map[string]json.RawMessage{
		"activeQuestion": card,
		"isActive":       json.RawMessage(`true`),
		"timerEndTime":   json.RawMessage(`9999999999999`),
	})
	require.NoError(t, err)
	engine.QuestionChanged()
}

func TestAnswerIndex(t *testing.T) {
	assert.Equal(t, 0, AnswerIndex("a"))
	assert.Equal(t, 1, AnswerIndex(" B "))
	assert.Equal(t, 2, AnswerIndex("c"))
	assert.Equal(t, -1, AnswerIndex("d"))
	assert.Equal(t, -1, AnswerIndex("AB"))
	assert.Equal(t, -1, AnswerIndex(""))
	assert.Equal(t, -1, AnswerIndex("jawabannya b"))
}

func TestHandleChatCreditsOncePerQuestion(t *testing.T) {
	engine, state, pintar, _ := newTestEngine(t)
	activateQuestion(t, engine, state, 1, 1)

	entries, err := engine.HandleChat(tiktok.ChatEvent{UniqueID: "u1", Nickname: "Ali", Comment: "b"})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, PointsPerCorrectAnswer, entries[0].Score)

	// second correct answer for the same question is ignored
	entries, err = engine.HandleChat(tiktok.ChatEvent{UniqueID: "u1", Nickname: "Ali", Comment: " B "})
	require.NoError(t, err)
	assert.Nil(t, entries)

	ledger, err := pintar.List()
	require.NoError(t, err)
	require.Len(t, ledger, 1)
	assert.Equal(t, PointsPerCorrectAnswer, ledger[0].Score)

	// a new question opens a fresh credit window
	activateQuestion(t, engine, state, 2, 1)
	entries, err = engine.HandleChat(tiktok.ChatEvent{UniqueID: "u1", Nickname: "Ali", Comment: "b"})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 2*PointsPerCorrectAnswer, entries[0].Score)
}

func TestHandleChatPauseDoesNotReopenCredit(t *testing.T) {
	engine, state, _, _ := newTestEngine(t)
	activateQuestion(t, engine, state, 1, 0)

	entries, err := engine.HandleChat(tiktok.ChatEvent{UniqueID: "u1", Nickname: "Ali", Comment: "a"})
	require.NoError(t, err)
	require.Len(t, entries, 1)

	// toggling isActive off and on keeps the same question instance
	_, err = state.Merge(map[string]json.RawMessage{"isActive": json.RawMessage(`false`)})
	require.NoError(t, err)
	_, err = state.Merge(map[string]json.RawMessage{"isActive": json.RawMessage(`true`)})
	require.NoError(t, err)

	entries, err = engine.HandleChat(tiktok.ChatEvent{UniqueID: "u1", Nickname: "Ali", Comment: "a"})
	require.NoError(t, err)
	assert.Nil(t, entries)
}

func TestHandleChatIgnoresWrongAndIneligibleAnswers(t *testing.T) {
	engine, state, pintar, _ := newTestEngine(t)
	activateQuestion(t, engine, state, 1, 2)

	for _, comment := range []string{"a", "b", "d", "cc", "answer c", ""} {
		entries, err := engine.HandleChat(tiktok.ChatEvent{UniqueID: "u1", Nickname: "Ali", Comment: comment})
		require.NoError(t, err)
		assert.Nil(t, entries, "comment %q must not score", comment)
	}

	ledger, err := pintar.List()
	require.NoError(t, err)
	assert.Empty(t, ledger)
}

func TestHandleChatIgnoredWhileInactive(t *testing.T) {
	engine, state, pintar, _ := newTestEngine(t)

	// no active question at all
	entries, err := engine.HandleChat(tiktok.ChatEvent{UniqueID: "u1", Nickname: "Ali", Comment: "a"})
	require.NoError(t, err)
	assert.Nil(t, entries)

	// question present but answers closed
	activateQuestion(t, engine, state, 1, 0)
	_, err = state.Merge(map[string]json.RawMessage{"isActive": json.RawMessage(`false`)})
	require.NoError(t, err)

	entries, err = engine.HandleChat(tiktok.ChatEvent{UniqueID: "u1", Nickname: "Ali", Comment: "a"})
	require.NoError(t, err)
	assert.Nil(t, entries)

	ledger, err := pintar.List()
	require.NoError(t, err)
	assert.Empty(t, ledger)
}

func TestGiftValue(t *testing.T) {
	// mid-streak events of a streak-capable gift are worth nothing yet
	assert.Equal(t, 0, GiftValue(tiktok.GiftEvent{GiftName: "Rose", GiftType: 1, RepeatCount: 5, RepeatEnd: false}))

	// the closing event carries the full streak
	assert.Equal(t, 5, GiftValue(tiktok.GiftEvent{GiftName: "Rose", GiftType: 1, RepeatCount: 5, RepeatEnd: true}))

	// non-streakable gifts score immediately
	assert.Equal(t, 30, GiftValue(tiktok.GiftEvent{GiftName: "Doughnut", GiftType: 2, RepeatCount: 1}))

	// unknown gifts fall back to the reported diamond count
	assert.Equal(t, 14, GiftValue(tiktok.GiftEvent{GiftName: "Mystery Box", GiftType: 2, DiamondCount: 7, RepeatCount: 2}))

	// and finally to one coin
	assert.Equal(t, 1, GiftValue(tiktok.GiftEvent{GiftName: "Mystery Box", GiftType: 2}))

	// missing repeat count means a single unit
	assert.Equal(t, 100, GiftValue(tiktok.GiftEvent{GiftName: "Hand Hearts", GiftType: 2}))
}

func TestHandleGiftStreakIdempotence(t *testing.T) {
	engine, _, _, sultan := newTestEngine(t)

	mid := tiktok.GiftEvent{UniqueID: "u1", Nickname: "Ali", GiftName: "Rose", GiftType: 1, RepeatCount: 3, RepeatEnd: false}
	entries, err := engine.HandleGift(mid)
	require.NoError(t, err)
	assert.Nil(t, entries)

	ledger, err := sultan.List()
	require.NoError(t, err)
	assert.Empty(t, ledger, "mid-streak event must not change the ledger")

	done := mid
	done.RepeatCount = 7
	done.RepeatEnd = true
	entries, err = engine.HandleGift(done)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 7, entries[0].Score)
}

func TestHandleGiftScoresRegardlessOfQuizState(t *testing.T) {
	engine, _, _, _ := newTestEngine(t)

	entries, err := engine.HandleGift(tiktok.GiftEvent{UniqueID: "u1", Nickname: "Ali", GiftName: "Doughnut", GiftType: 2, RepeatCount: 2})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 60, entries[0].Score)
}
