package models

// QuestionCard is the full question payload carried inside the session state.
// The control panel may edit questions independently of the bank, so the state
// stores the question by value rather than by id.
type QuestionCard struct {
	ID            uint     `json:"id"`
	Arabic        string   `json:"arabic"`
	Indonesian    string   `json:"indonesian"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Timer         int      `json:"timer"`
}

// SessionState is the authoritative quiz state. It is persisted as a JSON blob
// under the "appState" key in global_state so it survives a process restart.
//
// TimerEndTime is an absolute epoch-millisecond deadline, not a remaining
// duration, so every client computes the countdown correctly no matter when
// the message arrived.
type SessionState struct {
	ActiveQuestion *QuestionCard `json:"activeQuestion"`
	IsActive       bool          `json:"isActive"`
	TimerEndTime   *int64        `json:"timerEndTime"`
	ConnectedUser  *string       `json:"connectedUser"`
	QuestionIndex  *int          `json:"questionIndex,omitempty"`
	TotalQuestions *int          `json:"totalQuestions,omitempty"`
}

// GlobalState is a key/value row holding JSON-serialized singleton values.
type GlobalState struct {
	Key   string `gorm:"primaryKey;size:64" json:"key"`
	Value string `gorm:"type:text" json:"value"`
}
