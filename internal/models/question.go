package models

// Question is a row in the question bank. The three options are stored inline,
// matching the CSV import format (pilihan_a..pilihan_c).
type Question struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	Indonesian    string `gorm:"type:text;not null" json:"indonesian"`
	Arabic        string `gorm:"type:text;not null" json:"arabic"`
	OptionA       string `gorm:"size:255;not null" json:"optionA"`
	OptionB       string `gorm:"size:255;not null" json:"optionB"`
	OptionC       string `gorm:"size:255;not null" json:"optionC"`
	CorrectAnswer int    `gorm:"not null" json:"correctAnswer"`
	TimerSeconds  int    `gorm:"not null;default:15" json:"timerSeconds"`
	OrderNum      int    `gorm:"not null;default:0" json:"orderNum"`
}

// Card converts a bank row into the payload shape the session state and the
// overlay consume.
func (q *Question) Card() *QuestionCard {
	return &QuestionCard{
		ID:            q.ID,
		Arabic:        q.Arabic,
		Indonesian:    q.Indonesian,
		Options:       []string{q.OptionA, q.OptionB, q.OptionC},
		CorrectAnswer: q.CorrectAnswer,
		Timer:         q.TimerSeconds,
	}
}
