package services

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/BriyanNicho/tiktok-quiz/internal/models"

	"gorm.io/gorm"
)

// csvColumns is the question bank exchange format, in column order.
var csvColumns = []string{
	"pertanyaan_indo",
	"pertanyaan_arab",
	"pilihan_a",
	"pilihan_b",
	"pilihan_c",
	"jawaban_benar",
}

type QuestionService struct {
	db *gorm.DB
}

func NewQuestionService(db *gorm.DB) *QuestionService {
	return &QuestionService{db: db}
}

func (s *QuestionService) List() ([]models.Question, error) {
	var questions []models.Question
	if err := s.db.Order("order_num ASC, id ASC").Find(&questions).Error; err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	if questions == nil {
		questions = []models.Question{}
	}
	return questions, nil
}

func (s *QuestionService) Create(q *models.Question) error {
	if err := validateQuestion(q); err != nil {
		return err
	}
	if q.TimerSeconds <= 0 {
		q.TimerSeconds = 15
	}
	return s.db.Create(q).Error
}

func (s *QuestionService) Update(id uint, q *models.Question) (*models.Question, error) {
	var existing models.Question
	if err := s.db.First(&existing, id).Error; err != nil {
		return nil, errors.New("question not found")
	}

	if err := validateQuestion(q); err != nil {
		return nil, err
	}

	existing.Indonesian = q.Indonesian
	existing.Arabic = q.Arabic
	existing.OptionA = q.OptionA
	existing.OptionB = q.OptionB
	existing.OptionC = q.OptionC
	existing.CorrectAnswer = q.CorrectAnswer
	if q.TimerSeconds > 0 {
		existing.TimerSeconds = q.TimerSeconds
	}
	existing.OrderNum = q.OrderNum

	if err := s.db.Save(&existing).Error; err != nil {
		return nil, err
	}
	return &existing, nil
}

func (s *QuestionService) Delete(id uint) error {
	res := s.db.Delete(&models.Question{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errors.New("question not found")
	}
	return nil
}

func validateQuestion(q *models.Question) error {
	if strings.TrimSpace(q.Indonesian) == "" || strings.TrimSpace(q.Arabic) == "" {
		return errors.New("question text is required")
	}
	if strings.TrimSpace(q.OptionA) == "" || strings.TrimSpace(q.OptionB) == "" || strings.TrimSpace(q.OptionC) == "" {
		return errors.New("all three options are required")
	}
	if q.CorrectAnswer < 0 || q.CorrectAnswer > 2 {
		return errors.New("correct answer must be 0, 1 or 2")
	}
	return nil
}

// ImportCSV reads questions in the documented column format and appends them
// to the bank. When replace is set, the existing bank is cleared first in the
// same transaction. Returns how many questions were imported.
func (s *QuestionService) ImportCSV(r io.Reader, replace bool) (int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read csv header: %w", err)
	}

	colIndex := make(map[string]int, len(header))
	for i, col := range header {
		colIndex[strings.ToLower(strings.TrimSpace(col))] = i
	}
	for _, col := range csvColumns {
		if _, ok := colIndex[col]; !ok {
			return 0, fmt.Errorf("missing csv column %q", col)
		}
	}

	var questions []models.Question
	for row := 2; ; row++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("row %d: %w", row, err)
		}
		if len(record) < len(csvColumns) {
			return 0, fmt.Errorf("row %d: expected %d columns, got %d", row, len(csvColumns), len(record))
		}

		field := func(col string) string { return strings.TrimSpace(record[colIndex[col]]) }

		correct, err := parseCorrectAnswer(field("jawaban_benar"))
		if err != nil {
			return 0, fmt.Errorf("row %d: %w", row, err)
		}

		q := models.Question{
			Indonesian:    field("pertanyaan_indo"),
			Arabic:        field("pertanyaan_arab"),
			OptionA:       field("pilihan_a"),
			OptionB:       field("pilihan_b"),
			OptionC:       field("pilihan_c"),
			CorrectAnswer: correct,
			TimerSeconds:  15,
			OrderNum:      len(questions),
		}
		if err := validateQuestion(&q); err != nil {
			return 0, fmt.Errorf("row %d: %w", row, err)
		}
		questions = append(questions, q)
	}

	if len(questions) == 0 {
		return 0, errors.New("csv contains no questions")
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if replace {
			if err := tx.Where("1 = 1").Delete(&models.Question{}).Error; err != nil {
				return err
			}
		}
		return tx.Create(&questions).Error
	})
	if err != nil {
		return 0, fmt.Errorf("import questions: %w", err)
	}
	return len(questions), nil
}

// parseCorrectAnswer accepts the letter or index form (A/B/C or 0/1/2).
func parseCorrectAnswer(raw string) (int, error) {
	switch strings.ToUpper(raw) {
	case "A", "0":
		return 0, nil
	case "B", "1":
		return 1, nil
	case "C", "2":
		return 2, nil
	}
	return 0, fmt.Errorf("correct answer must be A, B or C, got %q", raw)
}

// ExportCSV writes the whole bank in the import format.
func (s *QuestionService) ExportCSV(w io.Writer) error {
	questions, err := s.List()
	if err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(csvColumns); err != nil {
		return err
	}
	for _, q := range questions {
		letter := []string{"A", "B", "C"}[q.CorrectAnswer]
		if err := writer.Write([]string{q.Indonesian, q.Arabic, q.OptionA, q.OptionB, q.OptionC, letter}); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
