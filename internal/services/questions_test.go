package services

import (
	"bytes"
	"strings"
	"testing"

	"github.com/BriyanNicho/tiktok-quiz/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `pertanyaan_indo,pertanyaan_arab,pilihan_a,pilihan_b,pilihan_c,jawaban_benar
Apa ibu kota Indonesia?,ما هي عاصمة إندونيسيا؟,Jakarta,Bandung,Surabaya,A
Berapa rukun Islam?,كم أركان الإسلام؟,Tiga,Empat,Lima,2
Siapa nabi terakhir?,من هو النبي الأخير؟,Musa,Muhammad,Isa,1
`

func TestQuestionCRUD(t *testing.T) {
	svc := NewQuestionService(newTestDB(t))

	q := &models.Question{
		Indonesian:    "Apa ibu kota Indonesia?",
		Arabic:        "ما هي عاصمة إندونيسيا؟",
		OptionA:       "Jakarta",
		OptionB:       "Bandung",
		OptionC:       "Surabaya",
		CorrectAnswer: 0,
	}
	require.NoError(t, svc.Create(q))
	assert.NotZero(t, q.ID)
	assert.Equal(t, 15, q.TimerSeconds, "timer defaults when unset")

	q.OptionB = "Medan"
	q.TimerSeconds = 20
	updated, err := svc.Update(q.ID, q)
	require.NoError(t, err)
	assert.Equal(t, "Medan", updated.OptionB)
	assert.Equal(t, 20, updated.TimerSeconds)

	list, err := svc.List()
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, svc.Delete(q.ID))
	assert.Error(t, svc.Delete(q.ID), "second delete reports not found")

	list, err = svc.List()
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestQuestionValidation(t *testing.T) {
	svc := NewQuestionService(newTestDB(t))

	base := models.Question{
		Indonesian:    "q",
		Arabic:        "a",
		OptionA:       "x",
		OptionB:       "y",
		OptionC:       "z",
		CorrectAnswer: 0,
	}

	missingText := base
	missingText.Indonesian = "  "
	assert.Error(t, svc.Create(&missingText))

	missingOption := base
	missingOption.OptionC = ""
	assert.Error(t, svc.Create(&missingOption))

	badAnswer := base
	badAnswer.CorrectAnswer = 3
	assert.Error(t, svc.Create(&badAnswer))

	_, err := svc.Update(999, &base)
	assert.Error(t, err, "updating a missing question fails")
}

func TestImportCSV(t *testing.T) {
	svc := NewQuestionService(newTestDB(t))

	n, err := svc.ImportCSV(strings.NewReader(sampleCSV), false)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	list, err := svc.List()
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Apa ibu kota Indonesia?", list[0].Indonesian)
	assert.Equal(t, 0, list[0].CorrectAnswer, "letter form parses")
	assert.Equal(t, 2, list[1].CorrectAnswer, "index form parses")
	assert.Equal(t, []int{0, 1, 2}, []int{list[0].OrderNum, list[1].OrderNum, list[2].OrderNum})

	// appending keeps the existing bank
	n, err = svc.ImportCSV(strings.NewReader(sampleCSV), false)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	list, err = svc.List()
	require.NoError(t, err)
	assert.Len(t, list, 6)

	// replace clears it first
	n, err = svc.ImportCSV(strings.NewReader(sampleCSV), true)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	list, err = svc.List()
	require.NoError(t, err)
	assert.Len(t, list, 3)
}

func TestImportCSVRejectsBadInput(t *testing.T) {
	svc := NewQuestionService(newTestDB(t))

	cases := map[string]string{
		"missing column": "pertanyaan_indo,pilihan_a,pilihan_b,pilihan_c,jawaban_benar\nq,x,y,z,A\n",
		"bad answer":     "pertanyaan_indo,pertanyaan_arab,pilihan_a,pilihan_b,pilihan_c,jawaban_benar\nq,a,x,y,z,D\n",
		"empty option":   "pertanyaan_indo,pertanyaan_arab,pilihan_a,pilihan_b,pilihan_c,jawaban_benar\nq,a,x,,z,A\n",
		"no rows":        "pertanyaan_indo,pertanyaan_arab,pilihan_a,pilihan_b,pilihan_c,jawaban_benar\n",
	}
	for name, csv := range cases {
		_, err := svc.ImportCSV(strings.NewReader(csv), false)
		assert.Error(t, err, name)
	}

	list, err := svc.List()
	require.NoError(t, err)
	assert.Empty(t, list, "failed imports leave the bank untouched")
}

func TestExportCSVRoundTrip(t *testing.T) {
	db := newTestDB(t)
	svc := NewQuestionService(db)

	_, err := svc.ImportCSV(strings.NewReader(sampleCSV), false)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, svc.ExportCSV(&buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "pertanyaan_indo,pertanyaan_arab,pilihan_a,pilihan_b,pilihan_c,jawaban_benar", lines[0])
	assert.True(t, strings.HasSuffix(lines[1], ",A"))
	assert.True(t, strings.HasSuffix(lines[2], ",C"), "index form exports as letter")

	// the export feeds straight back into import
	other := NewQuestionService(newTestDB(t))
	n, err := other.ImportCSV(&buf, false)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}
