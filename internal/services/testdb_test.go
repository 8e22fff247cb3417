package services

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/BriyanNicho/tiktok-quiz/internal/database"
	"github.com/BriyanNicho/tiktok-quiz/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBSeq int64

// newTestDB opens a private shared-cache in-memory database so that every
// pooled connection sees the same data.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", atomic.AddInt64(&testDBSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.GlobalState{}, &models.Question{}))
	for _, table := range database.LedgerTables {
		require.NoError(t, db.Table(table).AutoMigrate(&models.ScoreEntry{}))
	}
	return db
}
