package database

import (
	"fmt"
	"log"

	"github.com/BriyanNicho/tiktok-quiz/internal/config"
	"github.com/BriyanNicho/tiktok-quiz/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// LedgerTables are the two score-ledger tables. Both share the
// models.ScoreEntry row shape.
var LedgerTables = []string{"pintar_scores", "sultan_scores"}

func Connect(cfg *config.Config) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	log.Println("database connected")
	return db
}

func AutoMigrate(db *gorm.DB) {
	if err := db.AutoMigrate(&models.GlobalState{}, &models.Question{}); err != nil {
		log.Fatalf("failed to auto-migrate: %v", err)
	}
	for _, table := range LedgerTables {
		if err := db.Table(table).AutoMigrate(&models.ScoreEntry{}); err != nil {
			log.Fatalf("failed to auto-migrate %s: %v", table, err)
		}
	}
	log.Println("database migrated")
}
