package jobs

import (
	"fmt"
	"log"
	"riftrewind/api/repositories"
	"riftrewind/pkg/database"
	"time"
)

// Cards older than this are unreachable anyway, drop them.
const shareCardRetention = 30 * 24 * time.Hour

// CleanupShareCards removes the expired share cards from the database.
func CleanupShareCards() error {
	log.Println("Starting share card cleanup")

	db, err := database.NewConnection()
	if err != nil {
		return fmt.Errorf("couldn't get database connection: %w", err)
	}

	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}()

	repo, err := repositories.NewShareCardRepository(db)
	if err != nil {
		return fmt.Errorf("couldn't start the share card repository: %w", err)
	}

	cutoff := time.Now().Add(-shareCardRetention).Unix()
	removed, err := repo.DeleteShareCardsBefore(cutoff)
	if err != nil {
		return fmt.Errorf("couldn't delete the expired cards: %w", err)
	}

	log.Printf("Share card cleanup completed, removed %d cards", removed)
	return nil
}
