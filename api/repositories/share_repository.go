package repositories

import (
	"errors"
	"riftrewind/pkg/database/models"

	"gorm.io/gorm"
)

// ErrShareCardNotFound is returned when no card exists for the given id.
var ErrShareCardNotFound = errors.New("share card not found")

// ShareCardRepository defines the public interface for handling share card data.
type ShareCardRepository interface {
	CreateShareCard(card *models.ShareCard) error
	GetShareCardById(id string) (*models.ShareCard, error)
	DeleteShareCardsBefore(cutoff int64) (int64, error)
}

// shareCardRepository is the repository instance.
type shareCardRepository struct {
	db *gorm.DB
}

// NewShareCardRepository creates and return the share card repository.
func NewShareCardRepository(db *gorm.DB) (ShareCardRepository, error) {
	return &shareCardRepository{db: db}, nil
}

// CreateShareCard persists a new share card.
func (sr *shareCardRepository) CreateShareCard(card *models.ShareCard) error {
	return sr.db.Create(card).Error
}

// GetShareCardById returns a card by its public id.
func (sr *shareCardRepository) GetShareCardById(id string) (*models.ShareCard, error) {
	var card models.ShareCard
	if err := sr.db.Where("id = ?", id).First(&card).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShareCardNotFound
		}
		return nil, err
	}

	return &card, nil
}

// DeleteShareCardsBefore removes every card created before the cutoff unix timestamp.
func (sr *shareCardRepository) DeleteShareCardsBefore(cutoff int64) (int64, error) {
	result := sr.db.Where("created_at < to_timestamp(?)", cutoff).Delete(&models.ShareCard{})
	return result.RowsAffected, result.Error
}
