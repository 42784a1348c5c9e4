package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"riftrewind/api/dto"
	"riftrewind/api/filters"
	"riftrewind/api/repositories"
	"riftrewind/pkg/database/models"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Share cards stop resolving after this long.
const shareCardLifetime = 30 * 24 * time.Hour

// ErrShareCardExpired is returned when a card exists but aged out.
var ErrShareCardExpired = errors.New("share card expired")

// ShareService creates and resolves the public share cards.
type ShareService struct {
	summaries SummaryProvider

	ShareCardRepository repositories.ShareCardRepository
}

type ShareServiceDeps struct {
	DB        *gorm.DB
	Summaries SummaryProvider

	// Optional, defaults to the gorm backed repository.
	Repository repositories.ShareCardRepository
}

// NewShareService creates a service for handling the share cards.
func NewShareService(deps *ShareServiceDeps) (*ShareService, error) {
	repo := deps.Repository
	if repo == nil {
		var err error
		repo, err = repositories.NewShareCardRepository(deps.DB)
		if err != nil {
			return nil, errors.New("failed to start the share card repository")
		}
	}

	return &ShareService{
		summaries:           deps.Summaries,
		ShareCardRepository: repo,
	}, nil
}

// CreateShareCard snapshots the current player summary under a random id.
func (ss *ShareService) CreateShareCard(ctx context.Context, params *filters.ShareCreateParams) (*dto.ShareCardResult, error) {
	summary, err := ss.summaries.GetPlayerSummary(ctx, params.Puuid)
	if err != nil {
		return nil, err
	}

	snapshot, err := json.Marshal(summary)
	if err != nil {
		return nil, err
	}

	id, err := newShareCardId()
	if err != nil {
		return nil, err
	}

	card := &models.ShareCard{
		ID:          id,
		Puuid:       params.Puuid,
		DisplayName: params.DisplayName,
		Snapshot:    datatypes.JSON(snapshot),
	}

	if err := ss.ShareCardRepository.CreateShareCard(card); err != nil {
		return nil, fmt.Errorf("couldn't store the share card: %w", err)
	}

	return shareCardToDto(card), nil
}

// GetShareCard resolves a public share card id.
func (ss *ShareService) GetShareCard(ctx context.Context, id string) (*dto.ShareCardResult, error) {
	card, err := ss.ShareCardRepository.GetShareCardById(id)
	if err != nil {
		return nil, err
	}

	if time.Since(card.CreatedAt) > shareCardLifetime {
		return nil, ErrShareCardExpired
	}

	return shareCardToDto(card), nil
}

// newShareCardId generates the random url-safe card identifier.
func newShareCardId() (string, error) {
	raw := make([]byte, 16)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}

	return hex.EncodeToString(raw), nil
}

func shareCardToDto(card *models.ShareCard) *dto.ShareCardResult {
	return &dto.ShareCardResult{
		Id:          card.ID,
		Puuid:       card.Puuid,
		DisplayName: card.DisplayName,
		Snapshot:    json.RawMessage(card.Snapshot),
		CreatedAt:   card.CreatedAt,
		ExpiresAt:   card.CreatedAt.Add(shareCardLifetime),
	}
}
