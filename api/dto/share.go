package dto

import (
	"encoding/json"
	"time"
)

// ShareCardResult is the public shape of a stored share card.
type ShareCardResult struct {
	Id          string          `json:"id"`
	Puuid       string          `json:"puuid"`
	DisplayName string          `json:"display_name"`
	Snapshot    json.RawMessage `json:"snapshot"`
	CreatedAt   time.Time       `json:"created_at"`
	ExpiresAt   time.Time       `json:"expires_at"`
}
