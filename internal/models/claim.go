package models

import (
	"time"
)

type Claim struct {
	ID        string    `json:"id"`
	ItemID    string    `json:"item_id"`
	ClaimerID string    `json:"claimer_id"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Item and Claimer are populated on joined listings. The json keys keep
	// the wire shape the SPA already consumes.
	Item    *ItemSummary `json:"items,omitempty"`
	Claimer *UserSummary `json:"users,omitempty"`
}
