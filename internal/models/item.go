package models

import (
	"time"
)

type Item struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	ItemName       string    `json:"item_name"`
	Description    string    `json:"description"`
	Location       string    `json:"location"`
	DateFound      string    `json:"date_found"`
	ContactDetails string    `json:"contact_details"`
	AdditionalInfo *string   `json:"additional_info,omitempty"`
	ImageURL       *string   `json:"image_url,omitempty"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Owner is populated on joined listings. The json key keeps the wire
	// shape the SPA already consumes.
	Owner *UserSummary `json:"users,omitempty"`
}

// ItemSummary is the joined item projection embedded in claim listings.
type ItemSummary struct {
	ID       string  `json:"id"`
	ItemName string  `json:"item_name"`
	ImageURL *string `json:"image_url,omitempty"`
	UserID   string  `json:"user_id,omitempty"`
	Location string  `json:"location,omitempty"`
}

// ItemSearchFilter carries optional search parameters. An empty Query and
// Location return the unfiltered list; Location "All" also means no filter.
type ItemSearchFilter struct {
	Query    string
	Location string
}
