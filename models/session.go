package models

import (
	"time"

	"gorm.io/datatypes"
)

// Session is the server-side storage behind the session cookie. The cart and
// the pending flash messages are kept as JSON blobs; the session package owns
// their encoding.
type Session struct {
	ID        string         `gorm:"primaryKey" json:"id"`
	UserID    string         `gorm:"index" json:"user_id"`
	Cart      datatypes.JSON `json:"cart"`
	Messages  datatypes.JSON `json:"messages"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	ExpiresAt time.Time      `gorm:"index" json:"expires_at"`
}
