package session

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/leonhardc/storefront-api/cart"
	"github.com/leonhardc/storefront-api/models"
)

// TTL is how long a session lives without being renewed.
const TTL = 14 * 24 * time.Hour

type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeveritySuccess Severity = "success"
)

// Message is one (severity, text) pair queued for display on the user's next
// page load.
type Message struct {
	Severity Severity `json:"severity"`
	Text     string   `json:"text"`
}

// Store persists carts and flash messages per session row. Cart mutations are
// read-modify-write with no locking: concurrent requests from the same
// session race last-write-wins, which is acceptable because a session is
// logically private to one user.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Create inserts a fresh empty session.
func (s *Store) Create() (models.Session, error) {
	sess := models.Session{
		ID:        uuid.NewString(),
		ExpiresAt: time.Now().Add(TTL),
	}
	if err := s.db.Create(&sess).Error; err != nil {
		return models.Session{}, fmt.Errorf("create session: %w", err)
	}
	return sess, nil
}

// Get fetches a live session by ID. Expired sessions are treated as missing.
func (s *Store) Get(id string) (models.Session, error) {
	var sess models.Session
	if err := s.db.Where("id = ? AND expires_at > ?", id, time.Now()).First(&sess).Error; err != nil {
		return models.Session{}, err
	}
	return sess, nil
}

// GetCart decodes the session's cart. A session without a cart yet yields an
// empty one, created lazily.
func (s *Store) GetCart(id string) (cart.Cart, error) {
	sess, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if len(sess.Cart) == 0 {
		return cart.Cart{}, nil
	}
	var c cart.Cart
	if err := json.Unmarshal(sess.Cart, &c); err != nil {
		return nil, fmt.Errorf("decode session cart: %w", err)
	}
	if c == nil {
		c = cart.Cart{}
	}
	return c, nil
}

// SetCart encodes and saves the cart back onto the session row.
func (s *Store) SetCart(id string, c cart.Cart) error {
	raw, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode session cart: %w", err)
	}
	return s.db.Model(&models.Session{}).Where("id = ?", id).
		Update("cart", datatypes.JSON(raw)).Error
}

// AttachUser binds a session to an authenticated user so the checkout flow
// can find the cart started before login.
func (s *Store) AttachUser(id, userID string) error {
	return s.db.Model(&models.Session{}).Where("id = ?", id).
		Update("user_id", userID).Error
}

// AddMessage queues a flash message on the session.
func (s *Store) AddMessage(id string, severity Severity, text string) error {
	sess, err := s.Get(id)
	if err != nil {
		return err
	}

	var messages []Message
	if len(sess.Messages) > 0 {
		if err := json.Unmarshal(sess.Messages, &messages); err != nil {
			return fmt.Errorf("decode session messages: %w", err)
		}
	}
	messages = append(messages, Message{Severity: severity, Text: text})

	raw, err := json.Marshal(messages)
	if err != nil {
		return fmt.Errorf("encode session messages: %w", err)
	}
	return s.db.Model(&models.Session{}).Where("id = ?", id).
		Update("messages", datatypes.JSON(raw)).Error
}

// PopMessages returns the queued flash messages and clears them, so each
// message is displayed once.
func (s *Store) PopMessages(id string) ([]Message, error) {
	sess, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if len(sess.Messages) == 0 {
		return nil, nil
	}

	var messages []Message
	if err := json.Unmarshal(sess.Messages, &messages); err != nil {
		return nil, fmt.Errorf("decode session messages: %w", err)
	}

	if err := s.db.Model(&models.Session{}).Where("id = ?", id).
		Update("messages", datatypes.JSON("[]")).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

// PruneExpired deletes sessions past their expiry and reports how many rows
// went away.
func (s *Store) PruneExpired() (int64, error) {
	result := s.db.Where("expires_at <= ?", time.Now()).Delete(&models.Session{})
	return result.RowsAffected, result.Error
}
