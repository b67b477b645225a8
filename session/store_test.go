package session_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/leonhardc/storefront-api/cart"
	"github.com/leonhardc/storefront-api/models"
	"github.com/leonhardc/storefront-api/session"
)

type storeSuite struct {
	suite.Suite

	db    *gorm.DB
	store *session.Store
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(storeSuite))
}

func (s *storeSuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open("file:"+uuid.NewString()+"?mode=memory&cache=shared"), &gorm.Config{})
	s.Require().NoError(err)
	s.Require().NoError(db.AutoMigrate(&models.Session{}))

	s.db = db
	s.store = session.NewStore(db)
}

func (s *storeSuite) TestCreateAndGet() {
	sess, err := s.store.Create()
	s.Require().NoError(err)
	s.NotEmpty(sess.ID)

	got, err := s.store.Get(sess.ID)
	s.Require().NoError(err)
	s.Equal(sess.ID, got.ID)
}

func (s *storeSuite) TestGetUnknownSession() {
	_, err := s.store.Get(uuid.NewString())
	s.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (s *storeSuite) TestExpiredSessionIsMissing() {
	sess := models.Session{ID: uuid.NewString(), ExpiresAt: time.Now().Add(-time.Hour)}
	s.Require().NoError(s.db.Create(&sess).Error)

	_, err := s.store.Get(sess.ID)
	s.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (s *storeSuite) TestCartRoundTrip() {
	sess, err := s.store.Create()
	s.Require().NoError(err)

	// lazily empty before any save
	c, err := s.store.GetCart(sess.ID)
	s.Require().NoError(err)
	s.True(c.IsEmpty())

	_, _, err = cart.AddOrIncrement(c, "10", cart.CatalogEntry{
		ProductID:   1,
		ProductName: "Camiseta",
		UnitPrice:   decimal.NewFromFloat(49.90),
		Stock:       3,
	})
	s.Require().NoError(err)
	s.Require().NoError(s.store.SetCart(sess.ID, c))

	got, err := s.store.GetCart(sess.ID)
	s.Require().NoError(err)
	s.Len(got, 1)
	s.Equal(1, got["10"].Quantity)
	s.True(got["10"].UnitPrice.Equal(decimal.NewFromFloat(49.90)))
}

func (s *storeSuite) TestMessagesArePoppedOnce() {
	sess, err := s.store.Create()
	s.Require().NoError(err)

	s.Require().NoError(s.store.AddMessage(sess.ID, session.SeverityError, "Insufficient stock."))
	s.Require().NoError(s.store.AddMessage(sess.ID, session.SeveritySuccess, "Product added to your cart."))

	messages, err := s.store.PopMessages(sess.ID)
	s.Require().NoError(err)
	s.Require().Len(messages, 2)
	s.Equal(session.SeverityError, messages[0].Severity)
	s.Equal("Product added to your cart.", messages[1].Text)

	messages, err = s.store.PopMessages(sess.ID)
	s.Require().NoError(err)
	s.Empty(messages)
}

func (s *storeSuite) TestAttachUser() {
	sess, err := s.store.Create()
	s.Require().NoError(err)

	s.Require().NoError(s.store.AttachUser(sess.ID, "user-1"))

	got, err := s.store.Get(sess.ID)
	s.Require().NoError(err)
	s.Equal("user-1", got.UserID)
}

func (s *storeSuite) TestPruneExpired() {
	live, err := s.store.Create()
	s.Require().NoError(err)

	dead := models.Session{ID: uuid.NewString(), ExpiresAt: time.Now().Add(-time.Minute)}
	s.Require().NoError(s.db.Create(&dead).Error)

	pruned, err := s.store.PruneExpired()
	s.Require().NoError(err)
	s.Equal(int64(1), pruned)

	_, err = s.store.Get(live.ID)
	s.NoError(err)
}
