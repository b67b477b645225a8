package cartControllers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/leonhardc/storefront-api/cart"
	"github.com/leonhardc/storefront-api/middleware"
	"github.com/leonhardc/storefront-api/models"
	"github.com/leonhardc/storefront-api/routes"
	"github.com/leonhardc/storefront-api/session"
)

type cartControllersSuite struct {
	suite.Suite

	db        *gorm.DB
	sessions  *session.Store
	router    *gin.Engine
	sessionID string

	ample      models.Variation // plenty of stock
	scarce     models.Variation // stock of 2
	outOfStock models.Variation // stock of 0
}

func TestCartControllersSuite(t *testing.T) {
	suite.Run(t, new(cartControllersSuite))
}

func (s *cartControllersSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file:"+gofakeit.UUID()+"?mode=memory&cache=shared"), &gorm.Config{})
	s.Require().NoError(err)
	s.Require().NoError(db.AutoMigrate(
		&models.Product{}, &models.Variation{}, &models.Session{},
	))
	s.db = db
	s.sessions = session.NewStore(db)

	product := models.Product{
		Name:           gofakeit.ProductName(),
		Slug:           gofakeit.UUID(),
		MarketingPrice: decimal.NewFromFloat(49.90),
		Variations: []models.Variation{
			{Name: "P", Price: decimal.NewFromFloat(49.90), PricePromotional: decimal.NewFromFloat(39.90), Stock: 10},
			{Name: "M", Price: decimal.NewFromFloat(49.90), Stock: 2},
			{Name: "G", Price: decimal.NewFromFloat(49.90), Stock: 0},
		},
	}
	s.Require().NoError(db.Create(&product).Error)
	s.ample = product.Variations[0]
	s.scarce = product.Variations[1]
	s.outOfStock = product.Variations[2]

	r := gin.New()
	r.Use(middleware.Session(s.sessions))
	routes.SetupStoreRoutes(r, db, s.sessions)
	s.router = r

	sess, err := s.sessions.Create()
	s.Require().NoError(err)
	s.sessionID = sess.ID
}

func (s *cartControllersSuite) do(method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: s.sessionID})
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *cartControllersSuite) addURL(variationID uint) string {
	return fmt.Sprintf("/cart/add?vid=%d", variationID)
}

type cartView struct {
	Items              map[string]cart.Line `json:"items"`
	TotalQuantity      int                  `json:"total_quantity"`
	TotalAmount        decimal.Decimal      `json:"total_amount"`
	TotalAmountDisplay string               `json:"total_amount_display"`
}

func (s *cartControllersSuite) getCart() cartView {
	w := s.do(http.MethodGet, "/cart")
	s.Require().Equal(http.StatusOK, w.Code)

	var view cartView
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &view))
	return view
}

func (s *cartControllersSuite) popMessages() []session.Message {
	w := s.do(http.MethodGet, "/messages")
	s.Require().Equal(http.StatusOK, w.Code)

	var body struct {
		Messages []session.Message `json:"messages"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	return body.Messages
}

func (s *cartControllersSuite) TestAddInsertsLine() {
	w := s.do(http.MethodPost, s.addURL(s.ample.ID))
	s.Require().Equal(http.StatusOK, w.Code)

	var line cart.Line
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &line))
	s.Equal(1, line.Quantity)
	s.True(line.UnitPrice.Equal(decimal.NewFromFloat(49.90)))

	view := s.getCart()
	s.Equal(1, view.TotalQuantity)
	s.Equal("R$ 39,90", view.TotalAmountDisplay) // promotional price wins
}

func (s *cartControllersSuite) TestAddAccumulates() {
	s.do(http.MethodPost, s.addURL(s.ample.ID))
	w := s.do(http.MethodPost, s.addURL(s.ample.ID))
	s.Require().Equal(http.StatusOK, w.Code)

	var line cart.Line
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &line))
	s.Equal(2, line.Quantity)
	s.True(line.LineTotal.Equal(decimal.NewFromFloat(99.80)))
}

func (s *cartControllersSuite) TestAddClampsAtStock() {
	for i := 0; i < 2; i++ {
		w := s.do(http.MethodPost, s.addURL(s.scarce.ID))
		s.Require().Equal(http.StatusOK, w.Code)
	}
	s.popMessages()

	// Third unit exceeds the stock of 2: clamped, but the call succeeds.
	w := s.do(http.MethodPost, s.addURL(s.scarce.ID))
	s.Require().Equal(http.StatusOK, w.Code)

	var line cart.Line
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &line))
	s.Equal(2, line.Quantity)

	messages := s.popMessages()
	s.Require().Len(messages, 2)
	s.Equal(session.SeverityWarning, messages[0].Severity)
	s.Contains(messages[0].Text, "Insufficient stock for 3x")
	s.Equal(session.SeveritySuccess, messages[1].Severity)
}

func (s *cartControllersSuite) TestAddOutOfStock() {
	w := s.do(http.MethodPost, s.addURL(s.outOfStock.ID))
	s.Equal(http.StatusConflict, w.Code)

	view := s.getCart()
	s.Equal(0, view.TotalQuantity)
	s.Empty(view.Items)
}

func (s *cartControllersSuite) TestAddUnknownVariation() {
	w := s.do(http.MethodPost, "/cart/add?vid=99999")
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *cartControllersSuite) TestAddWithoutVid() {
	w := s.do(http.MethodPost, "/cart/add")
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *cartControllersSuite) TestBuyNowPointsAtSummary() {
	w := s.do(http.MethodPost, fmt.Sprintf("/cart/buy?vid=%d", s.ample.ID))
	s.Require().Equal(http.StatusOK, w.Code)

	var body struct {
		Item cart.Line `json:"item"`
		Next string    `json:"next"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	s.Equal(1, body.Item.Quantity)
	s.Equal("/checkout/summary", body.Next)
}

func (s *cartControllersSuite) TestRemove() {
	s.do(http.MethodPost, s.addURL(s.ample.ID))

	w := s.do(http.MethodDelete, fmt.Sprintf("/cart/remove?vid=%d", s.ample.ID))
	s.Require().Equal(http.StatusOK, w.Code)

	view := s.getCart()
	s.Empty(view.Items)
	s.Equal(0, view.TotalQuantity)
}

func (s *cartControllersSuite) TestRemoveAbsentIsNotFound() {
	s.do(http.MethodPost, s.addURL(s.ample.ID))

	w := s.do(http.MethodDelete, "/cart/remove?vid=99999")
	s.Equal(http.StatusNotFound, w.Code)

	view := s.getCart()
	s.Len(view.Items, 1)
}

func (s *cartControllersSuite) TestMessagesDrainedOnce() {
	s.do(http.MethodPost, s.addURL(s.ample.ID))

	messages := s.popMessages()
	s.Require().Len(messages, 1)
	s.Equal(session.SeveritySuccess, messages[0].Severity)
	s.Contains(messages[0].Text, "added to your cart")

	s.Empty(s.popMessages())
}

func (s *cartControllersSuite) TestTotalsAcrossVariations() {
	s.do(http.MethodPost, s.addURL(s.ample.ID))  // 39,90 promotional
	s.do(http.MethodPost, s.addURL(s.scarce.ID)) // 49,90 regular

	view := s.getCart()
	s.Equal(2, view.TotalQuantity)
	s.True(view.TotalAmount.Equal(decimal.NewFromFloat(89.80)))
	s.Equal("R$ 89,80", view.TotalAmountDisplay)
}
