package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/leonhardc/storefront-api/middleware"
	"github.com/leonhardc/storefront-api/session"
)

// SetupRoutes is the single entry-point that wires up the Store, Auth, User,
// Checkout and Admin route groups. Every request gets a session first.
func SetupRoutes(r *gin.Engine, db *gorm.DB, sessions *session.Store) {
	r.Use(middleware.Session(sessions))

	// Public storefront routes (no auth)
	SetupStoreRoutes(r, db, sessions)

	// Auth routes (register/login)
	SetupAuthRoutes(r, db, sessions)

	// User routes (JWT-protected)
	SetupUserRoutes(r, db)

	// Checkout routes (JWT-protected, session cart)
	SetupCheckoutRoutes(r, db, sessions)

	// Admin routes (API-Key-protected)
	SetupAdminRoutes(r, db)
}
