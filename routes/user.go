package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	profileControllers "github.com/leonhardc/storefront-api/controllers/profile"
	userControllers "github.com/leonhardc/storefront-api/controllers/user"
	"github.com/leonhardc/storefront-api/middleware"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── Account ────────────────
		userGroup.GET("", userControllers.GetUser(db))    // GET /user
		userGroup.PUT("", userControllers.UpdateUser(db)) // PUT /user

		// ──────────────── Purchase Profile ────────────────
		profileGroup := userGroup.Group("/profile")
		{
			profileGroup.GET("", profileControllers.GetProfile(db))     // GET /user/profile
			profileGroup.POST("", profileControllers.CreateProfile(db)) // POST /user/profile
			profileGroup.PUT("", profileControllers.UpdateProfile(db))  // PUT /user/profile
		}
	}
}
