package profileControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/leonhardc/storefront-api/models"
	"github.com/leonhardc/storefront-api/utils"
)

type ProfileInput struct {
	CPF       string         `json:"cpf" binding:"required"`
	Birthdate string         `json:"birthdate" binding:"required"` // DD/MM/YYYY
	Address   models.Address `json:"address" binding:"required"`
}

// parseProfileInput validates CPF, CEP and birthdate, returning the parsed
// birthdate. Validation failures are written to the response.
func parseProfileInput(c *gin.Context, input ProfileInput) (time.Time, bool) {
	valid, err := utils.ValidateCPF(input.CPF)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "CPF must be 11 digits"})
		return time.Time{}, false
	}
	if !valid {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid CPF"})
		return time.Time{}, false
	}

	if len(input.Address.CEP) != 8 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "CEP must be 8 digits"})
		return time.Time{}, false
	}

	isoDate, err := utils.FormatDate(input.Birthdate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Birthdate must be DD/MM/YYYY"})
		return time.Time{}, false
	}
	birthdate, err := time.Parse("2006-01-02", isoDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Birthdate must be DD/MM/YYYY"})
		return time.Time{}, false
	}

	return birthdate, true
}

func profileView(p models.Profile) gin.H {
	return gin.H{
		"profile":     p,
		"cpf_display": utils.FormatCPF(p.CPF),
		"cep_display": utils.FormatCEP(p.Address.CEP),
		"age":         utils.AgeFromBirthdate(p.Birthdate),
	}
}

// GET /user/profile
func GetProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var profile models.Profile
		if err := db.Where("user_id = ?", c.GetString("user_id")).First(&profile).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
			return
		}
		c.JSON(http.StatusOK, profileView(profile))
	}
}

// POST /user/profile
func CreateProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var input ProfileInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		birthdate, ok := parseProfileInput(c, input)
		if !ok {
			return
		}

		var existing models.Profile
		if err := db.Where("user_id = ?", userID).First(&existing).Error; err == nil {
			c.JSON(http.StatusConflict, gin.H{"error": "Profile already exists"})
			return
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}

		profile := models.Profile{
			UserID:    userID,
			CPF:       input.CPF,
			Birthdate: birthdate,
			Address:   input.Address,
		}
		if err := db.Create(&profile).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create profile"})
			return
		}

		c.JSON(http.StatusCreated, profileView(profile))
	}
}

// PUT /user/profile
func UpdateProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var profile models.Profile
		if err := db.Where("user_id = ?", c.GetString("user_id")).First(&profile).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
			return
		}

		var input ProfileInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		birthdate, ok := parseProfileInput(c, input)
		if !ok {
			return
		}

		profile.CPF = input.CPF
		profile.Birthdate = birthdate
		profile.Address = input.Address
		if err := db.Save(&profile).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
			return
		}

		c.JSON(http.StatusOK, profileView(profile))
	}
}
