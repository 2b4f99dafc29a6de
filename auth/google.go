package auth

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vkvijay314/cloud-cart-backend/models"
	"google.golang.org/api/idtoken"
	"gorm.io/gorm"
)

type googleLoginInput struct {
	IDToken string `json:"idToken" binding:"required"`
}

// GoogleLoginHandler verifies a Google ID token and signs the user in,
// creating the account (with its cart) on first login.
func GoogleLoginHandler(db *gorm.DB, jwtSecret, googleClientID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input googleLoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request payload"})
			return
		}

		payload, err := idtoken.Validate(c.Request.Context(), input.IDToken, googleClientID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid Google ID token"})
			return
		}

		googleID := payload.Subject
		email, _ := payload.Claims["email"].(string)
		name, _ := payload.Claims["name"].(string)
		picture, _ := payload.Claims["picture"].(string)

		var user models.User
		err = db.Preload("Cart.Items").Where("id = ?", googleID).First(&user).Error

		if errors.Is(err, gorm.ErrRecordNotFound) {
			user = models.User{
				ID:       googleID,
				Email:    email,
				Name:     name,
				Picture:  picture,
				Provider: "google",
				Role:     "user",
				Cart:     models.Cart{UserID: googleID},
			}
			if err := db.Create(&user).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create user"})
				return
			}
		} else if err == nil {
			// Refresh the profile fields on every login.
			db.Model(&user).Updates(models.User{Name: name, Picture: picture})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Database error"})
			return
		}

		token, err := IssueJWT(jwtSecret, user.ID, user.Email, user.Role, user.Name, user.Picture)
		if err != nil {
			log.Printf("token signing failed for user %s: %v", user.ID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to issue token"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Login successful",
			"token":   token,
			"user":    user,
		})
	}
}
