package controller

import (
	"crypto/subtle"
	"log"
	"net/http"
	"os"
	"time"

	"gingallery/models"
	"gingallery/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Login checks the admin credentials configured in the environment and
// issues a bearer token, both as JSON and as a cookie for browser clients.
func Login(c *gin.Context) {

	var login models.AdminLogin

	if err := c.ShouldBind(&login); err != nil {
		log.Println(err)
		c.IndentedJSON(http.StatusBadRequest, gin.H{"error": "Invalid Request Body"})
		return
	}

	validate := validator.New()
	if err := validate.Struct(login); err != nil {
		log.Println(err)
		c.IndentedJSON(http.StatusBadRequest, gin.H{"error": "Validation Failed", "details": err.Error()})
		return
	}

	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminHash := os.Getenv("ADMIN_PASSWORD_HASH")

	if subtle.ConstantTimeCompare([]byte(login.Email), []byte(adminEmail)) != 1 {
		log.Println("login failed for:", login.Email)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect email or password"})
		return
	}
	if err := utils.ComparePass(login.Password, adminHash); err != nil {
		log.Println("login failed for:", login.Email)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect email or password"})
		return
	}

	token, err := utils.SignedToken(login.Email, "admin")
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	http.SetCookie(c.Writer, &http.Cookie{
		Name:     "Bearer",
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(24 * time.Hour),
		Secure:   false,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	log.Println("login successful for:", login.Email)
	c.IndentedJSON(http.StatusOK, models.Token{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

func Logout(c *gin.Context) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     "Bearer",
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-1 * time.Second),
		MaxAge:   -1,
		Secure:   false,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	c.IndentedJSON(http.StatusOK, gin.H{"status": "Logout Successfull"})
}
