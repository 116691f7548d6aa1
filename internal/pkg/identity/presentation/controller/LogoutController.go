package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AnastasiaYuhimenko/simple-messanger/internal/auth"
)

// LogoutController clears the access token cookie. The refresh cookie is left
// alone so the session can be resumed with an explicit refresh.
// One controller per endpoint

type LogoutController struct{}

func NewLogoutController() *LogoutController {
	return &LogoutController{}
}

func (h *LogoutController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		clearTokenCookie(c, auth.AccessCookie)
		c.JSON(http.StatusOK, gin.H{"message": "user logged out"})
	}
}
