package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AnastasiaYuhimenko/simple-messanger/internal/auth"
	"github.com/AnastasiaYuhimenko/simple-messanger/internal/pkg/identity/application/usecase"
	"github.com/AnastasiaYuhimenko/simple-messanger/internal/pkg/identity/persistence/repository/adapter"
	"github.com/AnastasiaYuhimenko/simple-messanger/pkg/apperr"
)

// LoginController authenticates a user and sets the token cookies
// One controller per endpoint

type LoginController struct {
	UC     *usecase.LoginUseCase
	Tokens *auth.TokenService
}

func NewLoginController(pool *pgxpool.Pool, tokens *auth.TokenService) *LoginController {
	repo := adapter.NewPgUserRepository(pool)
	uc := usecase.NewLoginUseCase(repo, tokens)
	return &LoginController{UC: uc, Tokens: tokens}
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *LoginController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		res, err := h.UC.Execute(ctx, usecase.LoginInput{Username: req.Username, Password: req.Password})
		if err != nil {
			c.JSON(apperr.HTTPStatus(err), gin.H{"error": apperr.Message(err)})
			return
		}

		setTokenCookie(c, auth.AccessCookie, res.AccessToken, h.Tokens.AccessTTL())
		setTokenCookie(c, auth.RefreshCookie, res.RefreshToken, h.Tokens.RefreshTTL())

		c.JSON(http.StatusOK, gin.H{
			"ok":            true,
			"access_token":  res.AccessToken,
			"refresh_token": res.RefreshToken,
			"message":       "authorization successful",
		})
	}
}

// setTokenCookie writes an HTTP-only cookie scoped to the whole site.
func setTokenCookie(c *gin.Context, name, value string, ttl time.Duration) {
	c.SetCookie(name, value, int(ttl.Seconds()), "/", "", false, true)
}

// clearTokenCookie expires the named cookie immediately.
func clearTokenCookie(c *gin.Context, name string) {
	c.SetCookie(name, "", -1, "/", "", false, true)
}
