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

// RefreshTokenController exchanges a valid refresh token for a fresh access
// token. The refresh token itself is not rotated.
// One controller per endpoint

type RefreshTokenController struct {
	UC     *usecase.GetUserUseCase
	Tokens *auth.TokenService
}

func NewRefreshTokenController(pool *pgxpool.Pool, tokens *auth.TokenService) *RefreshTokenController {
	repo := adapter.NewPgUserRepository(pool)
	return &RefreshTokenController{UC: usecase.NewGetUserUseCase(repo), Tokens: tokens}
}

func (h *RefreshTokenController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := auth.ExtractToken(c, auth.KindRefresh)
		subject, err := h.Tokens.Validate(tokenStr, auth.KindRefresh)
		if err != nil {
			c.JSON(apperr.HTTPStatus(err), gin.H{"error": apperr.Message(err)})
			return
		}

		// The subject must still exist before a new access token is signed.
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		user, err := h.UC.Execute(ctx, subject)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "token subject no longer exists"})
			return
		}

		access, err := h.Tokens.IssueAccess(user.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not issue token"})
			return
		}
		setTokenCookie(c, auth.AccessCookie, access, h.Tokens.AccessTTL())

		c.JSON(http.StatusOK, gin.H{
			"ok":           true,
			"access_token": access,
			"message":      "access token refreshed",
		})
	}
}
