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

// MeController returns the authenticated user's own profile
// One controller per endpoint

type MeController struct {
	UC *usecase.GetUserUseCase
}

func NewMeController(pool *pgxpool.Pool) *MeController {
	repo := adapter.NewPgUserRepository(pool)
	return &MeController{UC: usecase.NewGetUserUseCase(repo)}
}

func (h *MeController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := auth.GetUserID(c)
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		user, err := h.UC.Execute(ctx, userID)
		if err != nil {
			c.JSON(apperr.HTTPStatus(err), gin.H{"error": apperr.Message(err)})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"id":         user.ID,
			"username":   user.Username,
			"email":      user.Email,
			"img":        user.Img,
			"created_at": user.CreatedAt,
		})
	}
}
