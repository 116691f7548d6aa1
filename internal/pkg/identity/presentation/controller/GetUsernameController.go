package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AnastasiaYuhimenko/simple-messanger/internal/pkg/identity/application/usecase"
	"github.com/AnastasiaYuhimenko/simple-messanger/internal/pkg/identity/persistence/repository/adapter"
	"github.com/AnastasiaYuhimenko/simple-messanger/pkg/apperr"
)

// GetUsernameController resolves a user id to its display name
// One controller per endpoint

type GetUsernameController struct {
	UC *usecase.GetUserUseCase
}

func NewGetUsernameController(pool *pgxpool.Pool) *GetUsernameController {
	repo := adapter.NewPgUserRepository(pool)
	return &GetUsernameController{UC: usecase.NewGetUserUseCase(repo)}
}

type getUsernameRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

func (h *GetUsernameController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req getUsernameRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		user, err := h.UC.Execute(ctx, req.UserID)
		if err != nil {
			c.JSON(apperr.HTTPStatus(err), gin.H{"error": apperr.Message(err)})
			return
		}

		c.JSON(http.StatusOK, gin.H{"username": user.Username})
	}
}
