package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AnastasiaYuhimenko/simple-messanger/internal/auth"
	"github.com/AnastasiaYuhimenko/simple-messanger/internal/pkg/chat/application/usecase"
	"github.com/AnastasiaYuhimenko/simple-messanger/internal/pkg/chat/persistence/repository/adapter"
	userAdapter "github.com/AnastasiaYuhimenko/simple-messanger/internal/pkg/identity/persistence/repository/adapter"
	"github.com/AnastasiaYuhimenko/simple-messanger/pkg/apperr"
)

// CreateDirectChatController handles opening a 1:1 chat with a peer
// One controller per endpoint

type CreateDirectChatController struct {
	UC *usecase.CreateDirectChatUseCase
}

func NewCreateDirectChatController(pool *pgxpool.Pool) *CreateDirectChatController {
	chats := adapter.NewPgChatRepository(pool)
	users := userAdapter.NewPgUserRepository(pool)
	return &CreateDirectChatController{UC: usecase.NewCreateDirectChatUseCase(chats, users)}
}

type createDirectChatRequest struct {
	Username string `json:"username" binding:"required"`
}

func (h *CreateDirectChatController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createDirectChatRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		in := usecase.CreateDirectChatInput{
			CreatorID:    auth.GetUserID(c),
			PeerUsername: req.Username,
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		created, err := h.UC.Execute(ctx, in)
		if err != nil {
			c.JSON(apperr.HTTPStatus(err), gin.H{"error": apperr.Message(err)})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"id":         created.ID,
			"user_a":     created.UserA,
			"user_b":     created.UserB,
			"created_at": created.CreatedAt,
		})
	}
}
