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
	"github.com/AnastasiaYuhimenko/simple-messanger/pkg/apperr"
)

// ListDirectChatsController lists the caller's direct chats
// One controller per endpoint

type ListDirectChatsController struct {
	UC *usecase.ListDirectChatsUseCase
}

func NewListDirectChatsController(pool *pgxpool.Pool) *ListDirectChatsController {
	repo := adapter.NewPgChatRepository(pool)
	return &ListDirectChatsController{UC: usecase.NewListDirectChatsUseCase(repo)}
}

func (h *ListDirectChatsController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := auth.GetUserID(c)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		chats, err := h.UC.Execute(ctx, userID)
		if err != nil {
			c.JSON(apperr.HTTPStatus(err), gin.H{"error": apperr.Message(err)})
			return
		}

		out := make([]gin.H, 0, len(chats))
		for _, ch := range chats {
			out = append(out, gin.H{
				"id":         ch.ID,
				"peer_id":    ch.PeerOf(userID),
				"created_at": ch.CreatedAt,
			})
		}

		c.JSON(http.StatusOK, gin.H{"chats": out, "count": len(out)})
	}
}
