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

// GetDirectMessagesController returns the history of a direct chat
// One controller per endpoint

type GetDirectMessagesController struct {
	UC *usecase.GetDirectMessagesUseCase
}

func NewGetDirectMessagesController(pool *pgxpool.Pool) *GetDirectMessagesController {
	repo := adapter.NewPgChatRepository(pool)
	return &GetDirectMessagesController{UC: usecase.NewGetDirectMessagesUseCase(repo)}
}

func (h *GetDirectMessagesController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		chatID := c.Param("chatId")
		if chatID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "chatId is required"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		msgs, err := h.UC.Execute(ctx, chatID, auth.GetUserID(c))
		if err != nil {
			c.JSON(apperr.HTTPStatus(err), gin.H{"error": apperr.Message(err)})
			return
		}

		out := make([]gin.H, 0, len(msgs))
		for _, m := range msgs {
			out = append(out, gin.H{
				"id":           m.ID,
				"sender_id":    m.SenderID,
				"recipient_id": m.RecipientID,
				"text":         m.Text,
				"sent_at":      m.SentAt,
			})
		}

		c.JSON(http.StatusOK, gin.H{"messages": out, "count": len(out)})
	}
}
