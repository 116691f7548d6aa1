package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AnastasiaYuhimenko/simple-messanger/internal/auth"
	"github.com/AnastasiaYuhimenko/simple-messanger/internal/infrastructure/realtime"
	"github.com/AnastasiaYuhimenko/simple-messanger/internal/pkg/chat/application/usecase"
	"github.com/AnastasiaYuhimenko/simple-messanger/internal/pkg/chat/persistence/repository/adapter"
	"github.com/AnastasiaYuhimenko/simple-messanger/pkg/apperr"
)

// SendDirectMessageController handles the immediate send into a direct chat
// One controller per endpoint

type SendDirectMessageController struct {
	UC *usecase.SendDirectMessageUseCase
}

func NewSendDirectMessageController(pool *pgxpool.Pool, fanout *realtime.Fanout) *SendDirectMessageController {
	repo := adapter.NewPgChatRepository(pool)
	return &SendDirectMessageController{UC: usecase.NewSendDirectMessageUseCase(repo, fanout)}
}

type sendDirectMessageRequest struct {
	Text string `json:"text" binding:"required"`
}

func (h *SendDirectMessageController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		chatID := c.Param("chatId")
		if chatID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "chatId is required"})
			return
		}

		var req sendDirectMessageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		in := usecase.SendDirectMessageInput{
			ChatID:   chatID,
			SenderID: auth.GetUserID(c),
			Text:     req.Text,
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		msg, err := h.UC.Execute(ctx, in)
		if err != nil {
			c.JSON(apperr.HTTPStatus(err), gin.H{"error": apperr.Message(err)})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"id":           msg.ID,
			"sender_id":    msg.SenderID,
			"recipient_id": msg.RecipientID,
			"text":         msg.Text,
			"sent_at":      msg.SentAt,
		})
	}
}
