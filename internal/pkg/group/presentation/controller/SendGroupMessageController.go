package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AnastasiaYuhimenko/simple-messanger/internal/auth"
	"github.com/AnastasiaYuhimenko/simple-messanger/internal/infrastructure/realtime"
	"github.com/AnastasiaYuhimenko/simple-messanger/internal/pkg/group/application/usecase"
	"github.com/AnastasiaYuhimenko/simple-messanger/internal/pkg/group/persistence/repository/adapter"
	"github.com/AnastasiaYuhimenko/simple-messanger/pkg/apperr"
)

// SendGroupMessageController handles the immediate send into a group
// One controller per endpoint

type SendGroupMessageController struct {
	UC *usecase.SendGroupMessageUseCase
}

func NewSendGroupMessageController(pool *pgxpool.Pool, fanout *realtime.Fanout) *SendGroupMessageController {
	repo := adapter.NewPgGroupRepository(pool)
	return &SendGroupMessageController{UC: usecase.NewSendGroupMessageUseCase(repo, fanout)}
}

type sendGroupMessageRequest struct {
	Text string `json:"text" binding:"required"`
}

func (h *SendGroupMessageController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		groupID := c.Param("groupId")
		if groupID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "groupId is required"})
			return
		}

		var req sendGroupMessageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		in := usecase.SendGroupMessageInput{
			GroupID:  groupID,
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
			"id":        msg.ID,
			"group_id":  msg.GroupID,
			"sender_id": msg.SenderID,
			"text":      msg.Text,
			"sent_at":   msg.SentAt,
		})
	}
}
