package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AnastasiaYuhimenko/simple-messanger/internal/auth"
	qport "github.com/AnastasiaYuhimenko/simple-messanger/internal/infrastructure/queue/port"
	"github.com/AnastasiaYuhimenko/simple-messanger/internal/pkg/chat/application/task"
)

// SendDirectMessageLateController schedules a direct message for a later
// send via the task queue
// One controller per endpoint

type SendDirectMessageLateController struct {
	Queue qport.Client
}

func NewSendDirectMessageLateController(client qport.Client) *SendDirectMessageLateController {
	return &SendDirectMessageLateController{Queue: client}
}

type sendDirectMessageLateRequest struct {
	Text         string `json:"text" binding:"required"`
	DelaySeconds int    `json:"delay_seconds" binding:"required"`
}

func (h *SendDirectMessageLateController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		chatID := c.Param("chatId")
		if chatID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "chatId is required"})
			return
		}

		var req sendDirectMessageLateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if req.DelaySeconds <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "delay_seconds must be positive"})
			return
		}

		// Membership is re-checked by the handler at delivery time, so a stale
		// schedule cannot leak into a chat the sender has meanwhile lost.
		t, err := task.NewSendDirectMessageTask(chatID, auth.GetUserID(c), req.Text)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not build task"})
			return
		}

		processAt := time.Now().Add(time.Duration(req.DelaySeconds) * time.Second)
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		id, err := h.Queue.Enqueue(ctx, t, qport.EnqueueOption{
			Queue:     "messages",
			ProcessAt: processAt,
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not schedule message"})
			return
		}

		c.JSON(http.StatusAccepted, gin.H{
			"task_id":    id,
			"process_at": processAt.UTC(),
			"message":    "message scheduled",
		})
	}
}
