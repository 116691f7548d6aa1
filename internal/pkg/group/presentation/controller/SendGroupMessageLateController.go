package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AnastasiaYuhimenko/simple-messanger/internal/auth"
	qport "github.com/AnastasiaYuhimenko/simple-messanger/internal/infrastructure/queue/port"
	"github.com/AnastasiaYuhimenko/simple-messanger/internal/pkg/group/application/task"
)

// SendGroupMessageLateController schedules a group message for a later send
// via the task queue
// One controller per endpoint

type SendGroupMessageLateController struct {
	Queue qport.Client
}

func NewSendGroupMessageLateController(client qport.Client) *SendGroupMessageLateController {
	return &SendGroupMessageLateController{Queue: client}
}

type sendGroupMessageLateRequest struct {
	Text         string `json:"text" binding:"required"`
	DelaySeconds int    `json:"delay_seconds" binding:"required"`
}

func (h *SendGroupMessageLateController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		groupID := c.Param("groupId")
		if groupID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "groupId is required"})
			return
		}

		var req sendGroupMessageLateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if req.DelaySeconds <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "delay_seconds must be positive"})
			return
		}

		// Membership and the recipients snapshot are resolved by the handler
		// at delivery time, not at schedule time.
		t, err := task.NewSendGroupMessageTask(groupID, auth.GetUserID(c), req.Text)
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
