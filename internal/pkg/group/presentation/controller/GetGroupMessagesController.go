package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AnastasiaYuhimenko/simple-messanger/internal/auth"
	"github.com/AnastasiaYuhimenko/simple-messanger/internal/pkg/group/application/usecase"
	"github.com/AnastasiaYuhimenko/simple-messanger/internal/pkg/group/persistence/repository/adapter"
	"github.com/AnastasiaYuhimenko/simple-messanger/pkg/apperr"
)

// GetGroupMessagesController returns the message history of a group
// One controller per endpoint

type GetGroupMessagesController struct {
	UC *usecase.GetGroupMessagesUseCase
}

func NewGetGroupMessagesController(pool *pgxpool.Pool) *GetGroupMessagesController {
	repo := adapter.NewPgGroupRepository(pool)
	return &GetGroupMessagesController{UC: usecase.NewGetGroupMessagesUseCase(repo)}
}

func (h *GetGroupMessagesController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		groupID := c.Param("groupId")
		if groupID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "groupId is required"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		msgs, err := h.UC.Execute(ctx, groupID, auth.GetUserID(c))
		if err != nil {
			c.JSON(apperr.HTTPStatus(err), gin.H{"error": apperr.Message(err)})
			return
		}

		out := make([]gin.H, 0, len(msgs))
		for _, m := range msgs {
			out = append(out, gin.H{
				"id":        m.ID,
				"group_id":  m.GroupID,
				"sender_id": m.SenderID,
				"text":      m.Text,
				"sent_at":   m.SentAt,
			})
		}

		c.JSON(http.StatusOK, gin.H{"messages": out, "count": len(out)})
	}
}
