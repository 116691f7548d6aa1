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

// LeaveGroupController handles a member leaving a group on their own
// One controller per endpoint

type LeaveGroupController struct {
	UC *usecase.LeaveGroupUseCase
}

func NewLeaveGroupController(pool *pgxpool.Pool) *LeaveGroupController {
	repo := adapter.NewPgGroupRepository(pool)
	return &LeaveGroupController{UC: usecase.NewLeaveGroupUseCase(repo)}
}

func (h *LeaveGroupController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		groupID := c.Param("groupId")
		if groupID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "groupId is required"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		if err := h.UC.Execute(ctx, groupID, auth.GetUserID(c)); err != nil {
			c.JSON(apperr.HTTPStatus(err), gin.H{"error": apperr.Message(err)})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "you left the group"})
	}
}
