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
	userAdapter "github.com/AnastasiaYuhimenko/simple-messanger/internal/pkg/identity/persistence/repository/adapter"
	"github.com/AnastasiaYuhimenko/simple-messanger/pkg/apperr"
)

// RemoveMemberController handles kicking a member out of a group
// One controller per endpoint

type RemoveMemberController struct {
	UC *usecase.RemoveMemberUseCase
}

func NewRemoveMemberController(pool *pgxpool.Pool) *RemoveMemberController {
	groups := adapter.NewPgGroupRepository(pool)
	users := userAdapter.NewPgUserRepository(pool)
	return &RemoveMemberController{UC: usecase.NewRemoveMemberUseCase(groups, users)}
}

func (h *RemoveMemberController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		groupID := c.Param("groupId")
		username := c.Param("username")
		if groupID == "" || username == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "groupId and username are required"})
			return
		}

		in := usecase.RemoveMemberInput{
			GroupID:  groupID,
			CallerID: auth.GetUserID(c),
			Username: username,
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		if err := h.UC.Execute(ctx, in); err != nil {
			c.JSON(apperr.HTTPStatus(err), gin.H{"error": apperr.Message(err)})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "member removed"})
	}
}
