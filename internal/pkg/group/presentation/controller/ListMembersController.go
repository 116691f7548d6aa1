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

// ListMembersController returns the member list of a group
// One controller per endpoint

type ListMembersController struct {
	UC *usecase.ListMembersUseCase
}

func NewListMembersController(pool *pgxpool.Pool) *ListMembersController {
	repo := adapter.NewPgGroupRepository(pool)
	return &ListMembersController{UC: usecase.NewListMembersUseCase(repo)}
}

func (h *ListMembersController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		groupID := c.Param("groupId")
		if groupID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "groupId is required"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		members, err := h.UC.Execute(ctx, groupID, auth.GetUserID(c))
		if err != nil {
			c.JSON(apperr.HTTPStatus(err), gin.H{"error": apperr.Message(err)})
			return
		}

		out := make([]gin.H, 0, len(members))
		for _, m := range members {
			out = append(out, gin.H{
				"user_id":  m.UserID,
				"username": m.Username,
				"role":     m.Role,
			})
		}

		c.JSON(http.StatusOK, gin.H{"members": out, "count": len(out)})
	}
}
