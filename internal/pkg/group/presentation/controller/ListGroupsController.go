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

// ListGroupsController lists the caller's group chats
// One controller per endpoint

type ListGroupsController struct {
	UC *usecase.ListGroupsUseCase
}

func NewListGroupsController(pool *pgxpool.Pool) *ListGroupsController {
	repo := adapter.NewPgGroupRepository(pool)
	return &ListGroupsController{UC: usecase.NewListGroupsUseCase(repo)}
}

func (h *ListGroupsController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		groups, err := h.UC.Execute(ctx, auth.GetUserID(c))
		if err != nil {
			c.JSON(apperr.HTTPStatus(err), gin.H{"error": apperr.Message(err)})
			return
		}

		out := make([]gin.H, 0, len(groups))
		for _, g := range groups {
			out = append(out, gin.H{
				"id":         g.ID,
				"title":      g.Title,
				"owner_id":   g.OwnerID,
				"created_at": g.CreatedAt,
			})
		}

		c.JSON(http.StatusOK, gin.H{"group_chats": out, "count": len(out)})
	}
}
