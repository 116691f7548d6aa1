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

// GetGroupOwnerController returns who owns a group
// One controller per endpoint

type GetGroupOwnerController struct {
	UC *usecase.GetGroupOwnerUseCase
}

func NewGetGroupOwnerController(pool *pgxpool.Pool) *GetGroupOwnerController {
	repo := adapter.NewPgGroupRepository(pool)
	return &GetGroupOwnerController{UC: usecase.NewGetGroupOwnerUseCase(repo)}
}

func (h *GetGroupOwnerController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		groupID := c.Param("groupId")
		if groupID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "groupId is required"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		owner, err := h.UC.Execute(ctx, groupID, auth.GetUserID(c))
		if err != nil {
			c.JSON(apperr.HTTPStatus(err), gin.H{"error": apperr.Message(err)})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"user_id":  owner.UserID,
			"username": owner.Username,
		})
	}
}
