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

// CreateGroupController handles group creation
// One controller per endpoint

type CreateGroupController struct {
	UC *usecase.CreateGroupUseCase
}

func NewCreateGroupController(pool *pgxpool.Pool) *CreateGroupController {
	groups := adapter.NewPgGroupRepository(pool)
	users := userAdapter.NewPgUserRepository(pool)
	return &CreateGroupController{UC: usecase.NewCreateGroupUseCase(groups, users)}
}

type createGroupRequest struct {
	Title   string   `json:"title" binding:"required"`
	Members []string `json:"members"`
}

func (h *CreateGroupController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createGroupRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		in := usecase.CreateGroupInput{
			Title:           req.Title,
			CreatorID:       auth.GetUserID(c),
			MemberUsernames: req.Members,
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		g, err := h.UC.Execute(ctx, in)
		if err != nil {
			c.JSON(apperr.HTTPStatus(err), gin.H{"error": apperr.Message(err)})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"id":         g.ID,
			"title":      g.Title,
			"owner_id":   g.OwnerID,
			"created_at": g.CreatedAt,
		})
	}
}
