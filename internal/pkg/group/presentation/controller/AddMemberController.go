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

// AddMemberController handles inviting a user into a group
// One controller per endpoint

type AddMemberController struct {
	UC *usecase.AddMemberUseCase
}

func NewAddMemberController(pool *pgxpool.Pool) *AddMemberController {
	groups := adapter.NewPgGroupRepository(pool)
	users := userAdapter.NewPgUserRepository(pool)
	return &AddMemberController{UC: usecase.NewAddMemberUseCase(groups, users)}
}

type addMemberRequest struct {
	Username string `json:"username" binding:"required"`
}

func (h *AddMemberController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		groupID := c.Param("groupId")
		if groupID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "groupId is required"})
			return
		}

		var req addMemberRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		in := usecase.AddMemberInput{
			GroupID:  groupID,
			CallerID: auth.GetUserID(c),
			Username: req.Username,
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		if err := h.UC.Execute(ctx, in); err != nil {
			c.JSON(apperr.HTTPStatus(err), gin.H{"error": apperr.Message(err)})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "member added"})
	}
}
