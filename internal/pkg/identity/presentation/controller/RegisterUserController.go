package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AnastasiaYuhimenko/simple-messanger/internal/pkg/identity/application/usecase"
	"github.com/AnastasiaYuhimenko/simple-messanger/internal/pkg/identity/persistence/repository/adapter"
	"github.com/AnastasiaYuhimenko/simple-messanger/pkg/apperr"
)

// RegisterUserController handles new account creation
// One controller per endpoint

type RegisterUserController struct {
	UC *usecase.RegisterUserUseCase
}

func NewRegisterUserController(pool *pgxpool.Pool) *RegisterUserController {
	repo := adapter.NewPgUserRepository(pool)
	uc := usecase.NewRegisterUserUseCase(repo)
	return &RegisterUserController{UC: uc}
}

type registerRequest struct {
	Username string  `json:"username" binding:"required"`
	Email    string  `json:"email" binding:"required"`
	Password string  `json:"password" binding:"required"`
	Img      *string `json:"img"`
}

func (h *RegisterUserController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req registerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		in := usecase.RegisterUserInput{
			Username: req.Username,
			Email:    req.Email,
			Password: req.Password,
			Img:      req.Img,
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		user, err := h.UC.Execute(ctx, in)
		if err != nil {
			c.JSON(apperr.HTTPStatus(err), gin.H{"error": apperr.Message(err)})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
			"message":  "you are registered",
		})
	}
}
