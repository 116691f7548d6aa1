package usecase

import (
	"context"

	identity "github.com/AnastasiaYuhimenko/simple-messanger/internal/pkg/identity/domain"
	repository "github.com/AnastasiaYuhimenko/simple-messanger/internal/pkg/identity/persistence/repository/port"
	"github.com/AnastasiaYuhimenko/simple-messanger/pkg/apperr"
)

// GetUserUseCase looks up a single user profile by id.
type GetUserUseCase struct {
	Repo repository.UserRepository
}

func NewGetUserUseCase(repo repository.UserRepository) *GetUserUseCase {
	return &GetUserUseCase{Repo: repo}
}

func (uc *GetUserUseCase) Execute(ctx context.Context, userID string) (*identity.User, error) {
	user, err := uc.Repo.FindByID(ctx, userID)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeInternal, "identity persistence error", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
