package usecase

import (
	"context"

	"github.com/AnastasiaYuhimenko/simple-messanger/internal/auth"
	identity "github.com/AnastasiaYuhimenko/simple-messanger/internal/pkg/identity/domain"
	repository "github.com/AnastasiaYuhimenko/simple-messanger/internal/pkg/identity/persistence/repository/port"
	"github.com/AnastasiaYuhimenko/simple-messanger/pkg/apperr"
)

// LoginInput carries the submitted credentials.
type LoginInput struct {
	Username string
	Password string
}

// LoginResult returns the token pair alongside the authenticated user.
type LoginResult struct {
	AccessToken  string
	RefreshToken string
	User         *identity.User
}

// LoginUseCase verifies a password credential and issues the token pair.
// One class per use case (own file).
type LoginUseCase struct {
	Repo   repository.UserRepository
	Tokens *auth.TokenService
}

func NewLoginUseCase(repo repository.UserRepository, tokens *auth.TokenService) *LoginUseCase {
	return &LoginUseCase{Repo: repo, Tokens: tokens}
}

// Execute authenticates the user. Unknown usernames and wrong passwords are
// deliberately indistinguishable to the caller.
func (uc *LoginUseCase) Execute(ctx context.Context, in LoginInput) (*LoginResult, error) {
	user, err := uc.Repo.FindByUsername(ctx, in.Username)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeInternal, "identity persistence error", err)
	}
	if user == nil || !auth.VerifyPassword(user.HashedPassword, in.Password) {
		return nil, ErrInvalidCredentials
	}

	access, err := uc.Tokens.IssueAccess(user.ID)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeInternal, "issue access token", err)
	}
	refresh, err := uc.Tokens.IssueRefresh(user.ID)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeInternal, "issue refresh token", err)
	}

	return &LoginResult{AccessToken: access, RefreshToken: refresh, User: user}, nil
}
