package usecase

import (
	"context"

	"github.com/AnastasiaYuhimenko/simple-messanger/internal/auth"
	identity "github.com/AnastasiaYuhimenko/simple-messanger/internal/pkg/identity/domain"
	repoAdapter "github.com/AnastasiaYuhimenko/simple-messanger/internal/pkg/identity/persistence/repository/adapter"
	repository "github.com/AnastasiaYuhimenko/simple-messanger/internal/pkg/identity/persistence/repository/port"
	"github.com/AnastasiaYuhimenko/simple-messanger/pkg/apperr"
)

// RegisterUserInput carries the data needed to create a new identity.
type RegisterUserInput struct {
	Username string
	Email    string
	Password string
	Img      *string
}

// RegisterUserUseCase creates a new identity with a hashed credential.
// One class per use case (own file).
type RegisterUserUseCase struct {
	Repo repository.UserRepository
}

func NewRegisterUserUseCase(repo repository.UserRepository) *RegisterUserUseCase {
	return &RegisterUserUseCase{Repo: repo}
}

// Execute validates the input, pre-checks username/email availability and
// inserts the user. The unique constraints remain the authoritative guard
// against the concurrent-registration race, so the conflict errors can also
// surface from Create itself.
func (uc *RegisterUserUseCase) Execute(ctx context.Context, in RegisterUserInput) (*identity.User, error) {
	username, err := identity.ValidateUsername(in.Username)
	if err != nil {
		return nil, err
	}
	email, err := identity.ValidateEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if err := identity.ValidatePassword(in.Password); err != nil {
		return nil, err
	}

	if existing, err := uc.Repo.FindByUsername(ctx, username); err != nil {
		return nil, apperr.Wrap(apperr.CodeInternal, "identity persistence error", err)
	} else if existing != nil {
		return nil, repoAdapter.ErrUsernameTaken
	}
	if existing, err := uc.Repo.FindByEmail(ctx, email); err != nil {
		return nil, apperr.Wrap(apperr.CodeInternal, "identity persistence error", err)
	} else if existing != nil {
		return nil, repoAdapter.ErrEmailTaken
	}

	hashed, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeInternal, "hash password", err)
	}

	u := identity.User{Username: username, Email: email, HashedPassword: hashed, Img: in.Img}
	id, err := uc.Repo.Create(ctx, u)
	if err != nil {
		if apperr.CodeOf(err) == apperr.CodeAlreadyExists {
			return nil, err
		}
		return nil, apperr.Wrap(apperr.CodeInternal, "identity persistence error", err)
	}
	u.ID = id
	return &u, nil
}
