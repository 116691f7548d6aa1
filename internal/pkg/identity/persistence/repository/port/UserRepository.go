package repository

import (
	"context"

	identity "github.com/AnastasiaYuhimenko/simple-messanger/internal/pkg/identity/domain"
)

// UserRepository defines persistence operations for identities.
// Lookups by username/email return (nil, nil) on absence — absence is a
// normal outcome for those flows, not an error.
type UserRepository interface {
	Create(ctx context.Context, u identity.User) (string, error)
	FindByID(ctx context.Context, id string) (*identity.User, error)
	FindByUsername(ctx context.Context, username string) (*identity.User, error)
	FindByEmail(ctx context.Context, email string) (*identity.User, error)
}
