package adapter

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	identity "github.com/AnastasiaYuhimenko/simple-messanger/internal/pkg/identity/domain"
	"github.com/AnastasiaYuhimenko/simple-messanger/pkg/apperr"
)

var (
	ErrUsernameTaken = apperr.AlreadyExists("a user with this username is already registered")
	ErrEmailTaken    = apperr.AlreadyExists("a user with this email is already registered")
)

type PgUserRepository struct {
	pool *pgxpool.Pool
}

func NewPgUserRepository(pool *pgxpool.Pool) *PgUserRepository {
	return &PgUserRepository{pool: pool}
}

// Create inserts the user and returns the generated id. Unique-constraint
// violations are translated to the canonical conflict errors; the database is
// the authoritative guard, pre-checks in the usecase are only a fast path.
func (r *PgUserRepository) Create(ctx context.Context, u identity.User) (string, error) {
	var id string
	err := r.pool.QueryRow(ctx, `
		INSERT INTO users (username, email, hashed_password, img)
		VALUES ($1, $2, $3, $4)
		RETURNING id::text
	`, u.Username, u.Email, u.HashedPassword, u.Img).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			switch pgErr.ConstraintName {
			case "users_email_key":
				return "", ErrEmailTaken
			default:
				return "", ErrUsernameTaken
			}
		}
		return "", err
	}
	return id, nil
}

func (r *PgUserRepository) FindByID(ctx context.Context, id string) (*identity.User, error) {
	return r.findOne(ctx, `WHERE id = $1::uuid`, id)
}

func (r *PgUserRepository) FindByUsername(ctx context.Context, username string) (*identity.User, error) {
	return r.findOne(ctx, `WHERE username = $1`, username)
}

func (r *PgUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	return r.findOne(ctx, `WHERE email = $1`, email)
}

func (r *PgUserRepository) findOne(ctx context.Context, where string, arg any) (*identity.User, error) {
	var u identity.User
	err := r.pool.QueryRow(ctx, `
		SELECT id::text, username, email, hashed_password, img, created_at
		FROM users `+where,
		arg,
	).Scan(&u.ID, &u.Username, &u.Email, &u.HashedPassword, &u.Img, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
