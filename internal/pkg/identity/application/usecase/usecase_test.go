package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnastasiaYuhimenko/simple-messanger/internal/auth"
	cachePort "github.com/AnastasiaYuhimenko/simple-messanger/internal/infrastructure/cache/port"
	identity "github.com/AnastasiaYuhimenko/simple-messanger/internal/pkg/identity/domain"
	repoAdapter "github.com/AnastasiaYuhimenko/simple-messanger/internal/pkg/identity/persistence/repository/adapter"
	"github.com/AnastasiaYuhimenko/simple-messanger/pkg/apperr"
)

type fakeUserRepo struct {
	users  map[string]*identity.User // keyed by id
	nextID int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*identity.User{}, nextID: 1}
}

func (r *fakeUserRepo) Create(_ context.Context, u identity.User) (string, error) {
	for _, existing := range r.users {
		if existing.Username == u.Username {
			return "", repoAdapter.ErrUsernameTaken
		}
		if existing.Email == u.Email {
			return "", repoAdapter.ErrEmailTaken
		}
	}
	id := "00000000-0000-0000-0000-00000000000" + string(rune('0'+r.nextID))
	r.nextID++
	u.ID = id
	u.CreatedAt = time.Now().UTC()
	r.users[id] = &u
	return id, nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id string) (*identity.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) FindByUsername(_ context.Context, username string) (*identity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*identity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

type fakeCache struct {
	data map[string]string
	gets int
}

func newFakeCache() *fakeCache { return &fakeCache{data: map[string]string{}} }

func (c *fakeCache) Get(_ context.Context, key string) (string, error) {
	c.gets++
	if v, ok := c.data[key]; ok {
		return v, nil
	}
	return "", cachePort.ErrMiss
}

func (c *fakeCache) Set(_ context.Context, key, value string, _ time.Duration) error {
	c.data[key] = value
	return nil
}

func (c *fakeCache) Del(_ context.Context, keys ...string) (int64, error) {
	var n int64
	for _, k := range keys {
		if _, ok := c.data[k]; ok {
			delete(c.data, k)
			n++
		}
	}
	return n, nil
}

func (c *fakeCache) Ping(context.Context) error { return nil }
func (c *fakeCache) Close() error               { return nil }

func mustRegister(t *testing.T, repo *fakeUserRepo, username, email string) *identity.User {
	t.Helper()
	uc := NewRegisterUserUseCase(repo)
	user, err := uc.Execute(context.Background(), RegisterUserInput{
		Username: username,
		Email:    email,
		Password: "Sup3r$ecret",
	})
	require.NoError(t, err)
	return user
}

func TestRegisterUser(t *testing.T) {
	repo := newFakeUserRepo()
	user := mustRegister(t, repo, "alice", "alice@example.com")

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.NotEqual(t, "Sup3r$ecret", user.HashedPassword)
}

func TestRegisterUserRejectsWeakPassword(t *testing.T) {
	uc := NewRegisterUserUseCase(newFakeUserRepo())
	_, err := uc.Execute(context.Background(), RegisterUserInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "weakpass",
	})
	require.Error(t, err)
	assert.Equal(t, apperr.CodeInvalidArgument, apperr.CodeOf(err))
}

func TestRegisterUserDuplicateUsername(t *testing.T) {
	repo := newFakeUserRepo()
	mustRegister(t, repo, "alice", "alice@example.com")

	uc := NewRegisterUserUseCase(repo)
	_, err := uc.Execute(context.Background(), RegisterUserInput{
		Username: "alice",
		Email:    "other@example.com",
		Password: "Sup3r$ecret",
	})
	assert.ErrorIs(t, err, repoAdapter.ErrUsernameTaken)
}

func TestRegisterUserDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	mustRegister(t, repo, "alice", "alice@example.com")

	uc := NewRegisterUserUseCase(repo)
	_, err := uc.Execute(context.Background(), RegisterUserInput{
		Username: "bob",
		Email:    "alice@example.com",
		Password: "Sup3r$ecret",
	})
	assert.ErrorIs(t, err, repoAdapter.ErrEmailTaken)
}

func newTokenService(t *testing.T) *auth.TokenService {
	t.Helper()
	ts, err := auth.NewTokenService("test-secret", time.Minute, time.Hour)
	require.NoError(t, err)
	return ts
}

func TestLoginSuccess(t *testing.T) {
	repo := newFakeUserRepo()
	user := mustRegister(t, repo, "alice", "alice@example.com")

	uc := NewLoginUseCase(repo, newTokenService(t))
	res, err := uc.Execute(context.Background(), LoginInput{Username: "alice", Password: "Sup3r$ecret"})
	require.NoError(t, err)
	assert.NotEmpty(t, res.AccessToken)
	assert.NotEmpty(t, res.RefreshToken)
	assert.Equal(t, user.ID, res.User.ID)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	mustRegister(t, repo, "alice", "alice@example.com")

	uc := NewLoginUseCase(repo, newTokenService(t))
	_, err := uc.Execute(context.Background(), LoginInput{Username: "alice", Password: "Wr0ng$ecret"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	uc := NewLoginUseCase(newFakeUserRepo(), newTokenService(t))
	_, err := uc.Execute(context.Background(), LoginInput{Username: "nobody", Password: "Sup3r$ecret"})
	// Unknown usernames and wrong passwords must be indistinguishable.
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestResolveIdentityCachesLookups(t *testing.T) {
	repo := newFakeUserRepo()
	user := mustRegister(t, repo, "alice", "alice@example.com")
	cache := newFakeCache()

	uc := NewResolveIdentityUseCase(repo, cache)

	ident, err := uc.Resolve(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", ident.Username)

	// Second resolve must be served from the cache.
	delete(repo.users, user.ID)
	ident, err = uc.Resolve(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, ident.ID)
	assert.Equal(t, 2, cache.gets)
}

func TestResolveIdentityUnknownSubject(t *testing.T) {
	uc := NewResolveIdentityUseCase(newFakeUserRepo(), newFakeCache())
	_, err := uc.Resolve(context.Background(), "11111111-1111-1111-1111-111111111111")
	assert.ErrorIs(t, err, ErrIdentityNotFound)
}

func TestGetUserNotFound(t *testing.T) {
	uc := NewGetUserUseCase(newFakeUserRepo())
	_, err := uc.Execute(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
