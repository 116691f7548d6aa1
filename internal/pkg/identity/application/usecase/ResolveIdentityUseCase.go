package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/AnastasiaYuhimenko/simple-messanger/internal/auth"
	cachePort "github.com/AnastasiaYuhimenko/simple-messanger/internal/infrastructure/cache/port"
	repository "github.com/AnastasiaYuhimenko/simple-messanger/internal/pkg/identity/persistence/repository/port"
)

const identityCacheTTL = 5 * time.Minute

type cachedIdentity struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// ResolveIdentityUseCase turns a token subject into a live identity. A short
// cache entry in front of the user table keeps the per-request middleware
// lookup cheap.
type ResolveIdentityUseCase struct {
	Repo  repository.UserRepository
	Cache cachePort.Cache
}

func NewResolveIdentityUseCase(repo repository.UserRepository, cache cachePort.Cache) *ResolveIdentityUseCase {
	return &ResolveIdentityUseCase{Repo: repo, Cache: cache}
}

// Resolve implements auth.IdentityResolver.
func (uc *ResolveIdentityUseCase) Resolve(ctx context.Context, subjectID string) (auth.Identity, error) {
	key := "identity:" + subjectID

	if uc.Cache != nil {
		if raw, err := uc.Cache.Get(ctx, key); err == nil {
			var cached cachedIdentity
			if json.Unmarshal([]byte(raw), &cached) == nil && cached.ID != "" {
				return auth.Identity{ID: cached.ID, Username: cached.Username}, nil
			}
		} else if !errors.Is(err, cachePort.ErrMiss) {
			log.Warn().Err(err).Msg("identity cache read failed")
		}
	}

	user, err := uc.Repo.FindByID(ctx, subjectID)
	if err != nil {
		return auth.Identity{}, ErrPersistence
	}
	if user == nil {
		return auth.Identity{}, ErrIdentityNotFound
	}

	if uc.Cache != nil {
		raw, _ := json.Marshal(cachedIdentity{ID: user.ID, Username: user.Username})
		if err := uc.Cache.Set(ctx, key, string(raw), identityCacheTTL); err != nil {
			log.Warn().Err(err).Msg("identity cache write failed")
		}
	}

	return auth.Identity{ID: user.ID, Username: user.Username}, nil
}
