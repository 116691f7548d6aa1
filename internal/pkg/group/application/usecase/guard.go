package usecase

import (
	"context"

	group "github.com/AnastasiaYuhimenko/simple-messanger/internal/pkg/group/application/domain"
	repository "github.com/AnastasiaYuhimenko/simple-messanger/internal/pkg/group/persistence/repository/port"
	"github.com/AnastasiaYuhimenko/simple-messanger/pkg/apperr"
)

// Guard centralizes the membership and role checks every group operation
// performs before touching data.
type Guard struct {
	Repo repository.GroupRepository
}

func NewGuard(repo repository.GroupRepository) *Guard {
	return &Guard{Repo: repo}
}

// RequireMember returns the caller's membership or ErrNotAChatMember.
// A missing group and a missing membership are deliberately the same answer,
// so outsiders cannot probe which group ids exist.
func (g *Guard) RequireMember(ctx context.Context, groupID, userID string) (*group.Membership, error) {
	m, err := g.Repo.MembershipOf(ctx, groupID, userID)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeInternal, "group persistence error", err)
	}
	if m == nil {
		return nil, ErrNotAChatMember
	}
	return m, nil
}

// RequireRole checks the membership against an allow-list of roles.
func (g *Guard) RequireRole(m *group.Membership, roles ...group.Role) error {
	for _, r := range roles {
		if m.Role == r {
			return nil
		}
	}
	return ErrForbidden
}
