package usecase

import (
	"context"

	group "github.com/AnastasiaYuhimenko/simple-messanger/internal/pkg/group/application/domain"
	repository "github.com/AnastasiaYuhimenko/simple-messanger/internal/pkg/group/persistence/repository/port"
	"github.com/AnastasiaYuhimenko/simple-messanger/pkg/apperr"
)

// GetGroupOwnerUseCase returns the owner's membership to a current member.
// One class per use case (own file)
type GetGroupOwnerUseCase struct {
	Guard *Guard
	Repo  repository.GroupRepository
}

func NewGetGroupOwnerUseCase(repo repository.GroupRepository) *GetGroupOwnerUseCase {
	return &GetGroupOwnerUseCase{Guard: NewGuard(repo), Repo: repo}
}

func (uc *GetGroupOwnerUseCase) Execute(ctx context.Context, groupID, callerID string) (*group.Membership, error) {
	if _, err := uc.Guard.RequireMember(ctx, groupID, callerID); err != nil {
		return nil, err
	}

	g, err := uc.Repo.FindGroup(ctx, groupID)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeInternal, "group persistence error", err)
	}
	if g == nil {
		return nil, ErrGroupNotFound
	}

	owner, err := uc.Repo.MembershipOf(ctx, groupID, g.OwnerID)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeInternal, "group persistence error", err)
	}
	if owner == nil {
		return nil, ErrGroupNotFound
	}
	return owner, nil
}
