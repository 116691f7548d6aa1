package usecase

import (
	"context"

	group "github.com/AnastasiaYuhimenko/simple-messanger/internal/pkg/group/application/domain"
	repository "github.com/AnastasiaYuhimenko/simple-messanger/internal/pkg/group/persistence/repository/port"
	"github.com/AnastasiaYuhimenko/simple-messanger/pkg/apperr"
)

// ListMembersUseCase returns the member list to a current member.
// One class per use case (own file)
type ListMembersUseCase struct {
	Guard *Guard
	Repo  repository.GroupRepository
}

func NewListMembersUseCase(repo repository.GroupRepository) *ListMembersUseCase {
	return &ListMembersUseCase{Guard: NewGuard(repo), Repo: repo}
}

func (uc *ListMembersUseCase) Execute(ctx context.Context, groupID, callerID string) ([]group.Membership, error) {
	if _, err := uc.Guard.RequireMember(ctx, groupID, callerID); err != nil {
		return nil, err
	}

	members, err := uc.Repo.ListMembers(ctx, groupID)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeInternal, "group persistence error", err)
	}
	return members, nil
}
