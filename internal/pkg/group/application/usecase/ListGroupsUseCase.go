package usecase

import (
	"context"

	group "github.com/AnastasiaYuhimenko/simple-messanger/internal/pkg/group/application/domain"
	repository "github.com/AnastasiaYuhimenko/simple-messanger/internal/pkg/group/persistence/repository/port"
	"github.com/AnastasiaYuhimenko/simple-messanger/pkg/apperr"
)

// ListGroupsUseCase lists every group the caller is a member of.
// One class per use case (own file)
type ListGroupsUseCase struct {
	Repo repository.GroupRepository
}

func NewListGroupsUseCase(repo repository.GroupRepository) *ListGroupsUseCase {
	return &ListGroupsUseCase{Repo: repo}
}

func (uc *ListGroupsUseCase) Execute(ctx context.Context, userID string) ([]group.GroupChat, error) {
	groups, err := uc.Repo.ListGroupsByUser(ctx, userID)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeInternal, "group persistence error", err)
	}
	return groups, nil
}
