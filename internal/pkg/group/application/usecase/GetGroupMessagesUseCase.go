package usecase

import (
	"context"

	group "github.com/AnastasiaYuhimenko/simple-messanger/internal/pkg/group/application/domain"
	repository "github.com/AnastasiaYuhimenko/simple-messanger/internal/pkg/group/persistence/repository/port"
	"github.com/AnastasiaYuhimenko/simple-messanger/pkg/apperr"
)

// GetGroupMessagesUseCase returns the group history to a current member.
// One class per use case (own file)
type GetGroupMessagesUseCase struct {
	Guard *Guard
	Repo  repository.GroupRepository
}

func NewGetGroupMessagesUseCase(repo repository.GroupRepository) *GetGroupMessagesUseCase {
	return &GetGroupMessagesUseCase{Guard: NewGuard(repo), Repo: repo}
}

func (uc *GetGroupMessagesUseCase) Execute(ctx context.Context, groupID, callerID string) ([]group.GroupMessage, error) {
	if _, err := uc.Guard.RequireMember(ctx, groupID, callerID); err != nil {
		return nil, err
	}

	msgs, err := uc.Repo.MessagesByGroup(ctx, groupID)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeInternal, "group persistence error", err)
	}
	return msgs, nil
}
