package usecase

import (
	"context"

	group "github.com/AnastasiaYuhimenko/simple-messanger/internal/pkg/group/application/domain"
	repository "github.com/AnastasiaYuhimenko/simple-messanger/internal/pkg/group/persistence/repository/port"
	"github.com/AnastasiaYuhimenko/simple-messanger/pkg/apperr"
)

// LeaveGroupUseCase removes the caller's own membership. The owner cannot
// leave their group, there is no ownership transfer.
// One class per use case (own file)
type LeaveGroupUseCase struct {
	Guard  *Guard
	Groups repository.GroupRepository
}

func NewLeaveGroupUseCase(groups repository.GroupRepository) *LeaveGroupUseCase {
	return &LeaveGroupUseCase{Guard: NewGuard(groups), Groups: groups}
}

func (uc *LeaveGroupUseCase) Execute(ctx context.Context, groupID, callerID string) error {
	m, err := uc.Guard.RequireMember(ctx, groupID, callerID)
	if err != nil {
		return err
	}
	if m.Role == group.RoleOwner {
		return ErrOwnerImmutable
	}

	if err := uc.Groups.RemoveMember(ctx, groupID, callerID); err != nil {
		if apperr.CodeOf(err) == apperr.CodeNotFound {
			return err
		}
		return apperr.Wrap(apperr.CodeInternal, "group persistence error", err)
	}
	return nil
}
