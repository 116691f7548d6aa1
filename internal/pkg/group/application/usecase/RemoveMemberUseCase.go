package usecase

import (
	"context"

	group "github.com/AnastasiaYuhimenko/simple-messanger/internal/pkg/group/application/domain"
	groupAdapter "github.com/AnastasiaYuhimenko/simple-messanger/internal/pkg/group/persistence/repository/adapter"
	repository "github.com/AnastasiaYuhimenko/simple-messanger/internal/pkg/group/persistence/repository/port"
	userRepository "github.com/AnastasiaYuhimenko/simple-messanger/internal/pkg/identity/persistence/repository/port"
	"github.com/AnastasiaYuhimenko/simple-messanger/pkg/apperr"
)

// RemoveMemberInput removes a user, addressed by username, from a group.
type RemoveMemberInput struct {
	GroupID  string
	CallerID string
	Username string
}

// RemoveMemberUseCase lets owners and admins remove members. The owner
// membership can never be removed, by anyone.
// One class per use case (own file)
type RemoveMemberUseCase struct {
	Guard  *Guard
	Groups repository.GroupRepository
	Users  userRepository.UserRepository
}

func NewRemoveMemberUseCase(groups repository.GroupRepository, users userRepository.UserRepository) *RemoveMemberUseCase {
	return &RemoveMemberUseCase{Guard: NewGuard(groups), Groups: groups, Users: users}
}

func (uc *RemoveMemberUseCase) Execute(ctx context.Context, in RemoveMemberInput) error {
	caller, err := uc.Guard.RequireMember(ctx, in.GroupID, in.CallerID)
	if err != nil {
		return err
	}
	if err := uc.Guard.RequireRole(caller, group.RoleOwner, group.RoleAdmin); err != nil {
		return err
	}

	u, err := uc.Users.FindByUsername(ctx, in.Username)
	if err != nil {
		return apperr.Wrap(apperr.CodeInternal, "group persistence error", err)
	}
	if u == nil {
		return ErrUserNotFound
	}

	target, err := uc.Groups.MembershipOf(ctx, in.GroupID, u.ID)
	if err != nil {
		return apperr.Wrap(apperr.CodeInternal, "group persistence error", err)
	}
	if target == nil {
		return groupAdapter.ErrNotAMember
	}
	if target.Role == group.RoleOwner {
		return ErrOwnerImmutable
	}

	if err := uc.Groups.RemoveMember(ctx, in.GroupID, u.ID); err != nil {
		if apperr.CodeOf(err) == apperr.CodeNotFound {
			return err
		}
		return apperr.Wrap(apperr.CodeInternal, "group persistence error", err)
	}
	return nil
}
