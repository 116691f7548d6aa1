package usecase

import (
	"context"

	group "github.com/AnastasiaYuhimenko/simple-messanger/internal/pkg/group/application/domain"
	groupAdapter "github.com/AnastasiaYuhimenko/simple-messanger/internal/pkg/group/persistence/repository/adapter"
	repository "github.com/AnastasiaYuhimenko/simple-messanger/internal/pkg/group/persistence/repository/port"
	userRepository "github.com/AnastasiaYuhimenko/simple-messanger/internal/pkg/identity/persistence/repository/port"
	"github.com/AnastasiaYuhimenko/simple-messanger/pkg/apperr"
)

// AddMemberInput adds a user, addressed by username, to a group.
type AddMemberInput struct {
	GroupID   string
	CallerID  string
	Username  string
}

// AddMemberUseCase lets any current member invite another user. The unique
// membership constraint is the authoritative guard against the concurrent
// double-add, the pre-check is only a fast path.
// One class per use case (own file)
type AddMemberUseCase struct {
	Guard  *Guard
	Groups repository.GroupRepository
	Users  userRepository.UserRepository
}

func NewAddMemberUseCase(groups repository.GroupRepository, users userRepository.UserRepository) *AddMemberUseCase {
	return &AddMemberUseCase{Guard: NewGuard(groups), Groups: groups, Users: users}
}

func (uc *AddMemberUseCase) Execute(ctx context.Context, in AddMemberInput) error {
	if _, err := uc.Guard.RequireMember(ctx, in.GroupID, in.CallerID); err != nil {
		return err
	}

	u, err := uc.Users.FindByUsername(ctx, in.Username)
	if err != nil {
		return apperr.Wrap(apperr.CodeInternal, "group persistence error", err)
	}
	if u == nil {
		return ErrUserNotFound
	}

	if existing, err := uc.Groups.MembershipOf(ctx, in.GroupID, u.ID); err != nil {
		return apperr.Wrap(apperr.CodeInternal, "group persistence error", err)
	} else if existing != nil {
		return groupAdapter.ErrAlreadyMember
	}

	if err := uc.Groups.AddMember(ctx, in.GroupID, u.ID, group.RoleMember); err != nil {
		if apperr.CodeOf(err) == apperr.CodeAlreadyExists {
			return err
		}
		return apperr.Wrap(apperr.CodeInternal, "group persistence error", err)
	}
	return nil
}
