package usecase

import (
	"context"

	group "github.com/AnastasiaYuhimenko/simple-messanger/internal/pkg/group/application/domain"
	repository "github.com/AnastasiaYuhimenko/simple-messanger/internal/pkg/group/persistence/repository/port"
	userRepository "github.com/AnastasiaYuhimenko/simple-messanger/internal/pkg/identity/persistence/repository/port"
	"github.com/AnastasiaYuhimenko/simple-messanger/pkg/apperr"
)

// CreateGroupInput names the group and its initial members by username.
type CreateGroupInput struct {
	Title           string
	CreatorID       string
	MemberUsernames []string
}

// CreateGroupUseCase creates a group with the creator as owner. Every named
// member must resolve to an existing user or the whole creation is rejected.
// One class per use case (own file)
type CreateGroupUseCase struct {
	Groups repository.GroupRepository
	Users  userRepository.UserRepository
}

func NewCreateGroupUseCase(groups repository.GroupRepository, users userRepository.UserRepository) *CreateGroupUseCase {
	return &CreateGroupUseCase{Groups: groups, Users: users}
}

func (uc *CreateGroupUseCase) Execute(ctx context.Context, in CreateGroupInput) (*group.GroupChat, error) {
	title, err := group.ValidateTitle(in.Title)
	if err != nil {
		return nil, err
	}

	memberIDs := make([]string, 0, len(in.MemberUsernames))
	for _, username := range in.MemberUsernames {
		u, err := uc.Users.FindByUsername(ctx, username)
		if err != nil {
			return nil, apperr.Wrap(apperr.CodeInternal, "group persistence error", err)
		}
		if u == nil {
			return nil, apperr.NotFound("no user with username " + username)
		}
		memberIDs = append(memberIDs, u.ID)
	}

	id, err := uc.Groups.CreateGroup(ctx, title, in.CreatorID, memberIDs)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeInternal, "group persistence error", err)
	}

	created, err := uc.Groups.FindGroup(ctx, id)
	if err != nil || created == nil {
		return &group.GroupChat{ID: id, Title: title, OwnerID: in.CreatorID}, nil
	}
	return created, nil
}
