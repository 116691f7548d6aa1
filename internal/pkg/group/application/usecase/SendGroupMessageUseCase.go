package usecase

import (
	"context"

	"github.com/AnastasiaYuhimenko/simple-messanger/internal/infrastructure/realtime"
	group "github.com/AnastasiaYuhimenko/simple-messanger/internal/pkg/group/application/domain"
	repository "github.com/AnastasiaYuhimenko/simple-messanger/internal/pkg/group/persistence/repository/port"
	"github.com/AnastasiaYuhimenko/simple-messanger/pkg/apperr"
)

// GroupNotifier pushes a persisted group message to the live channels of its
// recipients snapshot and reports how many were reached.
type GroupNotifier interface {
	DeliverGroup(n realtime.GroupNotification, recipientIDs []string) int
}

// SendGroupMessageInput carries a message into a group.
type SendGroupMessageInput struct {
	GroupID  string
	SenderID string
	Text     string
}

// SendGroupMessageUseCase persists a group message with the membership
// snapshot taken at send time and fans it out to that snapshot. Members who
// join later never receive it, members who leave later keep it in history.
// One class per use case (own file)
type SendGroupMessageUseCase struct {
	Guard    *Guard
	Repo     repository.GroupRepository
	Notifier GroupNotifier
}

func NewSendGroupMessageUseCase(repo repository.GroupRepository, notifier GroupNotifier) *SendGroupMessageUseCase {
	return &SendGroupMessageUseCase{Guard: NewGuard(repo), Repo: repo, Notifier: notifier}
}

func (uc *SendGroupMessageUseCase) Execute(ctx context.Context, in SendGroupMessageInput) (*group.GroupMessage, error) {
	if _, err := uc.Guard.RequireMember(ctx, in.GroupID, in.SenderID); err != nil {
		return nil, err
	}

	recipients, err := uc.Repo.MemberIDs(ctx, in.GroupID)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeInternal, "group persistence error", err)
	}

	msg, err := group.NewGroupMessage(in.GroupID, in.SenderID, in.Text, recipients)
	if err != nil {
		return nil, err
	}

	id, err := uc.Repo.SaveMessage(ctx, *msg)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeInternal, "group persistence error", err)
	}
	msg.ID = id

	if uc.Notifier != nil {
		uc.Notifier.DeliverGroup(realtime.GroupNotification{
			MessageID: msg.ID,
			GroupID:   msg.GroupID,
			SenderID:  msg.SenderID,
			Text:      msg.Text,
			SentAt:    msg.SentAt,
		}, msg.Recipients)
	}
	return msg, nil
}
