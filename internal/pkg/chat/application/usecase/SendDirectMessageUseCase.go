package usecase

import (
	"context"

	"github.com/AnastasiaYuhimenko/simple-messanger/internal/infrastructure/realtime"
	chat "github.com/AnastasiaYuhimenko/simple-messanger/internal/pkg/chat/application/domain"
	repository "github.com/AnastasiaYuhimenko/simple-messanger/internal/pkg/chat/persistence/repository/port"
	"github.com/AnastasiaYuhimenko/simple-messanger/pkg/apperr"
)

// DirectNotifier pushes a persisted direct message to live connections and
// reports how many were reached.
type DirectNotifier interface {
	DeliverDirect(n realtime.DirectNotification) int
}

// SendDirectMessageInput carries a message into an existing chat.
type SendDirectMessageInput struct {
	ChatID   string
	SenderID string
	Text     string
}

// SendDirectMessageUseCase persists a direct message and fans it out to both
// participants. Fan-out happens strictly after the insert succeeds.
// One class per use case (own file)
type SendDirectMessageUseCase struct {
	Repo     repository.ChatRepository
	Notifier DirectNotifier
}

func NewSendDirectMessageUseCase(repo repository.ChatRepository, notifier DirectNotifier) *SendDirectMessageUseCase {
	return &SendDirectMessageUseCase{Repo: repo, Notifier: notifier}
}

func (uc *SendDirectMessageUseCase) Execute(ctx context.Context, in SendDirectMessageInput) (*chat.DirectMessage, error) {
	c, err := uc.Repo.FindChatByID(ctx, in.ChatID)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeInternal, "chat persistence error", err)
	}
	if c == nil {
		return nil, ErrChatNotFound
	}
	if !c.Has(in.SenderID) {
		return nil, chat.ErrNotInChat
	}

	msg, err := chat.NewDirectMessage(in.SenderID, c.PeerOf(in.SenderID), in.Text)
	if err != nil {
		return nil, err
	}

	id, err := uc.Repo.SaveMessage(ctx, *msg)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeInternal, "chat persistence error", err)
	}
	msg.ID = id

	if uc.Notifier != nil {
		uc.Notifier.DeliverDirect(realtime.DirectNotification{
			MessageID:   msg.ID,
			SenderID:    msg.SenderID,
			RecipientID: msg.RecipientID,
			Text:        msg.Text,
			SentAt:      msg.SentAt,
		})
	}
	return msg, nil
}
