package usecase

import (
	"context"

	chat "github.com/AnastasiaYuhimenko/simple-messanger/internal/pkg/chat/application/domain"
	repository "github.com/AnastasiaYuhimenko/simple-messanger/internal/pkg/chat/persistence/repository/port"
	"github.com/AnastasiaYuhimenko/simple-messanger/pkg/apperr"
)

// GetDirectMessagesUseCase returns the history of a chat to one of its
// participants.
// One class per use case (own file)
type GetDirectMessagesUseCase struct {
	Repo repository.ChatRepository
}

func NewGetDirectMessagesUseCase(repo repository.ChatRepository) *GetDirectMessagesUseCase {
	return &GetDirectMessagesUseCase{Repo: repo}
}

func (uc *GetDirectMessagesUseCase) Execute(ctx context.Context, chatID, requesterID string) ([]chat.DirectMessage, error) {
	c, err := uc.Repo.FindChatByID(ctx, chatID)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeInternal, "chat persistence error", err)
	}
	if c == nil {
		return nil, ErrChatNotFound
	}
	if !c.Has(requesterID) {
		return nil, chat.ErrNotInChat
	}

	msgs, err := uc.Repo.MessagesBetween(ctx, c.UserA, c.UserB)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeInternal, "chat persistence error", err)
	}
	return msgs, nil
}
