package usecase

import (
	"context"

	chat "github.com/AnastasiaYuhimenko/simple-messanger/internal/pkg/chat/application/domain"
	repository "github.com/AnastasiaYuhimenko/simple-messanger/internal/pkg/chat/persistence/repository/port"
	"github.com/AnastasiaYuhimenko/simple-messanger/pkg/apperr"
)

// ListDirectChatsUseCase lists every direct chat the user participates in.
// One class per use case (own file)
type ListDirectChatsUseCase struct {
	Repo repository.ChatRepository
}

func NewListDirectChatsUseCase(repo repository.ChatRepository) *ListDirectChatsUseCase {
	return &ListDirectChatsUseCase{Repo: repo}
}

func (uc *ListDirectChatsUseCase) Execute(ctx context.Context, userID string) ([]chat.DirectChat, error) {
	chats, err := uc.Repo.ListChatsByUser(ctx, userID)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeInternal, "chat persistence error", err)
	}
	return chats, nil
}
