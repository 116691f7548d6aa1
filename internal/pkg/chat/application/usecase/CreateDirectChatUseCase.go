package usecase

import (
	"context"

	chat "github.com/AnastasiaYuhimenko/simple-messanger/internal/pkg/chat/application/domain"
	chatAdapter "github.com/AnastasiaYuhimenko/simple-messanger/internal/pkg/chat/persistence/repository/adapter"
	repository "github.com/AnastasiaYuhimenko/simple-messanger/internal/pkg/chat/persistence/repository/port"
	userRepository "github.com/AnastasiaYuhimenko/simple-messanger/internal/pkg/identity/persistence/repository/port"
	"github.com/AnastasiaYuhimenko/simple-messanger/pkg/apperr"
)

// CreateDirectChatInput identifies the creator and the peer to chat with.
// The peer is addressed by username, the way users know each other.
type CreateDirectChatInput struct {
	CreatorID    string
	PeerUsername string
}

// CreateDirectChatUseCase opens a 1:1 chat between the creator and a peer.
// One class per use case (own file)
type CreateDirectChatUseCase struct {
	Chats repository.ChatRepository
	Users userRepository.UserRepository
}

func NewCreateDirectChatUseCase(chats repository.ChatRepository, users userRepository.UserRepository) *CreateDirectChatUseCase {
	return &CreateDirectChatUseCase{Chats: chats, Users: users}
}

// Execute resolves the peer, canonicalizes the pair and inserts the chat.
// Duplicate creation conflicts regardless of which side tries again.
func (uc *CreateDirectChatUseCase) Execute(ctx context.Context, in CreateDirectChatInput) (*chat.DirectChat, error) {
	peer, err := uc.Users.FindByUsername(ctx, in.PeerUsername)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeInternal, "chat persistence error", err)
	}
	if peer == nil {
		return nil, ErrPeerNotFound
	}

	userA, userB, err := chat.NormalizePair(in.CreatorID, peer.ID)
	if err != nil {
		return nil, err
	}

	if existing, err := uc.Chats.FindChatByPair(ctx, userA, userB); err != nil {
		return nil, apperr.Wrap(apperr.CodeInternal, "chat persistence error", err)
	} else if existing != nil {
		return nil, chatAdapter.ErrChatExists
	}

	id, err := uc.Chats.CreateChat(ctx, userA, userB)
	if err != nil {
		if apperr.CodeOf(err) == apperr.CodeAlreadyExists {
			return nil, err
		}
		return nil, apperr.Wrap(apperr.CodeInternal, "chat persistence error", err)
	}

	created, err := uc.Chats.FindChatByID(ctx, id)
	if err != nil || created == nil {
		// The insert succeeded, fall back to the data we already hold.
		return &chat.DirectChat{ID: id, UserA: userA, UserB: userB}, nil
	}
	return created, nil
}
