package port

import (
	"context"

	chat "github.com/AnastasiaYuhimenko/simple-messanger/internal/pkg/chat/application/domain"
)

// ChatRepository is the persistence port for direct chats and their messages.
// Find methods return (nil, nil) when the row does not exist.
type ChatRepository interface {
	// CreateChat inserts a chat for the canonical pair and returns its id.
	// A second insert for the same pair fails with the chat-exists conflict.
	CreateChat(ctx context.Context, userA, userB string) (string, error)

	// FindChatByPair looks a chat up by its canonical pair.
	FindChatByPair(ctx context.Context, userA, userB string) (*chat.DirectChat, error)

	// FindChatByID looks a chat up by id.
	FindChatByID(ctx context.Context, chatID string) (*chat.DirectChat, error)

	// ListChatsByUser returns every chat the user participates in.
	ListChatsByUser(ctx context.Context, userID string) ([]chat.DirectChat, error)

	// SaveMessage persists the message and returns the generated id.
	SaveMessage(ctx context.Context, m chat.DirectMessage) (string, error)

	// MessagesBetween returns the conversation history of the two users in
	// send order.
	MessagesBetween(ctx context.Context, userA, userB string) ([]chat.DirectMessage, error)
}
