package domain

import (
	"strings"
	"time"

	"github.com/AnastasiaYuhimenko/simple-messanger/pkg/apperr"
)

var (
	ErrSelfChat     = apperr.InvalidArg("cannot open a chat with yourself")
	ErrEmptyMessage = apperr.InvalidArg("message text must not be empty")
	ErrNotInChat    = apperr.Forbidden("you are not a participant of this chat")
)

// DirectChat is a 1:1 conversation. The participant pair is stored in
// canonical order so the same two users can never own two chats.
type DirectChat struct {
	ID        string
	UserA     string
	UserB     string
	CreatedAt time.Time
}

// NormalizePair orders two participant ids canonically. The pair identity of
// a chat does not depend on who opened it.
func NormalizePair(first, second string) (userA, userB string, err error) {
	if first == second {
		return "", "", ErrSelfChat
	}
	if strings.Compare(first, second) < 0 {
		return first, second, nil
	}
	return second, first, nil
}

// Has reports whether userID is one of the two participants.
func (c *DirectChat) Has(userID string) bool {
	return c.UserA == userID || c.UserB == userID
}

// PeerOf returns the other participant's id, or "" when userID is not in the
// chat.
func (c *DirectChat) PeerOf(userID string) string {
	switch userID {
	case c.UserA:
		return c.UserB
	case c.UserB:
		return c.UserA
	default:
		return ""
	}
}

// DirectMessage is an immutable message between the two chat participants.
type DirectMessage struct {
	ID          string
	SenderID    string
	RecipientID string
	Text        string
	SentAt      time.Time
}

// NewDirectMessage builds a message stamped with the server clock in UTC.
func NewDirectMessage(senderID, recipientID, text string) (*DirectMessage, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyMessage
	}
	return &DirectMessage{
		SenderID:    senderID,
		RecipientID: recipientID,
		Text:        text,
		SentAt:      time.Now().UTC(),
	}, nil
}
