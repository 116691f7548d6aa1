package domain

import (
	"strings"
	"time"

	"github.com/AnastasiaYuhimenko/simple-messanger/pkg/apperr"
)

// Role is a member's authority level in a group.
type Role string

const (
	RoleOwner  Role = "owner"
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

var (
	ErrEmptyTitle   = apperr.InvalidArg("group title must not be empty")
	ErrEmptyMessage = apperr.InvalidArg("message text must not be empty")
)

// GroupChat is a named conversation owned by its creator.
type GroupChat struct {
	ID        string
	Title     string
	OwnerID   string
	CreatedAt time.Time
}

// Membership ties a user to a group with a role.
type Membership struct {
	GroupID  string
	UserID   string
	Username string
	Role     Role
}

// CanManageMembers reports whether the role may add or remove members.
func (m *Membership) CanManageMembers() bool {
	return m.Role == RoleOwner || m.Role == RoleAdmin
}

// GroupMessage is an immutable message addressed to the membership snapshot
// taken at send time. Later membership changes do not rewrite who a past
// message was for.
type GroupMessage struct {
	ID         string
	GroupID    string
	SenderID   string
	Recipients []string
	Text       string
	SentAt     time.Time
}

// ValidateTitle trims and checks the group name.
func ValidateTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", ErrEmptyTitle
	}
	return title, nil
}

// NewGroupMessage builds a message stamped with the server clock in UTC.
func NewGroupMessage(groupID, senderID, text string, recipients []string) (*GroupMessage, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyMessage
	}
	return &GroupMessage{
		GroupID:    groupID,
		SenderID:   senderID,
		Recipients: recipients,
		Text:       text,
		SentAt:     time.Now().UTC(),
	}, nil
}
