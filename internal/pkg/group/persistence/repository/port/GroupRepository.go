package port

import (
	"context"

	group "github.com/AnastasiaYuhimenko/simple-messanger/internal/pkg/group/application/domain"
)

// GroupRepository is the persistence port for group chats, memberships and
// messages. Find methods return (nil, nil) when the row does not exist.
type GroupRepository interface {
	// CreateGroup inserts the group and its initial memberships in one
	// transaction. The owner's membership row carries the owner role.
	CreateGroup(ctx context.Context, title, ownerID string, memberIDs []string) (string, error)

	// FindGroup looks a group up by id.
	FindGroup(ctx context.Context, groupID string) (*group.GroupChat, error)

	// ListGroupsByUser returns every group the user is a member of.
	ListGroupsByUser(ctx context.Context, userID string) ([]group.GroupChat, error)

	// MembershipOf returns the user's membership in the group, nil when the
	// user is not a member.
	MembershipOf(ctx context.Context, groupID, userID string) (*group.Membership, error)

	// AddMember inserts a membership row. Inserting an existing member fails
	// with the already-a-member conflict.
	AddMember(ctx context.Context, groupID, userID string, role group.Role) error

	// RemoveMember deletes a membership row, failing with the not-a-member
	// error when no row matched.
	RemoveMember(ctx context.Context, groupID, userID string) error

	// ListMembers returns the group's memberships with usernames resolved.
	ListMembers(ctx context.Context, groupID string) ([]group.Membership, error)

	// MemberIDs returns the current member ids, the recipients snapshot for
	// a message sent now.
	MemberIDs(ctx context.Context, groupID string) ([]string, error)

	// SaveMessage persists the message with its recipients snapshot and
	// returns the generated id.
	SaveMessage(ctx context.Context, m group.GroupMessage) (string, error)

	// MessagesByGroup returns the group history in send order.
	MessagesByGroup(ctx context.Context, groupID string) ([]group.GroupMessage, error)
}
