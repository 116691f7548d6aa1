package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnastasiaYuhimenko/simple-messanger/internal/infrastructure/realtime"
	group "github.com/AnastasiaYuhimenko/simple-messanger/internal/pkg/group/application/domain"
	groupAdapter "github.com/AnastasiaYuhimenko/simple-messanger/internal/pkg/group/persistence/repository/adapter"
	identity "github.com/AnastasiaYuhimenko/simple-messanger/internal/pkg/identity/domain"
	"github.com/AnastasiaYuhimenko/simple-messanger/pkg/apperr"
)

const (
	ownerID  = "11111111-1111-1111-1111-111111111111"
	adminID  = "22222222-2222-2222-2222-222222222222"
	memberID = "33333333-3333-3333-3333-333333333333"
	otherID  = "44444444-4444-4444-4444-444444444444"
)

type memberKey struct{ groupID, userID string }

type fakeGroupRepo struct {
	groups   map[string]*group.GroupChat
	members  map[memberKey]*group.Membership
	messages []group.GroupMessage
	names    map[string]string // user id -> username
	nextID   int
}

func newFakeGroupRepo() *fakeGroupRepo {
	return &fakeGroupRepo{
		groups:  map[string]*group.GroupChat{},
		members: map[memberKey]*group.Membership{},
		names: map[string]string{
			ownerID:  "owner",
			adminID:  "admin",
			memberID: "member",
			otherID:  "other",
		},
		nextID: 1,
	}
}

func (r *fakeGroupRepo) CreateGroup(_ context.Context, title, ownerUID string, memberIDs []string) (string, error) {
	id := fmt.Sprintf("group-%d", r.nextID)
	r.nextID++
	r.groups[id] = &group.GroupChat{ID: id, Title: title, OwnerID: ownerUID, CreatedAt: time.Now().UTC()}
	r.put(id, ownerUID, group.RoleOwner)
	for _, uid := range memberIDs {
		if uid != ownerUID {
			r.put(id, uid, group.RoleMember)
		}
	}
	return id, nil
}

func (r *fakeGroupRepo) put(groupID, userID string, role group.Role) {
	r.members[memberKey{groupID, userID}] = &group.Membership{
		GroupID:  groupID,
		UserID:   userID,
		Username: r.names[userID],
		Role:     role,
	}
}

func (r *fakeGroupRepo) FindGroup(_ context.Context, groupID string) (*group.GroupChat, error) {
	return r.groups[groupID], nil
}

func (r *fakeGroupRepo) ListGroupsByUser(_ context.Context, userID string) ([]group.GroupChat, error) {
	var out []group.GroupChat
	for _, g := range r.groups {
		if r.members[memberKey{g.ID, userID}] != nil {
			out = append(out, *g)
		}
	}
	return out, nil
}

func (r *fakeGroupRepo) MembershipOf(_ context.Context, groupID, userID string) (*group.Membership, error) {
	return r.members[memberKey{groupID, userID}], nil
}

func (r *fakeGroupRepo) AddMember(_ context.Context, groupID, userID string, role group.Role) error {
	if r.members[memberKey{groupID, userID}] != nil {
		return groupAdapter.ErrAlreadyMember
	}
	r.put(groupID, userID, role)
	return nil
}

func (r *fakeGroupRepo) RemoveMember(_ context.Context, groupID, userID string) error {
	key := memberKey{groupID, userID}
	if r.members[key] == nil {
		return groupAdapter.ErrNotAMember
	}
	delete(r.members, key)
	return nil
}

func (r *fakeGroupRepo) ListMembers(_ context.Context, groupID string) ([]group.Membership, error) {
	var out []group.Membership
	for key, m := range r.members {
		if key.groupID == groupID {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (r *fakeGroupRepo) MemberIDs(_ context.Context, groupID string) ([]string, error) {
	var out []string
	for key := range r.members {
		if key.groupID == groupID {
			out = append(out, key.userID)
		}
	}
	return out, nil
}

func (r *fakeGroupRepo) SaveMessage(_ context.Context, m group.GroupMessage) (string, error) {
	id := fmt.Sprintf("msg-%d", r.nextID)
	r.nextID++
	m.ID = id
	r.messages = append(r.messages, m)
	return id, nil
}

func (r *fakeGroupRepo) MessagesByGroup(_ context.Context, groupID string) ([]group.GroupMessage, error) {
	var out []group.GroupMessage
	for _, m := range r.messages {
		if m.GroupID == groupID {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeUserDirectory struct {
	byUsername map[string]*identity.User
}

func testUserDirectory() *fakeUserDirectory {
	return &fakeUserDirectory{byUsername: map[string]*identity.User{
		"owner":  {ID: ownerID, Username: "owner"},
		"admin":  {ID: adminID, Username: "admin"},
		"member": {ID: memberID, Username: "member"},
		"other":  {ID: otherID, Username: "other"},
	}}
}

func (d *fakeUserDirectory) Create(context.Context, identity.User) (string, error) {
	return "", errors.New("not implemented")
}

func (d *fakeUserDirectory) FindByID(_ context.Context, id string) (*identity.User, error) {
	for _, u := range d.byUsername {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (d *fakeUserDirectory) FindByUsername(_ context.Context, username string) (*identity.User, error) {
	return d.byUsername[username], nil
}

func (d *fakeUserDirectory) FindByEmail(context.Context, string) (*identity.User, error) {
	return nil, nil
}

type fakeGroupNotifier struct {
	notifications []realtime.GroupNotification
	recipients    [][]string
}

func (n *fakeGroupNotifier) DeliverGroup(gn realtime.GroupNotification, recipientIDs []string) int {
	n.notifications = append(n.notifications, gn)
	n.recipients = append(n.recipients, recipientIDs)
	return len(recipientIDs)
}

func mustCreateGroup(t *testing.T, repo *fakeGroupRepo) *group.GroupChat {
	t.Helper()
	uc := NewCreateGroupUseCase(repo, testUserDirectory())
	g, err := uc.Execute(context.Background(), CreateGroupInput{
		Title:           "book club",
		CreatorID:       ownerID,
		MemberUsernames: []string{"admin", "member"},
	})
	require.NoError(t, err)
	repo.put(g.ID, adminID, group.RoleAdmin)
	return g
}

func TestCreateGroupCreatorBecomesOwner(t *testing.T) {
	repo := newFakeGroupRepo()
	g := mustCreateGroup(t, repo)

	m, err := repo.MembershipOf(context.Background(), g.ID, ownerID)
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, group.RoleOwner, m.Role)
}

func TestCreateGroupUnknownMemberRejected(t *testing.T) {
	uc := NewCreateGroupUseCase(newFakeGroupRepo(), testUserDirectory())
	_, err := uc.Execute(context.Background(), CreateGroupInput{
		Title:           "book club",
		CreatorID:       ownerID,
		MemberUsernames: []string{"ghost"},
	})
	require.Error(t, err)
	assert.Equal(t, apperr.CodeNotFound, apperr.CodeOf(err))
}

func TestCreateGroupBlankTitle(t *testing.T) {
	uc := NewCreateGroupUseCase(newFakeGroupRepo(), testUserDirectory())
	_, err := uc.Execute(context.Background(), CreateGroupInput{Title: "  ", CreatorID: ownerID})
	assert.ErrorIs(t, err, group.ErrEmptyTitle)
}

func TestAddMemberTwiceConflicts(t *testing.T) {
	repo := newFakeGroupRepo()
	g := mustCreateGroup(t, repo)

	uc := NewAddMemberUseCase(repo, testUserDirectory())
	err := uc.Execute(context.Background(), AddMemberInput{GroupID: g.ID, CallerID: memberID, Username: "other"})
	require.NoError(t, err)

	err = uc.Execute(context.Background(), AddMemberInput{GroupID: g.ID, CallerID: memberID, Username: "other"})
	assert.ErrorIs(t, err, groupAdapter.ErrAlreadyMember)
}

func TestAddMemberByOutsiderForbidden(t *testing.T) {
	repo := newFakeGroupRepo()
	g := mustCreateGroup(t, repo)

	uc := NewAddMemberUseCase(repo, testUserDirectory())
	err := uc.Execute(context.Background(), AddMemberInput{GroupID: g.ID, CallerID: otherID, Username: "other"})
	assert.ErrorIs(t, err, ErrNotAChatMember)
}

func TestRemoveMemberRoleGating(t *testing.T) {
	repo := newFakeGroupRepo()
	g := mustCreateGroup(t, repo)

	uc := NewRemoveMemberUseCase(repo, testUserDirectory())

	// Plain members may not remove anyone.
	err := uc.Execute(context.Background(), RemoveMemberInput{GroupID: g.ID, CallerID: memberID, Username: "admin"})
	assert.ErrorIs(t, err, ErrForbidden)

	// Admins may.
	err = uc.Execute(context.Background(), RemoveMemberInput{GroupID: g.ID, CallerID: adminID, Username: "member"})
	require.NoError(t, err)

	m, err := repo.MembershipOf(context.Background(), g.ID, memberID)
	require.NoError(t, err)
	assert.Nil(t, m)
}

func TestRemoveOwnerForbidden(t *testing.T) {
	repo := newFakeGroupRepo()
	g := mustCreateGroup(t, repo)

	uc := NewRemoveMemberUseCase(repo, testUserDirectory())
	err := uc.Execute(context.Background(), RemoveMemberInput{GroupID: g.ID, CallerID: adminID, Username: "owner"})
	assert.ErrorIs(t, err, ErrOwnerImmutable)

	// The owner cannot even remove themselves this way.
	err = uc.Execute(context.Background(), RemoveMemberInput{GroupID: g.ID, CallerID: ownerID, Username: "owner"})
	assert.ErrorIs(t, err, ErrOwnerImmutable)
}

func TestLeaveGroup(t *testing.T) {
	repo := newFakeGroupRepo()
	g := mustCreateGroup(t, repo)

	uc := NewLeaveGroupUseCase(repo)
	require.NoError(t, uc.Execute(context.Background(), g.ID, memberID))

	err := uc.Execute(context.Background(), g.ID, memberID)
	assert.ErrorIs(t, err, ErrNotAChatMember)
}

func TestOwnerCannotLeave(t *testing.T) {
	repo := newFakeGroupRepo()
	g := mustCreateGroup(t, repo)

	uc := NewLeaveGroupUseCase(repo)
	err := uc.Execute(context.Background(), g.ID, ownerID)
	assert.ErrorIs(t, err, ErrOwnerImmutable)
}

func TestSendGroupMessageSnapshotsRecipients(t *testing.T) {
	repo := newFakeGroupRepo()
	g := mustCreateGroup(t, repo)
	notifier := &fakeGroupNotifier{}

	uc := NewSendGroupMessageUseCase(repo, notifier)
	msg, err := uc.Execute(context.Background(), SendGroupMessageInput{GroupID: g.ID, SenderID: memberID, Text: "hello all"})
	require.NoError(t, err)
	assert.Len(t, msg.Recipients, 3)

	// A member added after the send is not in the stored snapshot.
	require.NoError(t, repo.AddMember(context.Background(), g.ID, otherID, group.RoleMember))
	history, err := repo.MessagesByGroup(context.Background(), g.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Len(t, history[0].Recipients, 3)
	assert.NotContains(t, history[0].Recipients, otherID)

	require.Len(t, notifier.notifications, 1)
	assert.Equal(t, msg.ID, notifier.notifications[0].MessageID)
	assert.ElementsMatch(t, msg.Recipients, notifier.recipients[0])
}

func TestSendGroupMessageNonMemberForbidden(t *testing.T) {
	repo := newFakeGroupRepo()
	g := mustCreateGroup(t, repo)
	notifier := &fakeGroupNotifier{}

	uc := NewSendGroupMessageUseCase(repo, notifier)
	_, err := uc.Execute(context.Background(), SendGroupMessageInput{GroupID: g.ID, SenderID: otherID, Text: "hi"})
	assert.ErrorIs(t, err, ErrNotAChatMember)
	assert.Empty(t, notifier.notifications)
}

func TestGetGroupMessagesRequiresMembership(t *testing.T) {
	repo := newFakeGroupRepo()
	g := mustCreateGroup(t, repo)

	send := NewSendGroupMessageUseCase(repo, &fakeGroupNotifier{})
	_, err := send.Execute(context.Background(), SendGroupMessageInput{GroupID: g.ID, SenderID: ownerID, Text: "hi"})
	require.NoError(t, err)

	uc := NewGetGroupMessagesUseCase(repo)
	msgs, err := uc.Execute(context.Background(), g.ID, memberID)
	require.NoError(t, err)
	assert.Len(t, msgs, 1)

	_, err = uc.Execute(context.Background(), g.ID, otherID)
	assert.ErrorIs(t, err, ErrNotAChatMember)
}

func TestGetGroupOwner(t *testing.T) {
	repo := newFakeGroupRepo()
	g := mustCreateGroup(t, repo)

	uc := NewGetGroupOwnerUseCase(repo)
	owner, err := uc.Execute(context.Background(), g.ID, memberID)
	require.NoError(t, err)
	assert.Equal(t, ownerID, owner.UserID)
	assert.Equal(t, group.RoleOwner, owner.Role)
}

func TestListGroups(t *testing.T) {
	repo := newFakeGroupRepo()
	mustCreateGroup(t, repo)

	uc := NewListGroupsUseCase(repo)
	groups, err := uc.Execute(context.Background(), memberID)
	require.NoError(t, err)
	assert.Len(t, groups, 1)

	groups, err = uc.Execute(context.Background(), otherID)
	require.NoError(t, err)
	assert.Empty(t, groups)
}
