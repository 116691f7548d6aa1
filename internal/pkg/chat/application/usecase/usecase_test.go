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
	chat "github.com/AnastasiaYuhimenko/simple-messanger/internal/pkg/chat/application/domain"
	chatAdapter "github.com/AnastasiaYuhimenko/simple-messanger/internal/pkg/chat/persistence/repository/adapter"
	identity "github.com/AnastasiaYuhimenko/simple-messanger/internal/pkg/identity/domain"
	"github.com/AnastasiaYuhimenko/simple-messanger/pkg/apperr"
)

const (
	aliceID = "11111111-1111-1111-1111-111111111111"
	bobID   = "22222222-2222-2222-2222-222222222222"
	eveID   = "33333333-3333-3333-3333-333333333333"
)

type fakeChatRepo struct {
	chats    map[string]*chat.DirectChat
	messages []chat.DirectMessage
	nextID   int
	saveErr  error
}

func newFakeChatRepo() *fakeChatRepo {
	return &fakeChatRepo{chats: map[string]*chat.DirectChat{}, nextID: 1}
}

func (r *fakeChatRepo) CreateChat(_ context.Context, userA, userB string) (string, error) {
	for _, c := range r.chats {
		if c.UserA == userA && c.UserB == userB {
			return "", chatAdapter.ErrChatExists
		}
	}
	id := fmt.Sprintf("chat-%d", r.nextID)
	r.nextID++
	r.chats[id] = &chat.DirectChat{ID: id, UserA: userA, UserB: userB, CreatedAt: time.Now().UTC()}
	return id, nil
}

func (r *fakeChatRepo) FindChatByPair(_ context.Context, userA, userB string) (*chat.DirectChat, error) {
	for _, c := range r.chats {
		if c.UserA == userA && c.UserB == userB {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeChatRepo) FindChatByID(_ context.Context, chatID string) (*chat.DirectChat, error) {
	return r.chats[chatID], nil
}

func (r *fakeChatRepo) ListChatsByUser(_ context.Context, userID string) ([]chat.DirectChat, error) {
	var out []chat.DirectChat
	for _, c := range r.chats {
		if c.Has(userID) {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *fakeChatRepo) SaveMessage(_ context.Context, m chat.DirectMessage) (string, error) {
	if r.saveErr != nil {
		return "", r.saveErr
	}
	id := fmt.Sprintf("msg-%d", r.nextID)
	r.nextID++
	m.ID = id
	r.messages = append(r.messages, m)
	return id, nil
}

func (r *fakeChatRepo) MessagesBetween(_ context.Context, userA, userB string) ([]chat.DirectMessage, error) {
	var out []chat.DirectMessage
	for _, m := range r.messages {
		if (m.SenderID == userA && m.RecipientID == userB) || (m.SenderID == userB && m.RecipientID == userA) {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeUserDirectory struct {
	byUsername map[string]*identity.User
}

func newFakeUserDirectory(users ...*identity.User) *fakeUserDirectory {
	d := &fakeUserDirectory{byUsername: map[string]*identity.User{}}
	for _, u := range users {
		d.byUsername[u.Username] = u
	}
	return d
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

type fakeNotifier struct {
	direct []realtime.DirectNotification
}

func (n *fakeNotifier) DeliverDirect(dn realtime.DirectNotification) int {
	n.direct = append(n.direct, dn)
	return 2
}

func testUsers() *fakeUserDirectory {
	return newFakeUserDirectory(
		&identity.User{ID: aliceID, Username: "alice"},
		&identity.User{ID: bobID, Username: "bob"},
	)
}

func TestCreateDirectChat(t *testing.T) {
	repo := newFakeChatRepo()
	uc := NewCreateDirectChatUseCase(repo, testUsers())

	c, err := uc.Execute(context.Background(), CreateDirectChatInput{CreatorID: aliceID, PeerUsername: "bob"})
	require.NoError(t, err)
	assert.True(t, c.Has(aliceID))
	assert.True(t, c.Has(bobID))
	// Pair stored in canonical order.
	assert.Equal(t, aliceID, c.UserA)
	assert.Equal(t, bobID, c.UserB)
}

func TestCreateDirectChatUnknownPeer(t *testing.T) {
	uc := NewCreateDirectChatUseCase(newFakeChatRepo(), testUsers())
	_, err := uc.Execute(context.Background(), CreateDirectChatInput{CreatorID: aliceID, PeerUsername: "ghost"})
	assert.ErrorIs(t, err, ErrPeerNotFound)
}

func TestCreateDirectChatWithSelf(t *testing.T) {
	uc := NewCreateDirectChatUseCase(newFakeChatRepo(), testUsers())
	_, err := uc.Execute(context.Background(), CreateDirectChatInput{CreatorID: aliceID, PeerUsername: "alice"})
	assert.ErrorIs(t, err, chat.ErrSelfChat)
}

func TestCreateDirectChatDuplicateEitherOrder(t *testing.T) {
	repo := newFakeChatRepo()
	users := testUsers()

	uc := NewCreateDirectChatUseCase(repo, users)
	_, err := uc.Execute(context.Background(), CreateDirectChatInput{CreatorID: aliceID, PeerUsername: "bob"})
	require.NoError(t, err)

	// Same pair again, from either side, must conflict.
	_, err = uc.Execute(context.Background(), CreateDirectChatInput{CreatorID: aliceID, PeerUsername: "bob"})
	assert.ErrorIs(t, err, chatAdapter.ErrChatExists)

	_, err = uc.Execute(context.Background(), CreateDirectChatInput{CreatorID: bobID, PeerUsername: "alice"})
	assert.ErrorIs(t, err, chatAdapter.ErrChatExists)
}

func mustCreateChat(t *testing.T, repo *fakeChatRepo) *chat.DirectChat {
	t.Helper()
	uc := NewCreateDirectChatUseCase(repo, testUsers())
	c, err := uc.Execute(context.Background(), CreateDirectChatInput{CreatorID: aliceID, PeerUsername: "bob"})
	require.NoError(t, err)
	return c
}

func TestSendDirectMessagePersistsThenNotifies(t *testing.T) {
	repo := newFakeChatRepo()
	c := mustCreateChat(t, repo)
	notifier := &fakeNotifier{}

	uc := NewSendDirectMessageUseCase(repo, notifier)
	msg, err := uc.Execute(context.Background(), SendDirectMessageInput{ChatID: c.ID, SenderID: aliceID, Text: "hi bob"})
	require.NoError(t, err)

	assert.Equal(t, bobID, msg.RecipientID)
	require.Len(t, repo.messages, 1)
	require.Len(t, notifier.direct, 1)
	assert.Equal(t, msg.ID, notifier.direct[0].MessageID)
}

func TestSendDirectMessageOutsiderForbidden(t *testing.T) {
	repo := newFakeChatRepo()
	c := mustCreateChat(t, repo)
	notifier := &fakeNotifier{}

	uc := NewSendDirectMessageUseCase(repo, notifier)
	_, err := uc.Execute(context.Background(), SendDirectMessageInput{ChatID: c.ID, SenderID: eveID, Text: "hi"})
	assert.ErrorIs(t, err, chat.ErrNotInChat)
	assert.Empty(t, notifier.direct)
}

func TestSendDirectMessageUnknownChat(t *testing.T) {
	uc := NewSendDirectMessageUseCase(newFakeChatRepo(), &fakeNotifier{})
	_, err := uc.Execute(context.Background(), SendDirectMessageInput{ChatID: "nope", SenderID: aliceID, Text: "hi"})
	assert.ErrorIs(t, err, ErrChatNotFound)
}

func TestSendDirectMessagePersistenceFailureSkipsNotify(t *testing.T) {
	repo := newFakeChatRepo()
	c := mustCreateChat(t, repo)
	repo.saveErr = errors.New("connection reset")
	notifier := &fakeNotifier{}

	uc := NewSendDirectMessageUseCase(repo, notifier)
	_, err := uc.Execute(context.Background(), SendDirectMessageInput{ChatID: c.ID, SenderID: aliceID, Text: "hi"})
	require.Error(t, err)
	assert.Equal(t, apperr.CodeInternal, apperr.CodeOf(err))
	assert.Empty(t, notifier.direct)
}

func TestGetDirectMessagesRequiresParticipant(t *testing.T) {
	repo := newFakeChatRepo()
	c := mustCreateChat(t, repo)

	send := NewSendDirectMessageUseCase(repo, &fakeNotifier{})
	_, err := send.Execute(context.Background(), SendDirectMessageInput{ChatID: c.ID, SenderID: aliceID, Text: "one"})
	require.NoError(t, err)
	_, err = send.Execute(context.Background(), SendDirectMessageInput{ChatID: c.ID, SenderID: bobID, Text: "two"})
	require.NoError(t, err)

	uc := NewGetDirectMessagesUseCase(repo)
	msgs, err := uc.Execute(context.Background(), c.ID, bobID)
	require.NoError(t, err)
	assert.Len(t, msgs, 2)

	_, err = uc.Execute(context.Background(), c.ID, eveID)
	assert.ErrorIs(t, err, chat.ErrNotInChat)
}

func TestListDirectChats(t *testing.T) {
	repo := newFakeChatRepo()
	mustCreateChat(t, repo)

	uc := NewListDirectChatsUseCase(repo)
	chats, err := uc.Execute(context.Background(), aliceID)
	require.NoError(t, err)
	assert.Len(t, chats, 1)

	chats, err = uc.Execute(context.Background(), eveID)
	require.NoError(t, err)
	assert.Empty(t, chats)
}
