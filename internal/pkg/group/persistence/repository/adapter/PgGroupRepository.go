package adapter

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	group "github.com/AnastasiaYuhimenko/simple-messanger/internal/pkg/group/application/domain"
	"github.com/AnastasiaYuhimenko/simple-messanger/pkg/apperr"
)

var (
	ErrAlreadyMember = apperr.AlreadyExists("user is already a member of this group")
	ErrNotAMember    = apperr.NotFound("user is not a member of this group")
)

type PgGroupRepository struct {
	pool *pgxpool.Pool
}

func NewPgGroupRepository(pool *pgxpool.Pool) *PgGroupRepository {
	return &PgGroupRepository{pool: pool}
}

// CreateGroup inserts the group and every initial membership atomically so a
// half-created group can never be observed.
func (r *PgGroupRepository) CreateGroup(ctx context.Context, title, ownerID string, memberIDs []string) (string, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return "", err
	}
	defer tx.Rollback(ctx)

	var id string
	err = tx.QueryRow(ctx, `
		INSERT INTO group_chats (title, owner_id)
		VALUES ($1, $2::uuid)
		RETURNING id::text
	`, title, ownerID).Scan(&id)
	if err != nil {
		return "", err
	}

	if _, err := tx.Exec(ctx, `
		INSERT INTO group_members (group_id, user_id, role)
		VALUES ($1::uuid, $2::uuid, $3)
	`, id, ownerID, group.RoleOwner); err != nil {
		return "", err
	}

	for _, memberID := range memberIDs {
		if memberID == ownerID {
			continue
		}
		if _, err := tx.Exec(ctx, `
			INSERT INTO group_members (group_id, user_id, role)
			VALUES ($1::uuid, $2::uuid, $3)
			ON CONFLICT DO NOTHING
		`, id, memberID, group.RoleMember); err != nil {
			return "", err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return "", err
	}
	return id, nil
}

func (r *PgGroupRepository) FindGroup(ctx context.Context, groupID string) (*group.GroupChat, error) {
	var g group.GroupChat
	err := r.pool.QueryRow(ctx, `
		SELECT id::text, title, owner_id::text, created_at
		FROM group_chats
		WHERE id = $1::uuid
	`, groupID).Scan(&g.ID, &g.Title, &g.OwnerID, &g.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *PgGroupRepository) ListGroupsByUser(ctx context.Context, userID string) ([]group.GroupChat, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT g.id::text, g.title, g.owner_id::text, g.created_at
		FROM group_chats g
		JOIN group_members m ON m.group_id = g.id
		WHERE m.user_id = $1::uuid
		ORDER BY g.created_at
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []group.GroupChat
	for rows.Next() {
		var g group.GroupChat
		if err := rows.Scan(&g.ID, &g.Title, &g.OwnerID, &g.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

func (r *PgGroupRepository) MembershipOf(ctx context.Context, groupID, userID string) (*group.Membership, error) {
	var m group.Membership
	err := r.pool.QueryRow(ctx, `
		SELECT m.group_id::text, m.user_id::text, u.username, m.role
		FROM group_members m
		JOIN users u ON u.id = m.user_id
		WHERE m.group_id = $1::uuid AND m.user_id = $2::uuid
	`, groupID, userID).Scan(&m.GroupID, &m.UserID, &m.Username, &m.Role)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgGroupRepository) AddMember(ctx context.Context, groupID, userID string, role group.Role) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO group_members (group_id, user_id, role)
		VALUES ($1::uuid, $2::uuid, $3)
	`, groupID, userID, role)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrAlreadyMember
		}
		return err
	}
	return nil
}

func (r *PgGroupRepository) RemoveMember(ctx context.Context, groupID, userID string) error {
	tag, err := r.pool.Exec(ctx, `
		DELETE FROM group_members
		WHERE group_id = $1::uuid AND user_id = $2::uuid
	`, groupID, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotAMember
	}
	return nil
}

func (r *PgGroupRepository) ListMembers(ctx context.Context, groupID string) ([]group.Membership, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT m.group_id::text, m.user_id::text, u.username, m.role
		FROM group_members m
		JOIN users u ON u.id = m.user_id
		WHERE m.group_id = $1::uuid
		ORDER BY u.username
	`, groupID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []group.Membership
	for rows.Next() {
		var m group.Membership
		if err := rows.Scan(&m.GroupID, &m.UserID, &m.Username, &m.Role); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *PgGroupRepository) MemberIDs(ctx context.Context, groupID string) ([]string, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT user_id::text
		FROM group_members
		WHERE group_id = $1::uuid
	`, groupID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

func (r *PgGroupRepository) SaveMessage(ctx context.Context, m group.GroupMessage) (string, error) {
	var id string
	err := r.pool.QueryRow(ctx, `
		INSERT INTO group_messages (group_id, sender_id, recipients, text, sent_at)
		VALUES ($1::uuid, $2::uuid, $3::uuid[], $4, $5)
		RETURNING id::text
	`, m.GroupID, m.SenderID, m.Recipients, m.Text, m.SentAt).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (r *PgGroupRepository) MessagesByGroup(ctx context.Context, groupID string) ([]group.GroupMessage, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, group_id::text, sender_id::text, recipients::text[], text, sent_at
		FROM group_messages
		WHERE group_id = $1::uuid
		ORDER BY sent_at, id
	`, groupID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []group.GroupMessage
	for rows.Next() {
		var m group.GroupMessage
		if err := rows.Scan(&m.ID, &m.GroupID, &m.SenderID, &m.Recipients, &m.Text, &m.SentAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
