package adapter

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	chat "github.com/AnastasiaYuhimenko/simple-messanger/internal/pkg/chat/application/domain"
	"github.com/AnastasiaYuhimenko/simple-messanger/pkg/apperr"
)

// ErrChatExists is returned when a chat for the pair already exists. The
// unique constraint on the pair is the authoritative guard.
var ErrChatExists = apperr.AlreadyExists("a chat between these users already exists")

type PgChatRepository struct {
	pool *pgxpool.Pool
}

func NewPgChatRepository(pool *pgxpool.Pool) *PgChatRepository {
	return &PgChatRepository{pool: pool}
}

func (r *PgChatRepository) CreateChat(ctx context.Context, userA, userB string) (string, error) {
	var id string
	err := r.pool.QueryRow(ctx, `
		INSERT INTO direct_chats (user_a, user_b)
		VALUES ($1::uuid, $2::uuid)
		RETURNING id::text
	`, userA, userB).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return "", ErrChatExists
		}
		return "", err
	}
	return id, nil
}

func (r *PgChatRepository) FindChatByPair(ctx context.Context, userA, userB string) (*chat.DirectChat, error) {
	return r.findOne(ctx, `WHERE user_a = $1::uuid AND user_b = $2::uuid`, userA, userB)
}

func (r *PgChatRepository) FindChatByID(ctx context.Context, chatID string) (*chat.DirectChat, error) {
	return r.findOne(ctx, `WHERE id = $1::uuid`, chatID)
}

func (r *PgChatRepository) findOne(ctx context.Context, where string, args ...any) (*chat.DirectChat, error) {
	var c chat.DirectChat
	err := r.pool.QueryRow(ctx, `
		SELECT id::text, user_a::text, user_b::text, created_at
		FROM direct_chats `+where,
		args...,
	).Scan(&c.ID, &c.UserA, &c.UserB, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *PgChatRepository) ListChatsByUser(ctx context.Context, userID string) ([]chat.DirectChat, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, user_a::text, user_b::text, created_at
		FROM direct_chats
		WHERE user_a = $1::uuid OR user_b = $1::uuid
		ORDER BY created_at
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []chat.DirectChat
	for rows.Next() {
		var c chat.DirectChat
		if err := rows.Scan(&c.ID, &c.UserA, &c.UserB, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *PgChatRepository) SaveMessage(ctx context.Context, m chat.DirectMessage) (string, error) {
	var id string
	err := r.pool.QueryRow(ctx, `
		INSERT INTO direct_messages (sender_id, recipient_id, text, sent_at)
		VALUES ($1::uuid, $2::uuid, $3, $4)
		RETURNING id::text
	`, m.SenderID, m.RecipientID, m.Text, m.SentAt).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (r *PgChatRepository) MessagesBetween(ctx context.Context, userA, userB string) ([]chat.DirectMessage, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, sender_id::text, recipient_id::text, text, sent_at
		FROM direct_messages
		WHERE (sender_id = $1::uuid AND recipient_id = $2::uuid)
		   OR (sender_id = $2::uuid AND recipient_id = $1::uuid)
		ORDER BY sent_at, id
	`, userA, userB)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []chat.DirectMessage
	for rows.Next() {
		var m chat.DirectMessage
		if err := rows.Scan(&m.ID, &m.SenderID, &m.RecipientID, &m.Text, &m.SentAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
