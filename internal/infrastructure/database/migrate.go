package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Schema statements are idempotent so the API can run them on every start.
// The unique constraints are load-bearing: duplicate usernames/emails,
// duplicate direct-chat pairs and duplicate group memberships are all detected
// by the database, not only by pre-checks in the usecases.
var schema = []string{
	`CREATE EXTENSION IF NOT EXISTS pgcrypto`,
	`CREATE TABLE IF NOT EXISTS users (
		id              uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		username        text NOT NULL UNIQUE,
		email           text NOT NULL UNIQUE,
		hashed_password text NOT NULL,
		img             text,
		created_at      timestamptz NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS direct_chats (
		id         uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		user_a     uuid NOT NULL REFERENCES users(id),
		user_b     uuid NOT NULL REFERENCES users(id),
		created_at timestamptz NOT NULL DEFAULT now(),
		UNIQUE (user_a, user_b),
		CHECK (user_a < user_b)
	)`,
	`CREATE TABLE IF NOT EXISTS direct_messages (
		id           uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		sender_id    uuid NOT NULL REFERENCES users(id),
		recipient_id uuid NOT NULL REFERENCES users(id),
		text         text NOT NULL,
		sent_at      timestamptz NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_direct_messages_pair
		ON direct_messages (sender_id, recipient_id, sent_at)`,
	`CREATE TABLE IF NOT EXISTS group_chats (
		id         uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		title      text NOT NULL,
		owner_id   uuid NOT NULL REFERENCES users(id),
		created_at timestamptz NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS group_members (
		group_id uuid NOT NULL REFERENCES group_chats(id) ON DELETE CASCADE,
		user_id  uuid NOT NULL REFERENCES users(id),
		role     text NOT NULL DEFAULT 'member',
		PRIMARY KEY (group_id, user_id)
	)`,
	`CREATE TABLE IF NOT EXISTS group_messages (
		id         uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		group_id   uuid NOT NULL REFERENCES group_chats(id) ON DELETE CASCADE,
		sender_id  uuid NOT NULL REFERENCES users(id),
		recipients uuid[] NOT NULL,
		text       text NOT NULL,
		sent_at    timestamptz NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_group_messages_group
		ON group_messages (group_id, sent_at)`,
}

// Migrate applies the schema to the connected database.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("postgres: migrate: %w", err)
		}
	}
	return nil
}
