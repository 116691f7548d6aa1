package task

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	qport "github.com/AnastasiaYuhimenko/simple-messanger/internal/infrastructure/queue/port"
	"github.com/AnastasiaYuhimenko/simple-messanger/internal/infrastructure/realtime"
	"github.com/AnastasiaYuhimenko/simple-messanger/internal/pkg/chat/application/usecase"
	repoAdapter "github.com/AnastasiaYuhimenko/simple-messanger/internal/pkg/chat/persistence/repository/adapter"
	"github.com/AnastasiaYuhimenko/simple-messanger/pkg/apperr"
)

// SendDirectMessageTaskType is the queue task name for a deferred direct send.
const SendDirectMessageTaskType = "chat:send_direct"

// SendDirectMessageTaskPayload is the JSON payload transported via the queue.
// Kept decoupled from domain types to avoid tight coupling with JSON tags.
type SendDirectMessageTaskPayload struct {
	ChatID   string `json:"chatId"`
	SenderID string `json:"senderId"`
	Text     string `json:"text"`
}

// NewSendDirectMessageTask builds the queue task for a deferred direct send.
func NewSendDirectMessageTask(chatID, senderID, text string) (qport.Task, error) {
	payload, err := json.Marshal(SendDirectMessageTaskPayload{ChatID: chatID, SenderID: senderID, Text: text})
	if err != nil {
		return qport.Task{}, err
	}
	return qport.Task{Type: SendDirectMessageTaskType, Payload: payload}, nil
}

// RegisterSendDirectMessageTask binds the task handler to the provided server.
// The handler re-enters the same send usecase the HTTP path uses so deferred
// messages are persisted and fanned out identically.
func RegisterSendDirectMessageTask(srv qport.Server, pool *pgxpool.Pool, fanout *realtime.Fanout) {
	srv.Register(SendDirectMessageTaskType, func(ctx context.Context, t qport.Task) error {
		var p SendDirectMessageTaskPayload
		if err := json.Unmarshal(t.Payload, &p); err != nil {
			// malformed payload: do not retry indefinitely
			return err
		}

		repo := repoAdapter.NewPgChatRepository(pool)
		uc := usecase.NewSendDirectMessageUseCase(repo, fanout)

		ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		_, err := uc.Execute(ctx, usecase.SendDirectMessageInput{
			ChatID:   p.ChatID,
			SenderID: p.SenderID,
			Text:     p.Text,
		})
		if err != nil && apperr.CodeOf(err) != apperr.CodeInternal {
			// Domain rejections will not pass on retry, drop the task.
			return nil
		}
		return err
	})
}
