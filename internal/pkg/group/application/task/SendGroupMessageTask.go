package task

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	qport "github.com/AnastasiaYuhimenko/simple-messanger/internal/infrastructure/queue/port"
	"github.com/AnastasiaYuhimenko/simple-messanger/internal/infrastructure/realtime"
	"github.com/AnastasiaYuhimenko/simple-messanger/internal/pkg/group/application/usecase"
	repoAdapter "github.com/AnastasiaYuhimenko/simple-messanger/internal/pkg/group/persistence/repository/adapter"
	"github.com/AnastasiaYuhimenko/simple-messanger/pkg/apperr"
)

// SendGroupMessageTaskType is the queue task name for a deferred group send.
const SendGroupMessageTaskType = "chat:send_group"

// SendGroupMessageTaskPayload is the JSON payload transported via the queue.
// Kept decoupled from domain types to avoid tight coupling with JSON tags.
type SendGroupMessageTaskPayload struct {
	GroupID  string `json:"groupId"`
	SenderID string `json:"senderId"`
	Text     string `json:"text"`
}

// NewSendGroupMessageTask builds the queue task for a deferred group send.
func NewSendGroupMessageTask(groupID, senderID, text string) (qport.Task, error) {
	payload, err := json.Marshal(SendGroupMessageTaskPayload{GroupID: groupID, SenderID: senderID, Text: text})
	if err != nil {
		return qport.Task{}, err
	}
	return qport.Task{Type: SendGroupMessageTaskType, Payload: payload}, nil
}

// RegisterSendGroupMessageTask binds the task handler to the provided server.
// The handler re-enters the same send usecase the HTTP path uses, so the
// membership check and the recipients snapshot happen at delivery time.
func RegisterSendGroupMessageTask(srv qport.Server, pool *pgxpool.Pool, fanout *realtime.Fanout) {
	srv.Register(SendGroupMessageTaskType, func(ctx context.Context, t qport.Task) error {
		var p SendGroupMessageTaskPayload
		if err := json.Unmarshal(t.Payload, &p); err != nil {
			// malformed payload: do not retry indefinitely
			return err
		}

		repo := repoAdapter.NewPgGroupRepository(pool)
		uc := usecase.NewSendGroupMessageUseCase(repo, fanout)

		ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		_, err := uc.Execute(ctx, usecase.SendGroupMessageInput{
			GroupID:  p.GroupID,
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
