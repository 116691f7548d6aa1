package realtime

import (
	"encoding/json"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/AnastasiaYuhimenko/simple-messanger/internal/metrics"
)

// DirectNotification is the payload pushed for a 1:1 message.
type DirectNotification struct {
	Type        string    `json:"type"`
	MessageID   string    `json:"message_id"`
	SenderID    string    `json:"sender_id"`
	RecipientID string    `json:"recipient_id"`
	Text        string    `json:"text"`
	SentAt      time.Time `json:"sent_at"`
}

// GroupNotification is the payload pushed for a group message.
type GroupNotification struct {
	Type      string    `json:"type"`
	MessageID string    `json:"message_id"`
	GroupID   string    `json:"group_id"`
	SenderID  string    `json:"sender_id"`
	Text      string    `json:"text"`
	SentAt    time.Time `json:"sent_at"`
}

// Fanout pushes persisted messages to the live channels of their recipients.
// Delivery is fire-and-forget: recipients without a registered channel are
// skipped silently and rely on history retrieval. Callers must only invoke it
// after the message has been committed.
type Fanout struct {
	reg *Registry
}

func NewFanout(reg *Registry) *Fanout {
	return &Fanout{reg: reg}
}

// Notify marshals v and pushes it to the user's live channel if present.
func (f *Fanout) Notify(userID string, v any) bool {
	payload, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("fanout: marshal payload")
		return false
	}
	delivered := f.reg.Notify(userID, payload)
	if delivered {
		metrics.NotificationsDelivered.Inc()
	} else {
		metrics.NotificationsDropped.Inc()
	}
	return delivered
}

// DeliverDirect notifies both parties of a direct message. The sender is
// included so their other open session receives the echo.
func (f *Fanout) DeliverDirect(n DirectNotification) int {
	if n.Type == "" {
		n.Type = "direct_message"
	}
	delivered := 0
	if f.Notify(n.RecipientID, n) {
		delivered++
	}
	if n.SenderID != n.RecipientID && f.Notify(n.SenderID, n) {
		delivered++
	}
	return delivered
}

// DeliverGroup notifies every recipient in the membership snapshot plus the
// sender, deduplicated.
func (f *Fanout) DeliverGroup(n GroupNotification, recipientIDs []string) int {
	if n.Type == "" {
		n.Type = "group_message"
	}
	delivered := 0
	seen := make(map[string]struct{}, len(recipientIDs)+1)
	for _, id := range append(recipientIDs, n.SenderID) {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if f.Notify(id, n) {
			delivered++
		}
	}
	return delivered
}
