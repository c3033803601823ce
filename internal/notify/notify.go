// Package notify delivers reminder notifications. The scheduling core only
// decides what to send; everything about delivery, including retries, lives
// behind the Sender interface here.
package notify

import (
	"context"
	"log/slog"
)

// Channel identifies a delivery medium.
type Channel string

const (
	ChannelWebhook Channel = "webhook"
	ChannelLog     Channel = "log"
)

// Notification is one reminder to deliver.
type Notification struct {
	UserID    int64   `json:"user_id"`
	SubjectID int64   `json:"subject_id"`
	Channel   Channel `json:"channel"`
}

// Sender delivers a notification.
type Sender interface {
	Dispatch(ctx context.Context, n Notification) error
}

// LogSender writes notifications to the log. Used for dry runs and as the
// default when no webhook is configured.
type LogSender struct{}

func (LogSender) Dispatch(_ context.Context, n Notification) error {
	slog.Info("reminder notification",
		"user_id", n.UserID,
		"subject_id", n.SubjectID,
		"channel", n.Channel)
	return nil
}

// Adapter exposes a Sender under the narrower dispatch contract the
// reminder allocator consumes, stamping the configured channel.
type Adapter struct {
	sender  Sender
	channel Channel
}

// NewAdapter creates a new Adapter.
func NewAdapter(sender Sender, channel Channel) *Adapter {
	return &Adapter{sender: sender, channel: channel}
}

func (a *Adapter) Dispatch(ctx context.Context, userID, subjectID int64) error {
	return a.sender.Dispatch(ctx, Notification{
		UserID:    userID,
		SubjectID: subjectID,
		Channel:   a.channel,
	})
}
