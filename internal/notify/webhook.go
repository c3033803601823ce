package notify

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
)

// WebhookSender posts notifications as JSON to a configured endpoint.
type WebhookSender struct {
	httpClient *resty.Client
}

// NewWebhookSender creates a sender posting to the given base URL. The
// endpoint receives POST /notifications with a Notification body.
func NewWebhookSender(baseURL string) *WebhookSender {
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetHeader("Content-Type", "application/json")

	return &WebhookSender{httpClient: client}
}

func (s *WebhookSender) Dispatch(ctx context.Context, n Notification) error {
	response, err := s.httpClient.R().
		SetContext(ctx).
		SetBody(n).
		Post("/notifications")
	if err != nil {
		return fmt.Errorf("httpClient.Post > %w", err)
	}
	if response.IsError() {
		return fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
	}
	return nil
}
