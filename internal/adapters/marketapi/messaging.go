package marketapi

import (
	"context"
	"fmt"

	"skidmo-client/internal/core/domain"
)

func (c *Client) ListThreads(ctx context.Context) ([]domain.MessageThread, error) {
	var threads []domain.MessageThread
	if err := c.getJSON(ctx, "threads/", nil, &threads); err != nil {
		return nil, fmt.Errorf("MarketAPIClient: failed to list threads: %w", err)
	}
	return threads, nil
}

func (c *Client) ListMessages(ctx context.Context, threadID string) ([]domain.Message, error) {
	var messages []domain.Message
	if err := c.getJSON(ctx, "threads/"+threadID+"/messages/", nil, &messages); err != nil {
		return nil, fmt.Errorf("MarketAPIClient: failed to list messages for thread %s: %w", threadID, err)
	}
	return messages, nil
}

func (c *Client) SendMessage(ctx context.Context, threadID, body string) (*domain.Message, error) {
	var message domain.Message
	payload := map[string]string{"body": body}
	if err := c.postJSON(ctx, "threads/"+threadID+"/messages/", payload, &message); err != nil {
		return nil, fmt.Errorf("MarketAPIClient: failed to send message to thread %s: %w", threadID, err)
	}
	return &message, nil
}
