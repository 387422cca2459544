package port

import (
	"context"

	"skidmo-client/internal/core/domain"
)

type MessagingAPIPort interface {
	ListThreads(ctx context.Context) ([]domain.MessageThread, error)
	ListMessages(ctx context.Context, threadID string) ([]domain.Message, error)
	SendMessage(ctx context.Context, threadID, body string) (*domain.Message, error)
}
