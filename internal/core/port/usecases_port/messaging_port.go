package usecases_port

import (
	"context"

	"skidmo-client/internal/core/domain"
)

type ListThreadsUseCase interface {
	Execute(ctx context.Context) ([]domain.MessageThread, error)
}

type SendMessageUseCase interface {
	Execute(ctx context.Context, threadID, body string) (*domain.Message, error)
}
