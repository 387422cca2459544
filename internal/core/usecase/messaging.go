package usecase

import (
	"context"

	"skidmo-client/internal/core/domain"
	"skidmo-client/internal/core/port"
)

type ListThreads struct {
	api port.MessagingAPIPort
}

func NewListThreads(api port.MessagingAPIPort) *ListThreads {
	return &ListThreads{api: api}
}

func (uc *ListThreads) Execute(ctx context.Context) ([]domain.MessageThread, error) {
	return uc.api.ListThreads(ctx)
}

type SendMessage struct {
	api port.MessagingAPIPort
}

func NewSendMessage(api port.MessagingAPIPort) *SendMessage {
	return &SendMessage{api: api}
}

func (uc *SendMessage) Execute(ctx context.Context, threadID, body string) (*domain.Message, error) {
	return uc.api.SendMessage(ctx, threadID, body)
}
