package repository

import (
	"context"

	"rotrade/internal/domain/entity"
)

type ChatRepository interface {
	Create(ctx context.Context, chat *entity.Chat) error
	GetByID(ctx context.Context, id string) (*entity.Chat, error)
	ListByParticipant(ctx context.Context, username string) ([]*entity.Chat, error)
	Update(ctx context.Context, chat *entity.Chat) error

	// Message methods
	CreateMessage(ctx context.Context, message *entity.Message) error
	GetMessagesByChat(ctx context.Context, chatID string) ([]*entity.Message, error)
}
