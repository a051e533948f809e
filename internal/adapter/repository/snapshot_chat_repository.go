package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"rotrade/internal/domain/entity"
	"rotrade/internal/domain/repository"
	"rotrade/pkg/errors"
)

type snapshotChatRepository struct {
	store *SnapshotStore
}

func NewSnapshotChatRepository(store *SnapshotStore) repository.ChatRepository {
	return &snapshotChatRepository{
		store: store,
	}
}

func (r *snapshotChatRepository) Create(ctx context.Context, chat *entity.Chat) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if chat.ID == "" {
		chat.ID = entity.ChatID(chat.Participants[0], chat.Participants[1])
	}
	if _, exists := r.store.data.Chats[chat.ID]; exists {
		return errors.Conflict("Chat already exists")
	}

	now := time.Now()
	chat.CreatedAt = now
	chat.UpdatedAt = now
	if chat.Messages == nil {
		chat.Messages = make([]*entity.Message, 0)
	}
	if chat.UnreadCount == nil {
		chat.UnreadCount = make(map[string]int)
	}

	stored := copyChat(chat)
	r.store.data.Chats[chat.ID] = stored

	return r.store.save()
}

func (r *snapshotChatRepository) GetByID(ctx context.Context, id string) (*entity.Chat, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	chat, ok := r.store.data.Chats[id]
	if !ok {
		return nil, errors.NotFound("Chat", nil)
	}

	return copyChat(chat), nil
}

func (r *snapshotChatRepository) ListByParticipant(ctx context.Context, username string) ([]*entity.Chat, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	chats := make([]*entity.Chat, 0)
	for _, chat := range r.store.data.Chats {
		if chat.HasParticipant(username) {
			chats = append(chats, copyChat(chat))
		}
	}

	return chats, nil
}

// Update rewrites chat metadata. The message list is owned by CreateMessage
// and is never replaced here.
func (r *snapshotChatRepository) Update(ctx context.Context, chat *entity.Chat) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored, ok := r.store.data.Chats[chat.ID]
	if !ok {
		return errors.NotFound("Chat", nil)
	}

	stored.LastMessage = chat.LastMessage
	stored.LastMessageAt = chat.LastMessageAt
	stored.Blocked = chat.Blocked
	stored.UpdatedAt = time.Now()
	stored.UnreadCount = make(map[string]int, len(chat.UnreadCount))
	for k, v := range chat.UnreadCount {
		stored.UnreadCount[k] = v
	}

	return r.store.save()
}

func (r *snapshotChatRepository) CreateMessage(ctx context.Context, message *entity.Message) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	chat, ok := r.store.data.Chats[message.ChatID]
	if !ok {
		return errors.NotFound("Chat", nil)
	}

	if message.ID == "" {
		message.ID = uuid.New().String()
	}
	message.CreatedAt = time.Now()

	copied := *message
	if message.ReplyTo != nil {
		ref := *message.ReplyTo
		copied.ReplyTo = &ref
	}
	chat.Messages = append(chat.Messages, &copied)

	return r.store.save()
}

func (r *snapshotChatRepository) GetMessagesByChat(ctx context.Context, chatID string) ([]*entity.Message, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	chat, ok := r.store.data.Chats[chatID]
	if !ok {
		return nil, errors.NotFound("Chat", nil)
	}

	messages := make([]*entity.Message, 0, len(chat.Messages))
	for _, m := range chat.Messages {
		copied := *m
		if m.ReplyTo != nil {
			ref := *m.ReplyTo
			copied.ReplyTo = &ref
		}
		messages = append(messages, &copied)
	}

	return messages, nil
}

func copyChat(chat *entity.Chat) *entity.Chat {
	copied := *chat
	copied.Participants = append([]string(nil), chat.Participants...)
	copied.UnreadCount = make(map[string]int, len(chat.UnreadCount))
	for k, v := range chat.UnreadCount {
		copied.UnreadCount[k] = v
	}
	copied.Messages = make([]*entity.Message, 0, len(chat.Messages))
	for _, m := range chat.Messages {
		mc := *m
		if m.ReplyTo != nil {
			ref := *m.ReplyTo
			mc.ReplyTo = &ref
		}
		copied.Messages = append(copied.Messages, &mc)
	}
	return &copied
}
