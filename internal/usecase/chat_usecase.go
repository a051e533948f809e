package usecase

import (
	"context"
	"sort"
	"strings"

	"rotrade/internal/domain/entity"
	"rotrade/internal/domain/repository"
	"rotrade/pkg/errors"
	"rotrade/pkg/logger"
)

type ChatUseCase struct {
	chatRepo repository.ChatRepository
	userRepo repository.UserRepository
}

func NewChatUseCase(
	chatRepo repository.ChatRepository,
	userRepo repository.UserRepository,
) *ChatUseCase {
	return &ChatUseCase{
		chatRepo: chatRepo,
		userRepo: userRepo,
	}
}

type SendMessageInput struct {
	ChatID    string
	Text      string
	ReplyToID string
}

// UserSummary is the peer profile surfaced alongside a chat; it never carries
// credentials.
type UserSummary struct {
	Username  string  `json:"username"`
	Rating    float64 `json:"rating"`
	AvatarURL string  `json:"avatar_url,omitempty"`
}

type ChatResponse struct {
	*entity.Chat
	OtherUser *UserSummary `json:"other_user,omitempty"`
}

type MessageResponse struct {
	*entity.Message
	// IsOwn is computed relative to the viewer, never stored.
	IsOwn bool `json:"is_own"`
}

// OpenOrCreate resolves the symmetric chat between two users, creating it
// empty when absent. Opening acknowledges: the opener's unread count drops to
// zero as a side effect.
func (uc *ChatUseCase) OpenOrCreate(ctx context.Context, self, other string) (*ChatResponse, error) {
	if self == other {
		return nil, errors.BadRequest("You cannot create a chat with yourself", nil)
	}

	peer, err := uc.userRepo.GetByUsername(ctx, other)
	if err != nil {
		return nil, errors.NotFound("Recipient", err)
	}

	chatID := entity.ChatID(self, other)

	chat, err := uc.chatRepo.GetByID(ctx, chatID)
	if err != nil {
		if !errors.Is(err, "NOT_FOUND") {
			return nil, err
		}

		chat = &entity.Chat{
			ID:           chatID,
			Participants: []string{self, other},
			UnreadCount:  make(map[string]int),
		}
		if err := uc.chatRepo.Create(ctx, chat); err != nil {
			return nil, err
		}
	} else if chat.UnreadCount[self] != 0 {
		chat.UnreadCount[self] = 0
		if err := uc.chatRepo.Update(ctx, chat); err != nil {
			return nil, err
		}
	}

	return &ChatResponse{
		Chat: chat,
		OtherUser: &UserSummary{
			Username:  peer.Username,
			Rating:    peer.Rating,
			AvatarURL: peer.AvatarURL,
		},
	}, nil
}

// SendMessage appends to the chat and refreshes its denormalized summary.
// Blank text and blocked chats are silent no-ops: no error, no mutation.
func (uc *ChatUseCase) SendMessage(ctx context.Context, sender string, input SendMessageInput) (*MessageResponse, error) {
	chat, err := uc.chatRepo.GetByID(ctx, input.ChatID)
	if err != nil {
		return nil, err
	}

	if !chat.HasParticipant(sender) {
		return nil, errors.Forbidden("You are not a participant of this chat", nil)
	}

	if strings.TrimSpace(input.Text) == "" || chat.Blocked {
		return nil, nil
	}

	message := &entity.Message{
		ChatID: chat.ID,
		Sender: sender,
		Text:   input.Text,
	}

	if input.ReplyToID != "" {
		original := findMessage(chat.Messages, input.ReplyToID)
		if original == nil {
			return nil, errors.NotFound("Message", nil)
		}
		// Snapshot copy: later edits to the original do not follow.
		message.ReplyTo = &entity.ReplyRef{
			MessageID: original.ID,
			Sender:    original.Sender,
			Text:      original.Text,
		}
	}

	if err := uc.chatRepo.CreateMessage(ctx, message); err != nil {
		return nil, err
	}

	chat.LastMessage = message.Text
	chat.LastMessageAt = message.CreatedAt
	for _, participant := range chat.Participants {
		if participant != sender {
			chat.UnreadCount[participant]++
		}
	}

	if err := uc.chatRepo.Update(ctx, chat); err != nil {
		logger.Error("Failed to update chat %s after message: %v", chat.ID, err)
		return nil, err
	}

	return &MessageResponse{Message: message, IsOwn: true}, nil
}

// ToggleBlock flips the sticky blocked flag. While blocked, SendMessage is a
// no-op for both participants.
func (uc *ChatUseCase) ToggleBlock(ctx context.Context, caller, chatID string) (*entity.Chat, error) {
	chat, err := uc.chatRepo.GetByID(ctx, chatID)
	if err != nil {
		return nil, err
	}

	if !chat.HasParticipant(caller) {
		return nil, errors.Forbidden("You are not a participant of this chat", nil)
	}

	chat.Blocked = !chat.Blocked

	if err := uc.chatRepo.Update(ctx, chat); err != nil {
		return nil, err
	}

	return chat, nil
}

// ListForUser returns the user's chats, most recently active first.
// Membership is a participant check, not an id-substring match.
func (uc *ChatUseCase) ListForUser(ctx context.Context, username string) ([]*ChatResponse, error) {
	chats, err := uc.chatRepo.ListByParticipant(ctx, username)
	if err != nil {
		return nil, err
	}

	sort.Slice(chats, func(i, j int) bool {
		return chats[i].LastMessageAt.After(chats[j].LastMessageAt)
	})

	responses := make([]*ChatResponse, 0, len(chats))
	for _, chat := range chats {
		resp := &ChatResponse{Chat: chat}
		if peerName := chat.OtherParticipant(username); peerName != "" {
			if peer, err := uc.userRepo.GetByUsername(ctx, peerName); err == nil {
				resp.OtherUser = &UserSummary{
					Username:  peer.Username,
					Rating:    peer.Rating,
					AvatarURL: peer.AvatarURL,
				}
			}
		}
		responses = append(responses, resp)
	}

	return responses, nil
}

// Messages returns the chat history in send order, with ownership computed
// relative to the viewer.
func (uc *ChatUseCase) Messages(ctx context.Context, viewer, chatID string) ([]*MessageResponse, error) {
	chat, err := uc.chatRepo.GetByID(ctx, chatID)
	if err != nil {
		return nil, err
	}

	if !chat.HasParticipant(viewer) {
		return nil, errors.Forbidden("You are not a participant of this chat", nil)
	}

	messages, err := uc.chatRepo.GetMessagesByChat(ctx, chatID)
	if err != nil {
		return nil, err
	}

	responses := make([]*MessageResponse, 0, len(messages))
	for _, message := range messages {
		responses = append(responses, &MessageResponse{
			Message: message,
			IsOwn:   message.Sender == viewer,
		})
	}

	return responses, nil
}

func findMessage(messages []*entity.Message, id string) *entity.Message {
	for _, m := range messages {
		if m.ID == id {
			return m
		}
	}
	return nil
}
