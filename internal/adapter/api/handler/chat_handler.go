package handler

import (
	"github.com/labstack/echo/v4"

	"rotrade/internal/usecase"
	"rotrade/pkg/response"
)

type ChatHandler struct {
	chatUseCase *usecase.ChatUseCase
}

func NewChatHandler(chatUseCase *usecase.ChatUseCase) *ChatHandler {
	return &ChatHandler{
		chatUseCase: chatUseCase,
	}
}

type openChatRequest struct {
	Username string `json:"username" validate:"required"`
}

type sendMessageRequest struct {
	Text    string `json:"text"`
	ReplyTo string `json:"reply_to,omitempty"`
}

// OpenChat resolves or creates the chat with another user and marks it read
// for the caller.
func (h *ChatHandler) OpenChat(c echo.Context) error {
	username := c.Get("username").(string)

	var req openChatRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	chat, err := h.chatUseCase.OpenOrCreate(c.Request().Context(), username, req.Username)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, chat)
}

func (h *ChatHandler) GetUserChats(c echo.Context) error {
	username := c.Get("username").(string)

	chats, err := h.chatUseCase.ListForUser(c.Request().Context(), username)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, chats)
}

func (h *ChatHandler) GetChatMessages(c echo.Context) error {
	username := c.Get("username").(string)

	messages, err := h.chatUseCase.Messages(c.Request().Context(), username, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, messages)
}

// SendMessage delivers into the chat. Empty text and blocked chats are silent
// no-ops, acknowledged with empty data.
func (h *ChatHandler) SendMessage(c echo.Context) error {
	username := c.Get("username").(string)

	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	message, err := h.chatUseCase.SendMessage(c.Request().Context(), username, usecase.SendMessageInput{
		ChatID:    c.Param("id"),
		Text:      req.Text,
		ReplyToID: req.ReplyTo,
	})
	if err != nil {
		return response.Error(c, err)
	}
	if message == nil {
		return response.Success(c, nil)
	}

	return response.Created(c, message)
}

func (h *ChatHandler) ToggleBlock(c echo.Context) error {
	username := c.Get("username").(string)

	chat, err := h.chatUseCase.ToggleBlock(c.Request().Context(), username, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"id":      chat.ID,
		"blocked": chat.Blocked,
	})
}
