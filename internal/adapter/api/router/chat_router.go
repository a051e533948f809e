package router

import (
	"github.com/labstack/echo/v4"

	"rotrade/internal/adapter/api/handler"
	"rotrade/internal/adapter/api/middleware"
)

func SetupChatRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	chatHandler := handler.GetChatHandler()

	chats := e.Group("/v1/chats")
	chats.Use(authMiddleware.Authenticate) // All chat endpoints require authentication

	chats.POST("", chatHandler.OpenChat)    // POST /v1/chats - Open or create the chat with a user
	chats.GET("", chatHandler.GetUserChats) // GET /v1/chats - Get caller's chats

	chats.GET("/:id/messages", chatHandler.GetChatMessages) // GET /v1/chats/:id/messages
	chats.POST("/:id/messages", chatHandler.SendMessage)    // POST /v1/chats/:id/messages
	chats.POST("/:id/block", chatHandler.ToggleBlock)       // POST /v1/chats/:id/block - Toggle the block flag
}
