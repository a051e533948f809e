package router

import (
	"rotrade/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	SetupAuthRouter(e, authMiddleware)
	SetupUserRouter(e, authMiddleware)
	SetupListingRouter(e, authMiddleware)
	SetupChatRouter(e, authMiddleware)
	SetupReviewRouter(e, authMiddleware)
	SetupHealthRouter(e)
}
