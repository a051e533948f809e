package router

import (
	"github.com/labstack/echo/v4"

	"rotrade/internal/adapter/api/handler"
	"rotrade/internal/adapter/api/middleware"
)

func SetupUserRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	userHandler := handler.GetUserHandler()

	me := e.Group("/v1/users/me")
	me.Use(authMiddleware.Authenticate)
	me.GET("", userHandler.Me)
	me.PATCH("", userHandler.UpdateProfile)

	// Reporting requires an authenticated reporter
	e.POST("/v1/users/:username/report", userHandler.Report, authMiddleware.Authenticate)
}
