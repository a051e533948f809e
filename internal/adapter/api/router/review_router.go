package router

import (
	"github.com/labstack/echo/v4"

	"rotrade/internal/adapter/api/handler"
	"rotrade/internal/adapter/api/middleware"
)

func SetupReviewRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	reviewHandler := handler.GetReviewHandler()

	e.GET("/v1/users/:username/reviews", reviewHandler.ListReviews)
	e.POST("/v1/users/:username/reviews", reviewHandler.CreateReview, authMiddleware.Authenticate)
}
