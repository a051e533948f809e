package router

import (
	"github.com/labstack/echo/v4"

	"rotrade/internal/adapter/api/handler"
	"rotrade/internal/adapter/api/middleware"
)

func SetupListingRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	listingHandler := handler.GetListingHandler()

	// Browsing and search are public; mutations require a session.
	e.GET("/v1/listings", listingHandler.ListListings)

	listings := e.Group("/v1/listings")
	listings.Use(authMiddleware.Authenticate)
	listings.POST("", listingHandler.CreateListing)
	listings.DELETE("/:id", listingHandler.DeleteListing)

	myListings := e.Group("/v1/my-listings")
	myListings.Use(authMiddleware.Authenticate)
	myListings.GET("", listingHandler.ListMyListings)
}
