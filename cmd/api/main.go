package main

import (
	"context"
	"log"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"rotrade/internal/adapter/api"
	"rotrade/internal/adapter/api/handler"
	apimiddleware "rotrade/internal/adapter/api/middleware"
	"rotrade/internal/adapter/api/router"
	"rotrade/internal/adapter/repository"
	"rotrade/internal/usecase"
	"rotrade/pkg/config"
	"rotrade/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	store, err := repository.NewSnapshotStore(cfg.DataDir)
	if err != nil {
		log.Fatalf("Failed to load snapshot store: %v", err)
	}

	sessionStore, err := repository.NewFSSessionStore(cfg.DataDir)
	if err != nil {
		log.Fatalf("Failed to initialize session store: %v", err)
	}

	userRepo := repository.NewSnapshotUserRepository(store)
	listingRepo := repository.NewSnapshotListingRepository(store)
	chatRepo := repository.NewSnapshotChatRepository(store)
	reviewRepo := repository.NewSnapshotReviewRepository(store)

	authUseCase := usecase.NewAuthUseCase(userRepo, sessionStore, cfg.JWTSecret, cfg.JWTExpiry)
	listingUseCase := usecase.NewListingUseCase(listingRepo, userRepo)
	chatUseCase := usecase.NewChatUseCase(chatRepo, userRepo)
	reviewUseCase := usecase.NewReviewUseCase(reviewRepo, userRepo)

	if restored, err := authUseCase.RestoreSession(ctx); err == nil {
		logger.Info("Restored session for %s", restored.Username)
	}

	handler.Setup(authUseCase, listingUseCase, chatUseCase, reviewUseCase)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(cfg.JWTSecret)

	router.Setup(e, authMiddleware)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
