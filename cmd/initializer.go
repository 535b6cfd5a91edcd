package main

import (
	"context"
	"database/sql"
	"log"
	"time"

	"firebase.google.com/go/messaging"
	"github.com/redis/go-redis/v9"

	"lostfound/internal/config"
	"lostfound/internal/handlers"
	"lostfound/internal/models"
	"lostfound/internal/repositories"
	"lostfound/internal/services"
	"lostfound/utils"
)

// userStore is the slice of the user repository the auth middleware needs.
type userStore interface {
	GetUserByID(ctx context.Context, id string) (models.User, error)
}

type application struct {
	errorLog *log.Logger
	infoLog  *log.Logger

	tokenManager *utils.TokenManager
	users        userStore

	userHandler         *handlers.UserHandler
	itemHandler         *handlers.ItemHandler
	claimHandler        *handlers.ClaimHandler
	notificationHandler *handlers.NotificationHandler
}

func initializeApp(db *sql.DB, rdb *redis.Client, msgClient *messaging.Client, cfg config.Config, errorLog, infoLog *log.Logger) (*application, error) {
	tokenManager, err := utils.NewTokenManager(cfg.Auth.SigningKey, time.Duration(cfg.Auth.AccessTTLHours)*time.Hour)
	if err != nil {
		return nil, err
	}
	storage := utils.NewStorage(
		cfg.Storage.Endpoint, cfg.Storage.Region, cfg.Storage.Bucket,
		cfg.Storage.AccessKey, cfg.Storage.SecretKey,
	)

	// Repositories
	userRepo := repositories.UserRepository{DB: db}
	itemRepo := repositories.ItemRepository{DB: db}
	claimRepo := repositories.ClaimRepository{DB: db}
	deviceTokenRepo := repositories.DeviceTokenRepository{DB: db}

	// Services
	notificationService := &services.NotificationService{Client: msgClient, TokenRepo: &deviceTokenRepo}
	userService := &services.UserService{
		UserRepo:     &userRepo,
		Redis:        rdb,
		TokenManager: tokenManager,
		MailEndpoint: cfg.Mail.Endpoint,
		MailAPIKey:   cfg.Mail.APIKey,
		MailFrom:     cfg.Mail.From,
	}
	itemService := &services.ItemService{ItemRepo: &itemRepo, Storage: storage}
	claimService := &services.ClaimService{ClaimRepo: &claimRepo, ItemRepo: &itemRepo, Notifier: notificationService}

	return &application{
		errorLog:            errorLog,
		infoLog:             infoLog,
		tokenManager:        tokenManager,
		users:               &userRepo,
		userHandler:         &handlers.UserHandler{Service: userService},
		itemHandler:         &handlers.ItemHandler{Service: itemService},
		claimHandler:        &handlers.ClaimHandler{Service: claimService},
		notificationHandler: &handlers.NotificationHandler{Service: notificationService},
	}, nil
}
