//go:build wireinject
// +build wireinject

package main

import (
	"database/sql"

	"github.com/google/wire"
	"github.com/sefazor/mygallery-backend/internal/config"
	"github.com/sefazor/mygallery-backend/internal/handler"
	"github.com/sefazor/mygallery-backend/internal/middleware"
	"github.com/sefazor/mygallery-backend/internal/repository"
	"github.com/sefazor/mygallery-backend/internal/router"
	"github.com/sefazor/mygallery-backend/internal/service"
	"github.com/sefazor/mygallery-backend/pkg/database"
	"github.com/sefazor/mygallery-backend/pkg/utils"
	"go.uber.org/zap"
)

func InitializeServer(cfg *config.Config, log *zap.Logger) (*server, error) {
	wire.Build(
		// Database
		database.NewDatabase,
		provideSQLDB,
		wire.Bind(new(handler.Pinger), new(*sql.DB)),

		// Repositories
		repository.NewUserRepository,
		repository.NewPhotoRepository,
		wire.Bind(new(service.UserStore), new(*repository.UserRepository)),
		wire.Bind(new(service.PhotoStore), new(*repository.PhotoRepository)),

		// Storage
		provideObjectStorage,

		// Services
		provideTokenManager,
		utils.NewValidator,
		service.NewAuthService,
		service.NewUserService,
		service.NewPhotoService,
		wire.Bind(new(handler.Authenticator), new(*service.AuthService)),
		wire.Bind(new(middleware.TokenVerifier), new(*service.AuthService)),
		wire.Bind(new(handler.UserService), new(*service.UserService)),
		wire.Bind(new(handler.PhotoService), new(*service.PhotoService)),

		// Handlers
		handler.NewAuthHandler,
		handler.NewUserHandler,
		handler.NewPhotoHandler,
		handler.NewHealthHandler,
		wire.Struct(new(router.Handlers), "*"),

		// App
		router.New,
		newServer,
	)
	return nil, nil
}
