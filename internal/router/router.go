package router

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sefazor/mygallery-backend/internal/config"
	"github.com/sefazor/mygallery-backend/internal/handler"
	"github.com/sefazor/mygallery-backend/internal/middleware"
	"github.com/sefazor/mygallery-backend/internal/models"
	"github.com/sefazor/mygallery-backend/internal/service"
	"go.uber.org/zap"
)

const bodyLimit = service.MaxUploadSize + 1<<20

type Handlers struct {
	Auth   *handler.AuthHandler
	User   *handler.UserHandler
	Photo  *handler.PhotoHandler
	Health *handler.HealthHandler
}

func New(cfg *config.Config, log *zap.Logger, verifier middleware.TokenVerifier, h Handlers) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "mygallery",
		BodyLimit:    bodyLimit,
		ErrorHandler: errorHandler(log),
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORS.AllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,HEAD,PUT,PATCH,POST,DELETE",
	}))
	if cfg.IsDevelopment() {
		app.Use(logger.New())
	}

	// Public routes
	app.Get("/health", h.Health.Check)
	app.Post("/sessions", h.Auth.Login)
	app.Post("/users", h.User.Create)

	// Protected routes
	app.Use(middleware.AuthMiddleware(verifier, log))
	{
		users := app.Group("/users")
		users.Get("/", h.User.List)
		users.Post("/login", h.User.Show)
		users.Put("/:id", h.User.Update)
		users.Delete("/:id", h.User.Destroy)

		users.Get("/:userId/fotos", h.Photo.List)
		// Bulk delete lives here instead of DELETE /fotos/:userId, which
		// would collide with DELETE /fotos/:id.
		users.Delete("/:userId/fotos", h.Photo.DestroyAll)
		users.Get("/:userId/fotos/:id", h.Photo.Show)

		photos := app.Group("/fotos")
		photos.Post("/", h.Photo.Create)
		photos.Post("/upload", h.Photo.Upload)
		photos.Put("/:id", h.Photo.Update)
		photos.Delete("/:id", h.Photo.Destroy)
	}

	return app
}

// errorHandler renders framework errors (unknown route, oversized body,
// recovered panics) with the same envelope the handlers use.
func errorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var ferr *fiber.Error
		if errors.As(err, &ferr) {
			return c.Status(ferr.Code).JSON(models.ErrorResponse(ferr.Message))
		}

		log.Error("unhandled error",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Internal server error"))
	}
}
