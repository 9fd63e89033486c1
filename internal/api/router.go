package api

import (
	"errors"
	"time"

	"recs-admin/docs"
	"recs-admin/internal/api/handlers"
	"recs-admin/internal/dto"
	"recs-admin/pkg/config"
	"recs-admin/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

// SessionTTL is how long an operator session cookie stays valid.
const SessionTTL = 12 * time.Hour

// SetupRouter builds the operator console app.
func SetupRouter(consoleHandler *handlers.ConsoleHandler, cfg *config.ServerConfig, appLogger *zap.Logger) *fiber.App {
	app := newApp(cfg, appLogger)

	app.Get("/health", health)

	app.Use(middleware.Session(SessionTTL, appLogger))

	app.Get("/", consoleHandler.Index)
	app.Post("/console/:command", consoleHandler.Submit)

	api := app.Group("/api/v1/console")
	api.Get("", consoleHandler.GetView)
	api.Post("/:command", consoleHandler.RunCommand)

	return app
}

// SetupServiceRouter builds the reference recommendation REST service.
func SetupServiceRouter(recHandler *handlers.RecommendationHandler, cfg *config.ServerConfig, appLogger *zap.Logger) *fiber.App {
	app := newApp(cfg, appLogger)

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))

	// importing docs registers the generated OpenAPI document with swag
	_ = docs.SwaggerInfo
	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Get("/health", health)

	recs := app.Group("/recommendations")
	recs.Get("", recHandler.ListRecommendations)
	recs.Post("", recHandler.CreateRecommendation)
	recs.Get("/:id", recHandler.GetRecommendation)
	recs.Put("/:id", recHandler.UpdateRecommendation)
	recs.Delete("/:id", recHandler.DeleteRecommendation)

	return app
}

func newApp(cfg *config.ServerConfig, appLogger *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ReadTimeout:           cfg.ReadTimeout,
		WriteTimeout:          cfg.WriteTimeout,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}
			if code >= fiber.StatusInternalServerError {
				appLogger.Error("Request failed", zap.String("path", c.Path()), zap.Error(err))
			}
			return c.Status(code).JSON(dto.ErrorResponse{Message: err.Error()})
		},
	})

	app.Use(recover.New())
	app.Use(logger.New())
	return app
}

func health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "ok",
		"timestamp": time.Now(),
	})
}
