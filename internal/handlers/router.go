package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"sahilparate51/resume-relevance/internal/services"
)

type RouterConfig struct {
	BodyLimit  int
	AccessLogs bool
}

// NewApp wires middleware and routes onto a fresh fiber app.
func NewApp(
	cfg RouterConfig,
	analyzeHandler *AnalyzeHandler,
	historyHandler *HistoryHandler,
	reportHandler *ReportHandler,
	metrics *services.Metrics,
) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "AI Resume Relevance Check API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 5 * time.Minute,
		BodyLimit:    cfg.BodyLimit,
		ErrorHandler: customErrorHandler,
	})

	app.Use(recover.New())
	if cfg.AccessLogs {
		app.Use(logger.New(logger.Config{
			Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
			TimeFormat: "2006-01-02 15:04:05",
		}))
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	api := app.Group("/api/v1")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	api.Post("/analyze", analyzeHandler.HandleAnalyze)
	api.Get("/evaluations", historyHandler.HandleList)
	api.Get("/evaluations/export", historyHandler.HandleExport)
	api.Post("/reports", reportHandler.HandleReport)

	if metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))
	}

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "AI Resume Relevance Check API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/analyze",
				"GET /api/v1/evaluations",
				"GET /api/v1/evaluations/export",
				"POST /api/v1/reports",
				"GET /metrics",
			},
		})
	})

	return app
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
