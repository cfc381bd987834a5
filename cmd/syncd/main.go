package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/vibecoder10/economy-fastforward/internal/config"
	"github.com/vibecoder10/economy-fastforward/internal/handlers"
	"github.com/vibecoder10/economy-fastforward/internal/worker"
)

func main() {
	config.InitLogger()

	pool := worker.NewPool(4, 32)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
	app.Use(logger.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "ok",
			"message": "narration sync service is healthy",
		})
	})

	apiV1 := app.Group("/api/v1")
	apiV1.Post("/sync", handlers.SynthesizeTimeline)
	apiV1.Post("/sync/async", handlers.SynthesizeTimelineAsync(pool))

	go func() {
		config.Log.Info("Starting narration sync service on port 8080...")
		if err := app.Listen(":8080"); err != nil {
			config.Log.WithError(err).Fatal("server exited")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	config.Log.Info("Shutting down narration sync service...")
	if err := app.Shutdown(); err != nil {
		config.Log.WithError(err).Error("server shutdown failed")
	}
	pool.Stop()
}
