package main

import (
	"log"

	"github.com/Frajuan18/Gym-sub000/internal/config"
	"github.com/Frajuan18/Gym-sub000/internal/database"
	"github.com/Frajuan18/Gym-sub000/internal/logger"
	"github.com/Frajuan18/Gym-sub000/internal/routes"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.AppEnv, cfg.LogLevel, cfg.LogFile)
	defer logger.Sync()

	db, err := database.Connect(cfg.DBUrl)
	if err != nil {
		logger.Log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	var rdb *redis.Client
	if cfg.RedisEnabled() {
		rdb, err = database.ConnectRedis(cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			// The cache is an optimization, not a dependency.
			logger.Log.Warn("redis unavailable, serving without cache", zap.Error(err))
			rdb = nil
		}
	}

	app := fiber.New()

	app.Use(cors.New())
	app.Use(fiberlogger.New())
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
		})
	})
	if err := routes.RegisterRoutes(app, cfg, db, rdb); err != nil {
		logger.Log.Fatal("failed to register routes", zap.Error(err))
	}

	logger.Log.Info("server starting", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Log.Fatal("server failed to start", zap.Error(err))
	}
}
