package app

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/aidriven/todo-backend/auth"
	"github.com/aidriven/todo-backend/config"
	"github.com/aidriven/todo-backend/database"
	"github.com/aidriven/todo-backend/handlers"
	"github.com/aidriven/todo-backend/middleware"
	"github.com/aidriven/todo-backend/router"
	"github.com/aidriven/todo-backend/store"
)

// SetupAndRunApp loads configuration, connects the database, and serves the
// API until the listener stops.
func SetupAndRunApp() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	db, err := database.Open(cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := database.Migrate(db, cfg.DatabaseURL); err != nil {
		return err
	}

	app := New(cfg, db)
	return app.Listen(":" + cfg.Port)
}

// New builds the Fiber application with every route wired. Tests call it
// directly with an in-memory database.
func New(cfg config.Config, db *sql.DB) *fiber.App {
	users := store.NewUserStore(db)
	tasks := store.NewTaskStore(db)
	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL(), nil)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
	}))
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${ip}]:${port} ${status} - ${method} ${path} ${latency}\n",
	}))

	router.SetupRoutes(app,
		handlers.NewAuthHandler(users, tokens),
		handlers.NewUserHandler(users),
		handlers.NewTaskHandler(tasks),
		middleware.RequireAuth(tokens),
	)
	return app
}
