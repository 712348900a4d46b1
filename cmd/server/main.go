package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"
	"github.com/restychess/backend/internal/config"
	"github.com/restychess/backend/internal/controller"
	"github.com/restychess/backend/internal/middleware"
	"github.com/restychess/backend/internal/service"
	"github.com/restychess/backend/internal/store"
)

func main() {
	configPath := os.Getenv("CHESS_CONFIG")
	if configPath == "" {
		configPath = "config.yaml"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatal(err)
	}

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, X-Request-ID",
		AllowMethods: "GET, POST, OPTIONS",
	}))
	app.Use(middleware.EnsureRequestID())
	// Request logging middleware
	app.Use(func(c *fiber.Ctx) error {
		fmt.Printf("[%v] %s %s\n", c.Locals("requestID"), c.Method(), c.Path())
		return c.Next()
	})

	// Initialize the move log
	moveLog, err := store.NewMoveLog(cfg.DatabasePath)
	if err != nil {
		log.Fatal(err)
	}
	defer moveLog.Close()

	// Initialize services
	boardService := service.NewBoardService(moveLog)

	// Initialize controllers
	boardController := controller.NewBoardController(boardService)
	wsController := controller.NewWebSocketController(boardService)

	// Set up WebSocket route for board watchers
	app.Use("/ws/*", middleware.WebSocketUpgrade())
	app.Get("/ws/board", websocket.New(func(c *websocket.Conn) {
		fmt.Println("WebSocket connection established for board watch")
		wsController.HandleConnection(c)
	}, websocket.Config{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
	}))

	// Liveness
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Resty Chess API is running",
		})
	})

	// Set up REST routes
	v1 := app.Group("/v1")
	v1.Get("/board", boardController.GetBoard)
	v1.Post("/move", boardController.MovePiece)
	v1.Post("/remove", boardController.RemovePiece)
	v1.Post("/reset", boardController.ResetBoard)
	v1.Get("/moves/:square", boardController.GetLegalMoves)
	v1.Get("/history", boardController.GetHistory)

	log.Fatal(app.Listen(cfg.ListenAddr))
}
