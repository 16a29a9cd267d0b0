package main

import (
	"log"

	"helpdesk/config"
	aiController "helpdesk/controllers/ai"
	authController "helpdesk/controllers/auth"
	chamadoController "helpdesk/controllers/chamados"
	chatController "helpdesk/controllers/chat"
	userController "helpdesk/controllers/users"
	"helpdesk/database"
	"helpdesk/middleware"
	"helpdesk/routers/aiRoutes"
	"helpdesk/routers/authRoutes"
	"helpdesk/routers/chamadoRoutes"
	"helpdesk/routers/chatRoutes"
	"helpdesk/routers/userRoutes"
	"helpdesk/store"
	"helpdesk/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Database setup failed: %v", err)
	}

	users := store.NewUserStore(db)
	tickets := store.NewTicketStore(db)
	chats := store.NewChatStore(db)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve the SPA build from the public folder
	app.Static("/", "./public")

	authRequired := middleware.RequireIdentity(cfg, users)

	authRoutes.SetupAuthRoutes(app, authController.New(cfg, users))
	chamadoRoutes.SetupChamadoRoutes(app, authRequired, chamadoController.New(tickets))
	chatRoutes.SetupChatRoutes(app, authRequired, chatController.New(chats))
	userRoutes.SetupUserRoutes(app, authRequired, userController.New(cfg, users))
	aiRoutes.SetupAiRoutes(app, aiController.New(utils.NewGeminiClient(cfg)))

	log.Printf("Server is running on port %s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
