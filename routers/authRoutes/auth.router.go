package authRoutes

import (
	authController "helpdesk/controllers/auth"
	authValidator "helpdesk/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App, ctl *authController.Controller) {
	auth := app.Group("/auth")

	auth.Post("/register", authValidator.Register(), ctl.Register)
	auth.Post("/login", authValidator.Login(), ctl.Login)
}
