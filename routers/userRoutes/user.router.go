package userRoutes

import (
	userController "helpdesk/controllers/users"
	"helpdesk/middleware"
	userValidator "helpdesk/validators/users"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App, authRequired fiber.Handler, ctl *userController.Controller) {
	users := app.Group("/users", authRequired)

	// Self-service profile update; everything else is admin-only.
	users.Put("/me", userValidator.UpdateMe(), ctl.UpdateMe)

	users.Get("/", middleware.RequireAdmin(), ctl.List)
	users.Post("/", middleware.RequireAdmin(), userValidator.CreateUser(), ctl.Create)
	users.Put("/:id", middleware.RequireAdmin(), userValidator.UpdateUser(), ctl.Update)
	users.Delete("/:id", middleware.RequireAdmin(), ctl.Delete)
}
