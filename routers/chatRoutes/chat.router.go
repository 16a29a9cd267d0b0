package chatRoutes

import (
	chatController "helpdesk/controllers/chat"
	chatValidator "helpdesk/validators/chat"

	"github.com/gofiber/fiber/v2"
)

func SetupChatRoutes(app *fiber.App, authRequired fiber.Handler, ctl *chatController.Controller) {
	chat := app.Group("/chat", authRequired)

	chat.Get("/:chamadoId/messages", ctl.ListMessages)
	chat.Post("/:chamadoId/messages", chatValidator.SendMessage(), ctl.SendMessage)
}
