package aiRoutes

import (
	aiController "helpdesk/controllers/ai"

	"github.com/gofiber/fiber/v2"
)

func SetupAiRoutes(app *fiber.App, ctl *aiController.Controller) {
	ai := app.Group("/ai")

	// Anonymous on purpose: the opinion is generated before the chamado is
	// persisted, during the open-ticket flow.
	ai.Post("/chamado/opiniao", ctl.ChamadoOpiniao)
}
