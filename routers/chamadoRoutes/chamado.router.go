package chamadoRoutes

import (
	chamadoController "helpdesk/controllers/chamados"
	chamadoValidator "helpdesk/validators/chamados"

	"github.com/gofiber/fiber/v2"
)

func SetupChamadoRoutes(app *fiber.App, authRequired fiber.Handler, ctl *chamadoController.Controller) {
	chamados := app.Group("/chamados", authRequired)

	chamados.Get("/", ctl.Listar)
	chamados.Post("/", chamadoValidator.CriarChamado(), ctl.Criar)
	chamados.Post("/by-user", chamadoValidator.ByUser(), ctl.ListarPorUsuario)
	chamados.Put("/:id/close", ctl.Close)
	chamados.Put("/:id/reopen", ctl.Reopen)
}
