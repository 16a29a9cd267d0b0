package chamadoValidator

import (
	"strings"

	"helpdesk/middleware"

	"github.com/gofiber/fiber/v2"
)

// CriarChamadoRequest is the validated POST /chamados body.
type CriarChamadoRequest struct {
	Titulo     string  `json:"titulo"`
	Motivo     string  `json:"motivo"`
	Descricao  *string `json:"descricao"`
	Prioridade *int    `json:"prioridade"`
}

// ByUserRequest is the validated POST /chamados/by-user body.
type ByUserRequest struct {
	UserID *uint `json:"userId"`
}

// CriarChamado validator middleware
func CriarChamado() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CriarChamadoRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Titulo = strings.TrimSpace(reqData.Titulo)
		if reqData.Titulo == "" {
			errors["titulo"] = "Titulo is required!"
		}

		reqData.Motivo = strings.TrimSpace(reqData.Motivo)
		if reqData.Motivo == "" {
			errors["motivo"] = "Motivo is required!"
		}

		// Prioridade runs 1 (critical) to 4 (low); omitted means derive it
		// from the motivo later.
		if reqData.Prioridade != nil && (*reqData.Prioridade < 1 || *reqData.Prioridade > 4) {
			errors["prioridade"] = "Prioridade must be between 1 and 4!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCriarChamado", reqData)
		return c.Next()
	}
}

// ByUser validator middleware
func ByUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ByUserRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		c.Locals("validatedByUser", reqData)
		return c.Next()
	}
}
