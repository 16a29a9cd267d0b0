package chatValidator

import (
	"strings"

	"helpdesk/middleware"

	"github.com/gofiber/fiber/v2"
)

// SendMessageRequest is the validated chat message body.
type SendMessageRequest struct {
	Mensagem string `json:"mensagem"`
}

// SendMessage validator middleware
func SendMessage() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SendMessageRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Mensagem) == "" {
			errors["mensagem"] = "Mensagem is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSendMessage", reqData)
		return c.Next()
	}
}
