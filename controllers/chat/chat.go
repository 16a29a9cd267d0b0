package chatController

import (
	"errors"
	"log"

	"helpdesk/middleware"
	"helpdesk/store"
	chatValidator "helpdesk/validators/chat"

	"github.com/gofiber/fiber/v2"
)

type Controller struct {
	chats *store.ChatStore
}

func New(chats *store.ChatStore) *Controller {
	return &Controller{chats: chats}
}

// ListMessages returns the full conversation of a chamado, oldest first.
// The client polls this endpoint to refresh the chat view.
func (ctl *Controller) ListMessages(c *fiber.Ctx) error {
	chamadoID, err := c.ParamsInt("chamadoId")
	if err != nil || chamadoID <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid chamado id!", nil)
	}

	rows, err := ctl.chats.List(uint(chamadoID))
	if err != nil {
		log.Printf("Error listing chat messages: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch messages!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Messages fetched successfully!", rows)
}

// SendMessage appends a message to a chamado's conversation as the caller.
func (ctl *Controller) SendMessage(c *fiber.Ctx) error {
	id, ok := middleware.Identity(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	chamadoID, err := c.ParamsInt("chamadoId")
	if err != nil || chamadoID <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid chamado id!", nil)
	}

	reqData, ok := c.Locals("validatedSendMessage").(*chatValidator.SendMessageRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	newID, err := ctl.chats.Append(uint(chamadoID), id.UserID, reqData.Mensagem)
	if err != nil {
		if errors.Is(err, store.ErrInvalidMessage) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Mensagem vazia.", nil)
		}
		log.Printf("Error sending chat message: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to send message!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Message sent.", fiber.Map{
		"id": newID,
	})
}
