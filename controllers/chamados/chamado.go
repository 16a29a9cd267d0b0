package chamadoController

import (
	"errors"
	"log"

	"helpdesk/middleware"
	"helpdesk/policy"
	"helpdesk/store"
	chamadoValidator "helpdesk/validators/chamados"

	"github.com/gofiber/fiber/v2"
)

type Controller struct {
	tickets *store.TicketStore
}

func New(tickets *store.TicketStore) *Controller {
	return &Controller{tickets: tickets}
}

// Listar returns the chamados visible to the caller: usuario sees only their
// own, suporte sees its prioridade band, admin sees everything.
func (ctl *Controller) Listar(c *fiber.Ctx) error {
	id, ok := middleware.Identity(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	filter, err := policy.ScopeFilter(id, nil)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied!", nil)
	}

	rows, err := ctl.tickets.ListFiltered(filter)
	if err != nil {
		log.Printf("Error listing chamados: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch chamados!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Chamados fetched successfully!", rows)
}

// Criar opens a new chamado owned by the caller.
func (ctl *Controller) Criar(c *fiber.Ctx) error {
	id, ok := middleware.Identity(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedCriarChamado").(*chamadoValidator.CriarChamadoRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	newID, err := ctl.tickets.Create(reqData.Titulo, reqData.Motivo, reqData.Descricao, reqData.Prioridade, id.UserID)
	if err != nil {
		log.Printf("Error creating chamado: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create chamado!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Chamado criado", fiber.Map{
		"id": newID,
	})
}

// ListarPorUsuario lists chamados of a requested owner. The owner defaults to
// the caller; a usuario asking for someone else is refused outright.
func (ctl *Controller) ListarPorUsuario(c *fiber.Ctx) error {
	id, ok := middleware.Identity(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedByUser").(*chamadoValidator.ByUserRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	owner := reqData.UserID
	if owner == nil {
		owner = &id.UserID
	}

	filter, err := policy.ScopeFilter(id, owner)
	if err != nil {
		if errors.Is(err, policy.ErrForbidden) {
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch chamados!", nil)
	}

	rows, err := ctl.tickets.ListFiltered(filter)
	if err != nil {
		log.Printf("Error listing chamados by user: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch chamados!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Chamados fetched successfully!", rows)
}

// Close marks a chamado resolved. Closing an already-closed or unknown id is
// a no-op reported through the updated count.
func (ctl *Controller) Close(c *fiber.Ctx) error {
	return ctl.setResolvido(c, true)
}

// Reopen clears the resolved flag.
func (ctl *Controller) Reopen(c *fiber.Ctx) error {
	return ctl.setResolvido(c, false)
}

func (ctl *Controller) setResolvido(c *fiber.Ctx, resolvido bool) error {
	chamadoID, err := c.ParamsInt("id")
	if err != nil || chamadoID <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid chamado id!", nil)
	}

	updated, err := ctl.tickets.SetResolvido(uint(chamadoID), resolvido)
	if err != nil {
		log.Printf("Error updating chamado %d: %v", chamadoID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update chamado!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Chamado updated.", fiber.Map{
		"updated": updated,
	})
}
