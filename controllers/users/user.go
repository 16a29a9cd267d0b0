package userController

import (
	"errors"
	"log"

	"helpdesk/config"
	"helpdesk/middleware"
	"helpdesk/models"
	"helpdesk/store"
	userValidator "helpdesk/validators/users"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Controller struct {
	cfg   *config.Config
	users *store.UserStore
}

func New(cfg *config.Config, users *store.UserStore) *Controller {
	return &Controller{cfg: cfg, users: users}
}

// List returns every account for the admin screen.
func (ctl *Controller) List(c *fiber.Ctx) error {
	users, err := ctl.users.ListAll()
	if err != nil {
		log.Printf("Error listing users: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch users!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Users fetched successfully!", users)
}

// Create adds an account with an admin-chosen cargo and nivel.
func (ctl *Controller) Create(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCreateUser").(*userValidator.CreateUserRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	exists, err := ctl.users.ExistsEmail(reqData.Email)
	if err != nil {
		log.Printf("Error checking email: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}
	if exists {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Senha), ctl.cfg.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	newUser := models.User{
		Cpf:   reqData.Cpf,
		Nome:  reqData.Nome,
		Email: reqData.Email,
		Senha: string(hashedPassword),
		Cargo: string(models.ParseRole(reqData.Cargo)),
		Nivel: reqData.Nivel,
	}
	if err := ctl.users.Create(&newUser); err != nil {
		log.Printf("Error saving user to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User created successfully!", fiber.Map{
		"id": newUser.ID,
	})
}

// Update applies a partial update to any account.
func (ctl *Controller) Update(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("id")
	if err != nil || userID <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user id!", nil)
	}

	reqData, ok := c.Locals("validatedUpdateUser").(*userValidator.UpdateUserRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	updates := map[string]interface{}{}
	if reqData.Cpf != nil {
		updates["cpf"] = *reqData.Cpf
	}
	if reqData.Nome != nil {
		updates["nome"] = *reqData.Nome
	}
	if reqData.Email != nil {
		updates["email"] = *reqData.Email
	}
	if reqData.Cargo != nil {
		updates["cargo"] = string(models.ParseRole(*reqData.Cargo))
	}
	if reqData.Nivel != nil {
		updates["nivel"] = *reqData.Nivel
	}
	if reqData.Senha != nil && *reqData.Senha != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*reqData.Senha), ctl.cfg.SaltRound)
		if err != nil {
			log.Printf("Error hashing password: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
		}
		updates["senha"] = string(hashedPassword)
	}

	updated, err := ctl.users.Update(uint(userID), updates)
	if err != nil {
		log.Printf("Error updating user %d: %v", userID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User updated.", fiber.Map{
		"updated": updated,
	})
}

// Delete removes an account for good. Deleting an unknown id reports zero.
func (ctl *Controller) Delete(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("id")
	if err != nil || userID <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user id!", nil)
	}

	deleted, err := ctl.users.Delete(uint(userID))
	if err != nil {
		log.Printf("Error deleting user %d: %v", userID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User deleted.", fiber.Map{
		"deleted": deleted,
	})
}

// UpdateMe lets the caller change their own nome, email or senha. The answer
// carries a fresh token so the email claim stays in sync.
func (ctl *Controller) UpdateMe(c *fiber.Ctx) error {
	id, ok := middleware.Identity(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedUpdateMe").(*userValidator.UpdateMeRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	updates := map[string]interface{}{}
	if reqData.Nome != nil {
		updates["nome"] = *reqData.Nome
	}
	if reqData.Email != nil {
		updates["email"] = *reqData.Email
	}
	if reqData.Senha != nil {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*reqData.Senha), ctl.cfg.SaltRound)
		if err != nil {
			log.Printf("Error hashing password: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
		}
		updates["senha"] = string(hashedPassword)
	}

	updated, err := ctl.users.Update(id.UserID, updates)
	if err != nil {
		log.Printf("Error updating profile of user %d: %v", id.UserID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update profile!", nil)
	}
	if updated == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	user, err := ctl.users.FindByID(id.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
		}
		log.Printf("Error reloading user %d: %v", id.UserID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update profile!", nil)
	}

	token, err := middleware.GenerateJWT(ctl.cfg, user)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile updated.", fiber.Map{
		"updated": updated,
		"user":    user,
		"token":   token,
	})
}
