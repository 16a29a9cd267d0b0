package userValidator

import (
	"regexp"
	"strings"

	"helpdesk/middleware"
	"helpdesk/models"

	"github.com/gofiber/fiber/v2"
)

func isValidEmail(email string) bool {
	re := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return re.MatchString(email)
}

func stripCpf(cpf string) string {
	return strings.NewReplacer(".", "", "-", "").Replace(strings.TrimSpace(cpf))
}

// CreateUserRequest is the validated admin POST /users body.
type CreateUserRequest struct {
	Cpf   string `json:"cpf"`
	Nome  string `json:"nome"`
	Email string `json:"email"`
	Senha string `json:"senha"`
	Cargo string `json:"cargo"`
	Nivel *int   `json:"nivel"`
}

// UpdateUserRequest is the validated admin PUT /users/:id body. Nil fields
// are left untouched.
type UpdateUserRequest struct {
	Cpf   *string `json:"cpf"`
	Nome  *string `json:"nome"`
	Email *string `json:"email"`
	Senha *string `json:"senha"`
	Cargo *string `json:"cargo"`
	Nivel *int    `json:"nivel"`
}

// UpdateMeRequest is the validated PUT /users/me body.
type UpdateMeRequest struct {
	Nome  *string `json:"nome"`
	Email *string `json:"email"`
	Senha *string `json:"senha"`
}

// CreateUser validator middleware
func CreateUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateUserRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Nome = strings.TrimSpace(reqData.Nome)
		if reqData.Nome == "" {
			errors["nome"] = "Nome is required!"
		}

		reqData.Email = strings.TrimSpace(reqData.Email)
		if reqData.Email == "" || !isValidEmail(reqData.Email) {
			errors["email"] = "Invalid email!"
		}

		if strings.TrimSpace(reqData.Senha) == "" {
			errors["senha"] = "Senha is required!"
		}

		if reqData.Cargo == "" {
			reqData.Cargo = string(models.RoleUsuario)
		} else if !models.ParseRole(reqData.Cargo).Valid() {
			errors["cargo"] = "Cargo must be usuario, suporte or admin!"
		}

		reqData.Cpf = stripCpf(reqData.Cpf)

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCreateUser", reqData)
		return c.Next()
	}
}

// UpdateUser validator middleware
func UpdateUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateUserRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Cpf != nil {
			*reqData.Cpf = stripCpf(*reqData.Cpf)
		}
		if reqData.Nome != nil {
			*reqData.Nome = strings.TrimSpace(*reqData.Nome)
		}
		if reqData.Email != nil {
			*reqData.Email = strings.TrimSpace(*reqData.Email)
			if !isValidEmail(*reqData.Email) {
				errors["email"] = "Invalid email!"
			}
		}
		if reqData.Cargo != nil && !models.ParseRole(*reqData.Cargo).Valid() {
			errors["cargo"] = "Cargo must be usuario, suporte or admin!"
		}

		if reqData.Cpf == nil && reqData.Nome == nil && reqData.Email == nil &&
			reqData.Senha == nil && reqData.Cargo == nil && reqData.Nivel == nil {
			errors["body"] = "Nothing to update!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedUpdateUser", reqData)
		return c.Next()
	}
}

// UpdateMe validator middleware
func UpdateMe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateMeRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Nome != nil {
			*reqData.Nome = strings.TrimSpace(*reqData.Nome)
			if *reqData.Nome == "" {
				reqData.Nome = nil
			}
		}
		if reqData.Email != nil {
			*reqData.Email = strings.TrimSpace(*reqData.Email)
			if *reqData.Email == "" {
				reqData.Email = nil
			} else if !isValidEmail(*reqData.Email) {
				errors["email"] = "Invalid email!"
			}
		}
		if reqData.Senha != nil && *reqData.Senha == "" {
			reqData.Senha = nil
		}

		if reqData.Nome == nil && reqData.Email == nil && reqData.Senha == nil {
			errors["body"] = "Nothing to update!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedUpdateMe", reqData)
		return c.Next()
	}
}
