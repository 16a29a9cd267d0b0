package middleware

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"helpdesk/config"
	"helpdesk/models"
	"helpdesk/policy"
	"helpdesk/store"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
)

const identityKey = "identity"

// GenerateJWT generates a signed token for the user
func GenerateJWT(cfg *config.Config, user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"userId": user.ID,
		"email":  user.Email,
		"role":   user.Cargo,
		"iat":    time.Now().Unix(),
		"exp":    time.Now().Add(24 * time.Hour).Unix(), // expiry 24h
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWTKey))
}

// RequireIdentity checks the bearer token and resolves the caller into a
// policy.Identity stored in the request context. The user row is loaded on
// every request so cargo and nivel reflect the database, not stale claims.
func RequireIdentity(cfg *config.Config, users *store.UserStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Missing or invalid Authorization header", nil)
		}

		// The token should be prefixed with "Bearer "
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid Authorization header format", nil)
		}
		tokenString := authHeader[len("Bearer "):]

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(cfg.JWTKey), nil
		})
		if err != nil || !token.Valid {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid or expired token", nil)
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid token payload", nil)
		}

		// Load the user behind the token: by id when the claim carries one,
		// by email otherwise (tokens from older releases lack userId).
		var user *models.User
		if idClaim, ok := claims["userId"].(float64); ok && idClaim > 0 {
			user, err = users.FindByID(uint(idClaim))
		} else if email, ok := claims["email"].(string); ok && email != "" {
			user, err = users.FindByEmail(email)
		} else {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid token payload", nil)
		}
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
			}
			return JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to resolve user!", nil)
		}

		nivel := 0
		if user.Nivel != nil {
			nivel = *user.Nivel
		}
		c.Locals(identityKey, policy.Identity{
			UserID: user.ID,
			Role:   models.ParseRole(user.Cargo),
			Nivel:  nivel,
		})
		return c.Next()
	}
}

// Identity returns the resolved caller set by RequireIdentity.
func Identity(c *fiber.Ctx) (policy.Identity, bool) {
	id, ok := c.Locals(identityKey).(policy.Identity)
	return id, ok
}

// RequireAdmin gates a route to admin callers. Must run after RequireIdentity.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := Identity(c)
		if !ok {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
		}
		if id.Role != models.RoleAdmin {
			return JsonResponse(c, fiber.StatusForbidden, false, "Admin role required!", nil)
		}
		return c.Next()
	}
}
