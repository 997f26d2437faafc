package middleware

import (
	"errors"

	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/amsa-mn/website-backend/internal/config"
	"github.com/amsa-mn/website-backend/internal/dto"
)

var errNoIdentity = errors.New("no authenticated identity on request")

// RequireAuth gates a route behind bearer-token verification. Missing,
// malformed, expired and forged tokens all produce the same generic 401.
func RequireAuth(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error:   true,
				Message: "Unauthorized: invalid or expired token",
			})
		},
	})
}

// CurrentUser returns the verified {id, role} claims RequireAuth attached to
// the request.
func CurrentUser(c *fiber.Ctx) (uuid.UUID, string, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return uuid.Nil, "", errNoIdentity
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, "", errNoIdentity
	}

	rawID, _ := claims["id"].(string)
	userID, err := uuid.Parse(rawID)
	if err != nil {
		return uuid.Nil, "", errNoIdentity
	}

	role, _ := claims["role"].(string)
	if role == "" {
		return uuid.Nil, "", errNoIdentity
	}

	return userID, role, nil
}
