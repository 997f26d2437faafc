package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/amsa-mn/website-backend/internal/dto"
)

// RequireRole rejects authenticated requests whose role claim is not exactly
// the expected string. The check is literal, not tiered: a hypothetical
// "super-admin" role would not pass a RequireRole("admin") gate.
func RequireRole(expected string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		_, role, err := CurrentUser(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error:   true,
				Message: "Unauthorized",
			})
		}
		if role != expected {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error:   true,
				Message: "Forbidden",
			})
		}
		return c.Next()
	}
}
