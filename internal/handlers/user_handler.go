package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/amsa-mn/website-backend/internal/dto"
	"github.com/amsa-mn/website-backend/internal/middleware"
	"github.com/amsa-mn/website-backend/internal/services"
)

type UserHandler struct {
	userService    *services.UserService
	profileService *services.ProfileService
}

func NewUserHandler(userService *services.UserService, profileService *services.ProfileService) *UserHandler {
	return &UserHandler{userService: userService, profileService: profileService}
}

func (h *UserHandler) Members(c *fiber.Ctx) error {
	members, err := h.userService.Members()
	if err != nil {
		slog.Error("get members failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load members",
		})
	}
	return c.JSON(members)
}

// PublicProfile serves the anonymous view of a user.
func (h *UserHandler) PublicProfile(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid user ID",
		})
	}

	profile, err := h.userService.PublicProfile(userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "User not found",
			})
		}
		slog.Error("get public profile failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load profile",
		})
	}

	return c.JSON(profile)
}

// Profile serves an authenticated view of a user: the full non-secret record
// for the viewer's own id, the reduced public view for anyone else.
func (h *UserHandler) Profile(c *fiber.Ctx) error {
	viewerID, _, err := middleware.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid user ID",
		})
	}

	if viewerID == userID {
		profile, err := h.profileService.Get(userID)
		if err != nil {
			return h.profileError(c, err)
		}
		return c.JSON(profile)
	}

	profile, err := h.userService.PublicProfile(userID)
	if err != nil {
		return h.profileError(c, err)
	}
	return c.JSON(profile)
}

func (h *UserHandler) profileError(c *fiber.Ctx, err error) error {
	if errors.Is(err, services.ErrUserNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "User not found",
		})
	}
	slog.Error("get user profile failed", "error", err)
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error: true, Message: "Failed to load profile",
	})
}
