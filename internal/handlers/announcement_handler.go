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

type AnnouncementHandler struct {
	announcementService *services.AnnouncementService
}

func NewAnnouncementHandler(announcementService *services.AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{announcementService: announcementService}
}

func (h *AnnouncementHandler) List(c *fiber.Ctx) error {
	announcements, err := h.announcementService.List()
	if err != nil {
		slog.Error("list announcements failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load announcements",
		})
	}
	return c.JSON(fiber.Map{"announcements": announcements})
}

func (h *AnnouncementHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid announcement ID",
		})
	}

	announcement, err := h.announcementService.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrAnnouncementNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Not found",
			})
		}
		slog.Error("get announcement failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load announcement",
		})
	}
	return c.JSON(fiber.Map{"announcement": announcement})
}

func (h *AnnouncementHandler) Create(c *fiber.Ctx) error {
	userID, _, err := middleware.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.CreateAnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	announcement, err := h.announcementService.Create(userID, &req)
	if err != nil {
		slog.Error("create announcement failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create announcement",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"announcement": announcement})
}

func (h *AnnouncementHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid announcement ID",
		})
	}

	var req dto.UpdateAnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	announcement, err := h.announcementService.Update(id, &req)
	if err != nil {
		if errors.Is(err, services.ErrAnnouncementNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Not found",
			})
		}
		slog.Error("update announcement failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update announcement",
		})
	}

	return c.JSON(fiber.Map{"announcement": announcement})
}

func (h *AnnouncementHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid announcement ID",
		})
	}

	if err := h.announcementService.Delete(id); err != nil {
		if errors.Is(err, services.ErrAnnouncementNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Not found",
			})
		}
		slog.Error("delete announcement failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete announcement",
		})
	}

	return c.JSON(fiber.Map{"ok": true})
}
