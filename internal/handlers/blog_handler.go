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

type BlogHandler struct {
	blogService *services.BlogService
}

func NewBlogHandler(blogService *services.BlogService) *BlogHandler {
	return &BlogHandler{blogService: blogService}
}

func (h *BlogHandler) List(c *fiber.Ctx) error {
	blogs, err := h.blogService.List()
	if err != nil {
		slog.Error("list blogs failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load blogs",
		})
	}
	return c.JSON(fiber.Map{"blogs": blogs})
}

func (h *BlogHandler) GetBySlug(c *fiber.Ctx) error {
	blog, err := h.blogService.GetBySlug(c.Params("slug"))
	if err != nil {
		if errors.Is(err, services.ErrBlogNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Not found",
			})
		}
		slog.Error("get blog failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load blog",
		})
	}
	return c.JSON(fiber.Map{"blog": blog})
}

func (h *BlogHandler) Create(c *fiber.Ctx) error {
	userID, _, err := middleware.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.CreateBlogRequest
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

	blog, err := h.blogService.Create(userID, &req)
	if err != nil {
		if errors.Is(err, services.ErrSlugTaken) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: "A blog with this title already exists",
			})
		}
		slog.Error("create blog failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create blog",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"blog": blog})
}

func (h *BlogHandler) Update(c *fiber.Ctx) error {
	blogID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid blog ID",
		})
	}

	var req dto.UpdateBlogRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	blog, err := h.blogService.Update(blogID, &req)
	if err != nil {
		if errors.Is(err, services.ErrBlogNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Not found",
			})
		}
		if errors.Is(err, services.ErrSlugTaken) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: "Another blog already has this title",
			})
		}
		slog.Error("update blog failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update blog",
		})
	}

	return c.JSON(fiber.Map{"blog": blog})
}

func (h *BlogHandler) Delete(c *fiber.Ctx) error {
	blogID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid blog ID",
		})
	}

	if err := h.blogService.Delete(blogID); err != nil {
		if errors.Is(err, services.ErrBlogNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Not found",
			})
		}
		slog.Error("delete blog failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete blog",
		})
	}

	return c.JSON(fiber.Map{"ok": true})
}
