package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"

	"github.com/amsa-mn/website-backend/internal/dto"
	"github.com/amsa-mn/website-backend/internal/models"
	"github.com/amsa-mn/website-backend/internal/sanitize"
)

var (
	ErrBlogNotFound = errors.New("blog not found")
	// ErrSlugTaken signals a title whose slug collides with another post.
	ErrSlugTaken = errors.New("another blog already has this title")
)

type BlogService struct {
	db *gorm.DB
}

func NewBlogService(db *gorm.DB) *BlogService {
	return &BlogService{db: db}
}

func (s *BlogService) List() ([]dto.BlogResponse, error) {
	var blogs []models.Blog
	if err := s.db.Preload("Author").Order("created_at DESC").Find(&blogs).Error; err != nil {
		return nil, err
	}

	resp := make([]dto.BlogResponse, 0, len(blogs))
	for i := range blogs {
		resp = append(resp, blogResponse(&blogs[i]))
	}
	return resp, nil
}

func (s *BlogService) GetBySlug(slugStr string) (*dto.BlogResponse, error) {
	var blog models.Blog
	if err := s.db.Preload("Author").Where("slug = ?", slugStr).First(&blog).Error; err != nil {
		return nil, ErrBlogNotFound
	}
	resp := blogResponse(&blog)
	return &resp, nil
}

func (s *BlogService) Create(authorID uuid.UUID, req *dto.CreateBlogRequest) (*dto.BlogResponse, error) {
	title := sanitize.Text(req.Title)
	slugStr := slug.Make(title)

	var count int64
	if err := s.db.Model(&models.Blog{}).Where("slug = ?", slugStr).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrSlugTaken
	}

	blog := models.Blog{
		ID:            uuid.New(),
		Title:         title,
		Slug:          slugStr,
		Content:       sanitize.Text(req.Content),
		CoverImageURL: sanitize.Text(req.CoverImageURL),
		AuthorID:      &authorID,
	}
	if err := s.db.Create(&blog).Error; err != nil {
		return nil, fmt.Errorf("failed to create blog: %w", err)
	}

	resp := blogResponse(&blog)
	return &resp, nil
}

func (s *BlogService) Update(id uuid.UUID, req *dto.UpdateBlogRequest) (*dto.BlogResponse, error) {
	var blog models.Blog
	if err := s.db.First(&blog, "id = ?", id).Error; err != nil {
		return nil, ErrBlogNotFound
	}

	if req.Title != nil && *req.Title != "" {
		title := sanitize.Text(*req.Title)
		slugStr := slug.Make(title)

		var count int64
		if err := s.db.Model(&models.Blog{}).Where("slug = ? AND id <> ?", slugStr, blog.ID).Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrSlugTaken
		}
		blog.Title = title
		blog.Slug = slugStr
	}
	if req.Content != nil && *req.Content != "" {
		blog.Content = sanitize.Text(*req.Content)
	}
	if req.CoverImageURL != nil {
		blog.CoverImageURL = sanitize.Text(*req.CoverImageURL)
	}

	if err := s.db.Save(&blog).Error; err != nil {
		return nil, fmt.Errorf("failed to update blog: %w", err)
	}

	resp := blogResponse(&blog)
	return &resp, nil
}

func (s *BlogService) Delete(id uuid.UUID) error {
	var blog models.Blog
	if err := s.db.First(&blog, "id = ?", id).Error; err != nil {
		return ErrBlogNotFound
	}
	return s.db.Delete(&blog).Error
}

func blogResponse(blog *models.Blog) dto.BlogResponse {
	resp := dto.BlogResponse{
		ID:            blog.ID,
		Title:         blog.Title,
		Slug:          blog.Slug,
		Content:       blog.Content,
		CoverImageURL: blog.CoverImageURL,
		CreatedAt:     blog.CreatedAt,
	}
	if blog.Author != nil {
		resp.Author = &dto.AuthorSummary{
			ID:        blog.Author.ID,
			FirstName: blog.Author.FirstName,
			LastName:  blog.Author.LastName,
			Email:     blog.Author.Email,
		}
	}
	return resp
}
