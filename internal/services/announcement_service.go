package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/amsa-mn/website-backend/internal/dto"
	"github.com/amsa-mn/website-backend/internal/models"
	"github.com/amsa-mn/website-backend/internal/sanitize"
)

var ErrAnnouncementNotFound = errors.New("announcement not found")

type AnnouncementService struct {
	db *gorm.DB
}

func NewAnnouncementService(db *gorm.DB) *AnnouncementService {
	return &AnnouncementService{db: db}
}

func (s *AnnouncementService) List() ([]dto.AnnouncementResponse, error) {
	var announcements []models.Announcement
	err := s.db.Preload("Author").
		Order("published_at DESC").
		Order("created_at DESC").
		Find(&announcements).Error
	if err != nil {
		return nil, err
	}

	resp := make([]dto.AnnouncementResponse, 0, len(announcements))
	for i := range announcements {
		resp = append(resp, announcementResponse(&announcements[i]))
	}
	return resp, nil
}

func (s *AnnouncementService) Get(id uuid.UUID) (*dto.AnnouncementResponse, error) {
	var announcement models.Announcement
	if err := s.db.Preload("Author").First(&announcement, "id = ?", id).Error; err != nil {
		return nil, ErrAnnouncementNotFound
	}
	resp := announcementResponse(&announcement)
	return &resp, nil
}

func (s *AnnouncementService) Create(authorID uuid.UUID, req *dto.CreateAnnouncementRequest) (*dto.AnnouncementResponse, error) {
	publishedAt := time.Now()
	if req.PublishedAt != nil {
		publishedAt = *req.PublishedAt
	}

	announcement := models.Announcement{
		ID:          uuid.New(),
		Title:       sanitize.Text(req.Title),
		Body:        sanitize.Text(req.Body),
		PublishedAt: publishedAt,
		AuthorID:    &authorID,
	}
	if err := s.db.Create(&announcement).Error; err != nil {
		return nil, fmt.Errorf("failed to create announcement: %w", err)
	}

	resp := announcementResponse(&announcement)
	return &resp, nil
}

func (s *AnnouncementService) Update(id uuid.UUID, req *dto.UpdateAnnouncementRequest) (*dto.AnnouncementResponse, error) {
	var announcement models.Announcement
	if err := s.db.First(&announcement, "id = ?", id).Error; err != nil {
		return nil, ErrAnnouncementNotFound
	}

	if req.Title != nil && *req.Title != "" {
		announcement.Title = sanitize.Text(*req.Title)
	}
	if req.Body != nil && *req.Body != "" {
		announcement.Body = sanitize.Text(*req.Body)
	}
	if req.PublishedAt != nil {
		announcement.PublishedAt = *req.PublishedAt
	}

	if err := s.db.Save(&announcement).Error; err != nil {
		return nil, fmt.Errorf("failed to update announcement: %w", err)
	}

	resp := announcementResponse(&announcement)
	return &resp, nil
}

func (s *AnnouncementService) Delete(id uuid.UUID) error {
	var announcement models.Announcement
	if err := s.db.First(&announcement, "id = ?", id).Error; err != nil {
		return ErrAnnouncementNotFound
	}
	return s.db.Delete(&announcement).Error
}

func announcementResponse(a *models.Announcement) dto.AnnouncementResponse {
	resp := dto.AnnouncementResponse{
		ID:          a.ID,
		Title:       a.Title,
		Body:        a.Body,
		PublishedAt: a.PublishedAt,
		CreatedAt:   a.CreatedAt,
	}
	if a.Author != nil {
		resp.Author = &dto.AuthorSummary{
			ID:        a.Author.ID,
			FirstName: a.Author.FirstName,
			LastName:  a.Author.LastName,
			Email:     a.Author.Email,
		}
	}
	return resp
}
