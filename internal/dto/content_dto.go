package dto

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/google/uuid"
)

// AuthorSummary is the author slice embedded in blog and announcement reads.
type AuthorSummary struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
}

type CreateBlogRequest struct {
	Title         string `json:"title"`
	Content       string `json:"content"`
	CoverImageURL string `json:"coverImageUrl"`
}

func (r CreateBlogRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required),
		validation.Field(&r.Content, validation.Required),
	)
}

type UpdateBlogRequest struct {
	Title         *string `json:"title"`
	Content       *string `json:"content"`
	CoverImageURL *string `json:"coverImageUrl"`
}

type BlogResponse struct {
	ID            uuid.UUID      `json:"id"`
	Title         string         `json:"title"`
	Slug          string         `json:"slug"`
	Content       string         `json:"content"`
	CoverImageURL string         `json:"coverImageUrl,omitempty"`
	CreatedAt     time.Time      `json:"createdAt"`
	Author        *AuthorSummary `json:"author,omitempty"`
}

type CreateAnnouncementRequest struct {
	Title       string     `json:"title"`
	Body        string     `json:"body"`
	PublishedAt *time.Time `json:"publishedAt"`
}

func (r CreateAnnouncementRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required),
		validation.Field(&r.Body, validation.Required),
	)
}

type UpdateAnnouncementRequest struct {
	Title       *string    `json:"title"`
	Body        *string    `json:"body"`
	PublishedAt *time.Time `json:"publishedAt"`
}

type AnnouncementResponse struct {
	ID          uuid.UUID      `json:"id"`
	Title       string         `json:"title"`
	Body        string         `json:"body"`
	PublishedAt time.Time      `json:"publishedAt"`
	CreatedAt   time.Time      `json:"createdAt"`
	Author      *AuthorSummary `json:"author,omitempty"`
}
