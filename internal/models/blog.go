package models

import (
	"time"

	"github.com/google/uuid"
)

type Blog struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Title         string     `gorm:"size:255;not null" json:"title"`
	Slug          string     `gorm:"size:255;not null;uniqueIndex" json:"slug"`
	Content       string     `gorm:"type:text;not null" json:"content"`
	CoverImageURL string     `gorm:"size:512" json:"coverImageUrl,omitempty"`
	AuthorID      *uuid.UUID `gorm:"type:uuid;index" json:"-"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`

	Author *User `gorm:"foreignKey:AuthorID" json:"-"`
}

func (Blog) TableName() string { return "website_blogs" }
