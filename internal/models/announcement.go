package models

import (
	"time"

	"github.com/google/uuid"
)

type Announcement struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string     `gorm:"size:255;not null" json:"title"`
	Body        string     `gorm:"type:text;not null" json:"body"`
	PublishedAt time.Time  `gorm:"not null;index" json:"publishedAt"`
	AuthorID    *uuid.UUID `gorm:"type:uuid;index" json:"-"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	Author *User `gorm:"foreignKey:AuthorID" json:"-"`
}

func (Announcement) TableName() string { return "website_announcements" }
