package models

import (
	"time"

	"github.com/google/uuid"
)

// BoardRole assigns a user to a board seat for a term. Role is "sb"
// (strategy board) or "tuz" (executive board).
type BoardRole struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"userId"`
	Name      string    `gorm:"size:255" json:"name"`
	Role      string    `gorm:"size:10" json:"role"`
	Year      int       `json:"year"`
	YearEnd   int       `json:"yearEnd"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (BoardRole) TableName() string { return "website_board_roles" }
