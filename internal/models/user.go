package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// User holds the credential core: normalized email as the login key, a bcrypt
// hash that is never serialized, and the numeric level the role policy derives
// the effective role from. Everything else lives on MemberProfile.
type User struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email             string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Password          string    `gorm:"not null" json:"-"`
	FirstName         string    `gorm:"size:100" json:"firstName"`
	LastName          string    `gorm:"size:100" json:"lastName"`
	Level             int       `gorm:"default:0" json:"-"`
	EmailVerified     bool      `gorm:"default:false" json:"-"`
	VerificationToken *string   `gorm:"size:255" json:"-"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`

	Profile *MemberProfile `gorm:"foreignKey:UserID" json:"-"`
}

// Prefixed so the table can live in a schema shared with other deployments.
func (User) TableName() string { return "website_users" }

// MemberProfile is the 1:1 free-text sub-record created in the same
// transaction as the user row.
type MemberProfile struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"-"`
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"-"`

	PersonalEmail string          `gorm:"size:255" json:"personalEmail,omitempty"`
	Phone         string          `gorm:"size:50" json:"phone,omitempty"`
	BirthDate     *datatypes.Date `json:"birthDate,omitempty"`
	Address1      string          `gorm:"size:255" json:"address1,omitempty"`
	Address2      string          `gorm:"size:255" json:"address2,omitempty"`
	City          string          `gorm:"size:100" json:"city,omitempty"`
	State         string          `gorm:"size:100" json:"state,omitempty"`
	Zip           string          `gorm:"size:20" json:"zip,omitempty"`

	SchoolName  string `gorm:"size:255" json:"schoolName,omitempty"`
	SchoolCity  string `gorm:"size:100" json:"schoolCity,omitempty"`
	SchoolState string `gorm:"size:100" json:"schoolState,omitempty"`
	Degree      string `gorm:"size:100" json:"degree,omitempty"`
	GradYear    string `gorm:"size:10" json:"gradYear,omitempty"`
	SchoolYear  string `gorm:"size:50" json:"schoolYear,omitempty"`
	Major       string `gorm:"size:100" json:"major,omitempty"`
	SecondMajor string `gorm:"size:100" json:"secondMajor,omitempty"`

	Facebook   string `gorm:"size:255" json:"facebook,omitempty"`
	Instagram  string `gorm:"size:255" json:"instagram,omitempty"`
	LinkedIn   string `gorm:"size:255" json:"linkedin,omitempty"`
	Bio        string `gorm:"type:text" json:"bio,omitempty"`
	ProfilePic string `gorm:"size:512" json:"profilePic,omitempty"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (MemberProfile) TableName() string { return "website_member_profiles" }
