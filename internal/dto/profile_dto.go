package dto

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/google/uuid"

	"github.com/amsa-mn/website-backend/internal/models"
)

// SelfProfile is what a user sees of their own record: everything except the
// secret fields.
type SelfProfile struct {
	ID            uuid.UUID             `json:"id"`
	Email         string                `json:"email"`
	Role          string                `json:"role"`
	FirstName     string                `json:"firstName"`
	LastName      string                `json:"lastName"`
	EmailVerified bool                  `json:"emailVerified"`
	Profile       *models.MemberProfile `json:"profile,omitempty"`
}

// PublicProfile is the reduced view shown to other users and anonymous
// callers. Contact, location and school-year fields are deliberately absent.
type PublicProfile struct {
	ID          uuid.UUID `json:"id"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	SchoolName  string    `json:"schoolName,omitempty"`
	Degree      string    `json:"degree,omitempty"`
	GradYear    string    `json:"gradYear,omitempty"`
	Major       string    `json:"major,omitempty"`
	SecondMajor string    `json:"secondMajor,omitempty"`
	Facebook    string    `json:"facebook,omitempty"`
	Instagram   string    `json:"instagram,omitempty"`
	LinkedIn    string    `json:"linkedin,omitempty"`
	Bio         string    `json:"bio,omitempty"`
	ProfilePic  string    `json:"profilePic,omitempty"`
}

// UpdateProfileRequest uses pointer fields for partial-update semantics: an
// omitted field stays untouched, an empty string clears the field.
type UpdateProfileRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`

	PersonalEmail *string `json:"personalEmail"`
	Phone         *string `json:"phone"`
	BirthDate     *string `json:"birthDate"`
	Address1      *string `json:"address1"`
	Address2      *string `json:"address2"`
	City          *string `json:"city"`
	State         *string `json:"state"`
	Zip           *string `json:"zip"`

	SchoolName  *string `json:"schoolName"`
	SchoolCity  *string `json:"schoolCity"`
	SchoolState *string `json:"schoolState"`
	Degree      *string `json:"degree"`
	GradYear    *string `json:"gradYear"`
	SchoolYear  *string `json:"schoolYear"`
	Major       *string `json:"major"`
	SecondMajor *string `json:"secondMajor"`

	Facebook   *string `json:"facebook"`
	Instagram  *string `json:"instagram"`
	LinkedIn   *string `json:"linkedin"`
	Bio        *string `json:"bio"`
	ProfilePic *string `json:"profilePic"`
}

func (r UpdateProfileRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.BirthDate, validation.Date("2006-01-02")),
	)
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

func (r ChangePasswordRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.CurrentPassword, validation.Required),
		validation.Field(&r.NewPassword,
			validation.Required,
			validation.Length(8, 72),
			validation.Match(hasLower).Error("must contain a lowercase letter"),
			validation.Match(hasUpper).Error("must contain an uppercase letter"),
			validation.Match(hasDigit).Error("must contain a digit"),
			validation.Match(hasSpecial).Error("must contain a special character"),
		),
	)
}

// MemberCard is the user slice shown on the roster.
type MemberCard struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	SchoolName string `json:"schoolName,omitempty"`
	ProfilePic string `json:"profilePic,omitempty"`
	LinkedIn   string `json:"linkedin,omitempty"`
}

type BoardMember struct {
	UserID  uuid.UUID  `json:"userId"`
	Name    string     `json:"name"`
	Role    string     `json:"role"`
	Year    int        `json:"year"`
	YearEnd int        `json:"yearEnd"`
	User    MemberCard `json:"user"`
}

// MembersResponse groups board seats: all executive terms keyed by year, the
// strategy board, and the current-year executive board.
type MembersResponse struct {
	Tuz        map[int][]BoardMember `json:"tuz"`
	Sb         []BoardMember         `json:"sb"`
	CurrentTuz []BoardMember         `json:"current_tuz"`
}
