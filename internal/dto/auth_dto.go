package dto

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/google/uuid"
)

var (
	hasLower   = regexp.MustCompile(`[a-z]`)
	hasUpper   = regexp.MustCompile(`[A-Z]`)
	hasDigit   = regexp.MustCompile(`\d`)
	hasSpecial = regexp.MustCompile(`[@$!%*?&#^()_\-+=]`)
)

// SignupRequest carries the credential pair plus the full member-profile
// field set collected at registration.
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`

	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`

	PersonalEmail string `json:"personalEmail"`
	Phone         string `json:"phone"`
	BirthDate     string `json:"birthDate"`
	Address1      string `json:"address1"`
	Address2      string `json:"address2"`
	City          string `json:"city"`
	State         string `json:"state"`
	Zip           string `json:"zip"`

	SchoolName  string `json:"schoolName"`
	SchoolCity  string `json:"schoolCity"`
	SchoolState string `json:"schoolState"`
	Degree      string `json:"degree"`
	GradYear    string `json:"gradYear"`
	SchoolYear  string `json:"schoolYear"`
	Major       string `json:"major"`
	SecondMajor string `json:"secondMajor"`

	Facebook  string `json:"facebook"`
	Instagram string `json:"instagram"`
	LinkedIn  string `json:"linkedin"`
}

func (r SignupRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password,
			validation.Required,
			validation.Length(8, 72),
			validation.Match(hasLower).Error("must contain a lowercase letter"),
			validation.Match(hasUpper).Error("must contain an uppercase letter"),
			validation.Match(hasDigit).Error("must contain a digit"),
			validation.Match(hasSpecial).Error("must contain a special character"),
		),
		validation.Field(&r.FirstName, validation.Required),
		validation.Field(&r.LastName, validation.Required),
		validation.Field(&r.BirthDate, validation.Date("2006-01-02")),
	)
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required),
	)
}

// UserSummary is the identity slice returned by signup, login and /auth/me.
// Role is always the derived effective role, never the stored level.
type UserSummary struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
}

type AuthResponse struct {
	Message string      `json:"message"`
	User    UserSummary `json:"user"`
	Token   string      `json:"token"`
}

type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}
