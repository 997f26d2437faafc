package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/amsa-mn/website-backend/internal/dto"
	"github.com/amsa-mn/website-backend/internal/models"
	"github.com/amsa-mn/website-backend/internal/password"
	"github.com/amsa-mn/website-backend/internal/roles"
	"github.com/amsa-mn/website-backend/internal/sanitize"
	"github.com/amsa-mn/website-backend/internal/token"
)

var (
	// ErrRegistration is returned for every signup rejection that must not
	// reveal its cause, duplicate email included.
	ErrRegistration = errors.New("unable to complete registration")
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// the two are indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrPasswordMismatch   = errors.New("current password is incorrect")
)

type AuthService struct {
	db     *gorm.DB
	tokens *token.Issuer
	policy roles.Policy
}

func NewAuthService(db *gorm.DB, tokens *token.Issuer, policy roles.Policy) *AuthService {
	return &AuthService{db: db, tokens: tokens, policy: policy}
}

// NormalizeEmail lower-cases and trims an email into the canonical login key.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *AuthService) Signup(req *dto.SignupRequest) (*dto.AuthResponse, error) {
	email := NormalizeEmail(req.Email)

	var existing models.User
	if err := s.db.Select("id").Where("email = ?", email).First(&existing).Error; err == nil {
		slog.Info("signup rejected: email already registered", "action", "signup")
		return nil, ErrRegistration
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:        uuid.New(),
		Email:     email,
		Password:  hash,
		FirstName: sanitize.Text(req.FirstName),
		LastName:  sanitize.Text(req.LastName),
	}

	profile := models.MemberProfile{
		ID:            uuid.New(),
		UserID:        user.ID,
		PersonalEmail: sanitize.Text(req.PersonalEmail),
		Phone:         sanitize.Text(req.Phone),
		BirthDate:     parseBirthDate(req.BirthDate),
		Address1:      sanitize.Text(req.Address1),
		Address2:      sanitize.Text(req.Address2),
		City:          sanitize.Text(req.City),
		State:         sanitize.Text(req.State),
		Zip:           sanitize.Text(req.Zip),
		SchoolName:    sanitize.Text(req.SchoolName),
		SchoolCity:    sanitize.Text(req.SchoolCity),
		SchoolState:   sanitize.Text(req.SchoolState),
		Degree:        sanitize.Text(req.Degree),
		GradYear:      sanitize.Text(req.GradYear),
		SchoolYear:    sanitize.Text(req.SchoolYear),
		Major:         sanitize.Text(req.Major),
		SecondMajor:   sanitize.Text(req.SecondMajor),
		Facebook:      sanitize.Text(req.Facebook),
		Instagram:     sanitize.Text(req.Instagram),
		LinkedIn:      sanitize.Text(req.LinkedIn),
	}

	// User row and profile sub-record commit together or not at all.
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		return tx.Create(&profile).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	role := s.policy.Effective(user.Email, user.Level)
	tok, err := s.tokens.Issue(user.ID, role)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	slog.Info("new user signup", "user_id", user.ID.String(), "action", "signup")

	return &dto.AuthResponse{
		Message: "Signup successful",
		User: dto.UserSummary{
			ID:        user.ID,
			Email:     user.Email,
			Role:      role,
			FirstName: user.FirstName,
			LastName:  user.LastName,
		},
		Token: tok,
	}, nil
}

func (s *AuthService) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	email := NormalizeEmail(req.Email)

	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, ErrInvalidCredentials
	}

	if !password.Verify(req.Password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	role := s.policy.Effective(user.Email, user.Level)

	// Self-healing: a domain admin whose stored level predates the policy
	// gets the level persisted up, so the stored state converges.
	if s.policy.IsAdminDomain(user.Email) && user.Level < s.policy.AdminLevel {
		if err := s.db.Model(&user).Update("level", s.policy.AdminLevel).Error; err != nil {
			slog.Error("failed to persist role upgrade", "user_id", user.ID.String(), "error", err)
		}
	}

	tok, err := s.tokens.Issue(user.ID, role)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	slog.Info("user login", "user_id", user.ID.String(), "action", "login")

	return &dto.AuthResponse{
		Message: "Login successful",
		User: dto.UserSummary{
			ID:        user.ID,
			Email:     user.Email,
			Role:      role,
			FirstName: user.FirstName,
			LastName:  user.LastName,
		},
		Token: tok,
	}, nil
}

// Me returns the identity summary for the token subject. The role is derived
// again here so /auth/me and login never disagree.
func (s *AuthService) Me(userID uuid.UUID) (*dto.UserSummary, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, ErrUserNotFound
	}

	return &dto.UserSummary{
		ID:        user.ID,
		Email:     user.Email,
		Role:      s.policy.Effective(user.Email, user.Level),
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}, nil
}

func parseBirthDate(s string) *datatypes.Date {
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	d := datatypes.Date(t)
	return &d
}
