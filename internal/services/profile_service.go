package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/amsa-mn/website-backend/internal/dto"
	"github.com/amsa-mn/website-backend/internal/models"
	"github.com/amsa-mn/website-backend/internal/password"
	"github.com/amsa-mn/website-backend/internal/roles"
	"github.com/amsa-mn/website-backend/internal/sanitize"
)

type ProfileService struct {
	db     *gorm.DB
	policy roles.Policy
}

func NewProfileService(db *gorm.DB, policy roles.Policy) *ProfileService {
	return &ProfileService{db: db, policy: policy}
}

func (s *ProfileService) Get(userID uuid.UUID) (*dto.SelfProfile, error) {
	var user models.User
	if err := s.db.Preload("Profile").First(&user, "id = ?", userID).Error; err != nil {
		return nil, ErrUserNotFound
	}
	return s.selfProfile(&user), nil
}

// Update applies only the fields present in the payload. Every free-text
// field goes through the same sanitizer as signup.
func (s *ProfileService) Update(userID uuid.UUID, req *dto.UpdateProfileRequest) (*dto.SelfProfile, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, ErrUserNotFound
	}

	var profile models.MemberProfile
	newProfile := false
	if err := s.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		profile = models.MemberProfile{ID: uuid.New(), UserID: userID}
		newProfile = true
	}

	if req.FirstName != nil {
		user.FirstName = sanitize.Text(*req.FirstName)
	}
	if req.LastName != nil {
		user.LastName = sanitize.Text(*req.LastName)
	}

	applyText := func(dst *string, src *string) {
		if src != nil {
			*dst = sanitize.Text(*src)
		}
	}
	applyText(&profile.PersonalEmail, req.PersonalEmail)
	applyText(&profile.Phone, req.Phone)
	applyText(&profile.Address1, req.Address1)
	applyText(&profile.Address2, req.Address2)
	applyText(&profile.City, req.City)
	applyText(&profile.State, req.State)
	applyText(&profile.Zip, req.Zip)
	applyText(&profile.SchoolName, req.SchoolName)
	applyText(&profile.SchoolCity, req.SchoolCity)
	applyText(&profile.SchoolState, req.SchoolState)
	applyText(&profile.Degree, req.Degree)
	applyText(&profile.GradYear, req.GradYear)
	applyText(&profile.SchoolYear, req.SchoolYear)
	applyText(&profile.Major, req.Major)
	applyText(&profile.SecondMajor, req.SecondMajor)
	applyText(&profile.Facebook, req.Facebook)
	applyText(&profile.Instagram, req.Instagram)
	applyText(&profile.LinkedIn, req.LinkedIn)
	applyText(&profile.Bio, req.Bio)
	applyText(&profile.ProfilePic, req.ProfilePic)

	if req.BirthDate != nil {
		if *req.BirthDate == "" {
			profile.BirthDate = nil
		} else if t, err := time.Parse("2006-01-02", *req.BirthDate); err == nil {
			d := datatypes.Date(t)
			profile.BirthDate = &d
		}
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&user).Error; err != nil {
			return err
		}
		if newProfile {
			return tx.Create(&profile).Error
		}
		return tx.Save(&profile).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	slog.Info("profile updated", "user_id", user.ID.String(), "action", "profile_update")

	user.Profile = &profile
	return s.selfProfile(&user), nil
}

// ChangePassword re-verifies the current password before accepting a new one.
func (s *ProfileService) ChangePassword(userID uuid.UUID, current, next string) error {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return ErrUserNotFound
	}

	if !password.Verify(current, user.Password) {
		return ErrPasswordMismatch
	}

	hash, err := password.Hash(next)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.db.Model(&user).Update("password", hash).Error; err != nil {
		return fmt.Errorf("failed to change password: %w", err)
	}

	slog.Info("password changed", "user_id", user.ID.String(), "action", "change_password")
	return nil
}

// Delete removes the account, its profile and its board seats in one
// transaction. Authored content stays, with the author reference cleared.
func (s *ProfileService) Delete(userID uuid.UUID) error {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return ErrUserNotFound
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Blog{}).Where("author_id = ?", userID).Update("author_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Announcement{}).Where("author_id = ?", userID).Update("author_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.BoardRole{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.MemberProfile{}).Error; err != nil {
			return err
		}
		return tx.Delete(&user).Error
	})
	if err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}

	slog.Info("account deleted", "user_id", userID.String(), "action", "account_delete")
	return nil
}

func (s *ProfileService) selfProfile(user *models.User) *dto.SelfProfile {
	return &dto.SelfProfile{
		ID:            user.ID,
		Email:         user.Email,
		Role:          s.policy.Effective(user.Email, user.Level),
		FirstName:     user.FirstName,
		LastName:      user.LastName,
		EmailVerified: user.EmailVerified,
		Profile:       user.Profile,
	}
}
