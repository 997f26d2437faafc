package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amsa-mn/website-backend/internal/dto"
	"github.com/amsa-mn/website-backend/internal/models"
	"github.com/amsa-mn/website-backend/internal/password"
)

func strPtr(s string) *string { return &s }

func TestGetProfileExcludesSecrets(t *testing.T) {
	authSvc, db := newAuthService(t)
	svc := NewProfileService(db, testPolicy())

	resp, err := authSvc.Signup(signupRequest("user@example.com"))
	require.NoError(t, err)

	profile, err := svc.Get(resp.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", profile.Email)
	assert.Equal(t, "member", profile.Role)
	assert.NotNil(t, profile.Profile)
}

func TestUpdateProfileEmptyPayloadIsNoOp(t *testing.T) {
	authSvc, db := newAuthService(t)
	svc := NewProfileService(db, testPolicy())

	req := signupRequest("user@example.com")
	req.SchoolName = "NUM"
	req.Phone = "99112233"
	resp, err := authSvc.Signup(req)
	require.NoError(t, err)

	var before models.User
	require.NoError(t, db.Preload("Profile").First(&before, "id = ?", resp.User.ID).Error)

	_, err = svc.Update(resp.User.ID, &dto.UpdateProfileRequest{})
	require.NoError(t, err)

	var after models.User
	require.NoError(t, db.Preload("Profile").First(&after, "id = ?", resp.User.ID).Error)

	assert.Equal(t, before.FirstName, after.FirstName)
	assert.Equal(t, before.LastName, after.LastName)
	assert.Equal(t, before.Email, after.Email)
	assert.Equal(t, before.Password, after.Password)
	assert.Equal(t, before.Profile.SchoolName, after.Profile.SchoolName)
	assert.Equal(t, before.Profile.Phone, after.Profile.Phone)
	assert.Equal(t, before.Profile.PersonalEmail, after.Profile.PersonalEmail)
}

func TestUpdateProfilePartialAndSanitized(t *testing.T) {
	authSvc, db := newAuthService(t)
	svc := NewProfileService(db, testPolicy())

	resp, err := authSvc.Signup(signupRequest("user@example.com"))
	require.NoError(t, err)

	updated, err := svc.Update(resp.User.ID, &dto.UpdateProfileRequest{
		FirstName: strPtr("<script>alert(1)</script>Bold"),
		Bio:       strPtr("<b>hello</b> world"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Bold", updated.FirstName)
	assert.Equal(t, "B", updated.LastName) // untouched
	require.NotNil(t, updated.Profile)
	assert.Equal(t, "hello world", updated.Profile.Bio)
}

func TestUpdateProfileClearsFieldWithEmptyString(t *testing.T) {
	authSvc, db := newAuthService(t)
	svc := NewProfileService(db, testPolicy())

	req := signupRequest("user@example.com")
	req.Phone = "99112233"
	resp, err := authSvc.Signup(req)
	require.NoError(t, err)

	updated, err := svc.Update(resp.User.ID, &dto.UpdateProfileRequest{Phone: strPtr("")})
	require.NoError(t, err)
	require.NotNil(t, updated.Profile)
	assert.Empty(t, updated.Profile.Phone)
}

func TestChangePasswordRequiresCurrent(t *testing.T) {
	authSvc, db := newAuthService(t)
	svc := NewProfileService(db, testPolicy())

	resp, err := authSvc.Signup(signupRequest("user@example.com"))
	require.NoError(t, err)

	err = svc.ChangePassword(resp.User.ID, "wrong", "NewSecret123!")
	assert.ErrorIs(t, err, ErrPasswordMismatch)

	require.NoError(t, svc.ChangePassword(resp.User.ID, "Secret123!", "NewSecret123!"))

	var user models.User
	require.NoError(t, db.First(&user, "id = ?", resp.User.ID).Error)
	assert.True(t, password.Verify("NewSecret123!", user.Password))
	assert.False(t, password.Verify("Secret123!", user.Password))
}

func TestDeleteAccount(t *testing.T) {
	authSvc, db := newAuthService(t)
	svc := NewProfileService(db, testPolicy())
	blogSvc := NewBlogService(db)

	resp, err := authSvc.Signup(signupRequest("user@example.com"))
	require.NoError(t, err)

	blog, err := blogSvc.Create(resp.User.ID, &dto.CreateBlogRequest{Title: "Hello", Content: "World"})
	require.NoError(t, err)

	require.NoError(t, db.Create(&models.BoardRole{
		ID: uuid.New(), UserID: resp.User.ID, Name: "A B", Role: "tuz", Year: 2026,
	}).Error)

	require.NoError(t, svc.Delete(resp.User.ID))

	var users, profiles, seats int64
	db.Model(&models.User{}).Count(&users)
	db.Model(&models.MemberProfile{}).Count(&profiles)
	db.Model(&models.BoardRole{}).Count(&seats)
	assert.Zero(t, users)
	assert.Zero(t, profiles)
	assert.Zero(t, seats)

	// Authored content stays with the author reference cleared.
	var stored models.Blog
	require.NoError(t, db.First(&stored, "id = ?", blog.ID).Error)
	assert.Nil(t, stored.AuthorID)

	assert.ErrorIs(t, svc.Delete(resp.User.ID), ErrUserNotFound)
}
