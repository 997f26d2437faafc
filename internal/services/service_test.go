package services

import (
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/amsa-mn/website-backend/internal/dto"
	"github.com/amsa-mn/website-backend/internal/models"
	"github.com/amsa-mn/website-backend/internal/roles"
	"github.com/amsa-mn/website-backend/internal/token"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// One named in-memory database per test; a bare ":memory:" would give
	// every pooled connection its own database.
	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.MemberProfile{},
		&models.Blog{},
		&models.Announcement{},
		&models.BoardRole{},
	))
	return db
}

func testPolicy() roles.Policy {
	return roles.Policy{AdminDomain: "amsa.mn", AdminLevel: 10}
}

func testIssuer() *token.Issuer {
	return token.NewIssuer("test-secret", 7*24*time.Hour)
}

func newAuthService(t *testing.T) (*AuthService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewAuthService(db, testIssuer(), testPolicy()), db
}

func signupRequest(email string) *dto.SignupRequest {
	return &dto.SignupRequest{
		Email:     email,
		Password:  "Secret123!",
		FirstName: "A",
		LastName:  "B",
	}
}
