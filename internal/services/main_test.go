package services

import (
	"fmt"
	"testing"
	"time"

	"gameconnect_backend/database"
	"gameconnect_backend/internal/auth"
	"gameconnect_backend/internal/config"
	"gameconnect_backend/internal/models"
	"gameconnect_backend/internal/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB открывает изолированную in-memory БД со всеми миграциями
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := &config.Config{}
	cfg.Database.Driver = "sqlite"
	cfg.Database.DSN = fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())

	db, err := database.Connect(cfg)
	require.NoError(t, err, "не удалось открыть тестовую БД")
	require.NoError(t, database.AutoMigrate(db), "не удалось мигрировать тестовую БД")
	return db
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Server.Env = "test"
	cfg.JWT.Secret = "unit_test_secret_123"
	cfg.JWT.TTL = 60
	return cfg
}

// seedUser создает игрока с заданным паролем
func seedUser(t *testing.T, db *gorm.DB, username, password string, mutate func(*models.User)) *models.User {
	t.Helper()

	hash, err := auth.HashPassword(password)
	require.NoError(t, err)

	user := &models.User{
		Username:     username,
		Email:        fmt.Sprintf("%s_%d@test.com", username, time.Now().UnixNano()),
		PasswordHash: hash,
		Name:         "Test " + username,
		IsActive:     true,
	}
	if mutate != nil {
		mutate(user)
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// seedAdmin создает админа с заданным паролем
func seedAdmin(t *testing.T, db *gorm.DB, username, password string, approved bool) *models.Admin {
	t.Helper()

	hash, err := auth.HashPassword(password)
	require.NoError(t, err)

	admin := &models.Admin{
		Username:     username,
		Email:        fmt.Sprintf("%s_%d@test.com", username, time.Now().UnixNano()),
		PasswordHash: hash,
		Name:         "Admin " + username,
		IsApproved:   approved,
	}
	require.NoError(t, db.Create(admin).Error)
	return admin
}

func newRepos() (
	repositories.UserRepository,
	repositories.AdminRepository,
	repositories.FollowRepository,
	repositories.ProfileViewRepository,
	repositories.ListingRepository,
	repositories.SearchHistoryRepository,
) {
	return repositories.NewUserRepository(),
		repositories.NewAdminRepository(),
		repositories.NewFollowRepository(),
		repositories.NewProfileViewRepository(),
		repositories.NewListingRepository(),
		repositories.NewSearchHistoryRepository()
}
