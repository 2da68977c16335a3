package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"gameconnect_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CreateUser создает пользователя с автоматическим хешированием пароля
func CreateUser(t *testing.T, db *gorm.DB, user *models.User) error {
	if user.PasswordHash != "" && !strings.HasPrefix(user.PasswordHash, "$2a$") {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.PasswordHash), bcrypt.DefaultCost)
		if err != nil {
			t.Fatalf("Не удалось хешировать пароль: %v", err)
		}
		user.PasswordHash = string(hashedPassword)
	}
	user.IsActive = true

	result := db.Create(user)
	if result.Error != nil {
		t.Logf("ОШИБКА: не удалось создать пользователя %s: %v", user.Username, result.Error)
		return result.Error
	}
	return nil
}

// CreateAdmin создает админа с автоматическим хешированием пароля
func CreateAdmin(t *testing.T, db *gorm.DB, admin *models.Admin) error {
	if admin.PasswordHash != "" && !strings.HasPrefix(admin.PasswordHash, "$2a$") {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(admin.PasswordHash), bcrypt.DefaultCost)
		if err != nil {
			t.Fatalf("Не удалось хешировать пароль: %v", err)
		}
		admin.PasswordHash = string(hashedPassword)
	}

	result := db.Create(admin)
	if result.Error != nil {
		t.Logf("ОШИБКА: не удалось создать админа %s: %v", admin.Username, result.Error)
		return result.Error
	}
	return nil
}

// Login логинит субъекта через API и возвращает access-токен
func Login(t *testing.T, ts *TestServer, username, password string) string {
	loginBody := map[string]interface{}{
		"username": username,
		"password": password,
	}

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", loginBody)
	assert.Equal(t, http.StatusOK, res.StatusCode, "Логин должен быть успешным. Ответ: "+bodyStr)

	var loginResponse struct {
		Token string `json:"access_token"`
	}
	err := json.Unmarshal([]byte(bodyStr), &loginResponse)
	assert.NoError(t, err, "Не удалось распарсить JSON")
	assert.NotEmpty(t, loginResponse.Token, "Токен не должен быть пустым")

	return loginResponse.Token
}

// CreateAndLoginPlayer создает игрока с уникальным username и логинит его
func CreateAndLoginPlayer(t *testing.T, ts *TestServer, city, state string, role models.CricketRole) (string, *models.User) {
	suffix := time.Now().UnixNano()
	user := &models.User{
		Username:     fmt.Sprintf("player_%d", suffix),
		Email:        fmt.Sprintf("player_%d@test.com", suffix),
		PasswordHash: "password123",
		Name:         "Test Player",
		City:         city,
		State:        state,
		CricketRole:  role,
		Gender:       models.GenderMale,
	}
	err := CreateUser(t, ts.DB, user)
	assert.NoError(t, err, "Создание тестового игрока не должно вызывать ошибку")

	token := Login(t, ts, user.Username, "password123")
	return token, user
}

// CreateAndLoginOwner создает владельца платформы и логинит его
func CreateAndLoginOwner(t *testing.T, ts *TestServer) (string, *models.User) {
	suffix := time.Now().UnixNano()
	owner := &models.User{
		Username:     fmt.Sprintf("owner_%d", suffix),
		Email:        fmt.Sprintf("owner_%d@test.com", suffix),
		PasswordHash: "ownerpass123",
		Name:         "Platform Owner",
		IsOwner:      true,
	}
	err := CreateUser(t, ts.DB, owner)
	assert.NoError(t, err, "Создание владельца не должно вызывать ошибку")

	token := Login(t, ts, owner.Username, "ownerpass123")
	return token, owner
}

// CreateAndLoginAdmin создает одобренного админа и логинит его
func CreateAndLoginAdmin(t *testing.T, ts *TestServer) (string, *models.Admin) {
	suffix := time.Now().UnixNano()
	admin := &models.Admin{
		Username:     fmt.Sprintf("admin_%d", suffix),
		Email:        fmt.Sprintf("admin_%d@test.com", suffix),
		PasswordHash: "adminpass123",
		Name:         "Test Admin",
		IsApproved:   true,
	}
	err := CreateAdmin(t, ts.DB, admin)
	assert.NoError(t, err, "Создание админа не должно вызывать ошибку")

	token := Login(t, ts, admin.Username, "adminpass123")
	return token, admin
}
