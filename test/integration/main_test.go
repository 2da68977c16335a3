package integration_test

import (
	"log"
	"os"
	"sync"
	"testing"

	"gameconnect_backend/internal/models"
	"gameconnect_backend/test/helpers"

	"gorm.io/gorm"
)

var (
	globalTestServer *helpers.TestServer
	serverOnce       sync.Once
	serverInitT      sync.Mutex
)

// GetTestServer возвращает тестовый сервер (создает при первом вызове)
func GetTestServer(t *testing.T) *helpers.TestServer {
	serverInitT.Lock()
	defer serverInitT.Unlock()
	serverOnce.Do(func() {
		log.Println("--- [GetTestServer] Initializing test server... ---")
		globalTestServer = helpers.NewTestServer(t)
		log.Println("--- [GetTestServer] Test server ready ---")
	})
	return globalTestServer
}

func TestMain(m *testing.M) {
	code := m.Run()

	if globalTestServer != nil {
		log.Println("--- [TestMain] Cleaning up... ---")
		globalTestServer.Close()
	}

	os.Exit(code)
}

// CreateTestCoachingAd создает тренерское объявление напрямую в БД
func CreateTestCoachingAd(t *testing.T, db *gorm.DB, createdBy, title, city, state string) models.CoachingAd {
	ad := models.CoachingAd{
		Title:       title,
		Description: "Test coaching description",
		City:        city,
		State:       state,
		CreatedBy:   createdBy,
	}
	if err := db.Create(&ad).Error; err != nil {
		t.Fatalf("Failed to create test coaching ad: %v", err)
	}
	return ad
}

// CreateTestProduct создает товар напрямую в БД
func CreateTestProduct(t *testing.T, db *gorm.DB, createdBy, name, category string, inStock bool) models.StoreProduct {
	product := models.StoreProduct{
		Name:      name,
		Category:  category,
		Price:     1500,
		InStock:   inStock,
		CreatedBy: createdBy,
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("Failed to create test product: %v", err)
	}
	return product
}
