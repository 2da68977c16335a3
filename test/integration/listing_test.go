package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"gameconnect_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAdminCreatesCoachingAd - админ создает объявление, оно видно публично
func TestAdminCreatesCoachingAd(t *testing.T) {
	ts := GetTestServer(t)

	adminToken, _ := helpers.CreateAndLoginAdmin(t, ts)

	createBody := map[string]interface{}{
		"title":        "Pace bowling masterclass",
		"description":  "Advanced seam and swing",
		"city":         "Bangalore",
		"state":        "Karnataka",
		"contact_info": "+91-900000001",
		"coupon_code":  "PACE10",
		"price":        2500.0,
	}
	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/admin/coaching", adminToken, createBody)
	assert.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)

	// Публичный каталог находит объявление без токена
	res, bodyStr = ts.SendRequest(t, "GET", "/api/v1/coaching?search=masterclass", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "Pace bowling masterclass")
	assert.Contains(t, bodyStr, `"search_performed":true`)

	// Location сопоставляется с городом
	res, bodyStr = ts.SendRequest(t, "GET", "/api/v1/coaching?location=bangalore", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "Pace bowling masterclass")

	// Без фильтров каталог не раскрывается
	res, bodyStr = ts.SendRequest(t, "GET", "/api/v1/coaching", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, `"search_performed":false`)
	assert.NotContains(t, bodyStr, "Pace bowling masterclass")
}

// TestListingOwnershipScoping - админ не управляет чужими записями,
// владелец управляет любыми
func TestListingOwnershipScoping(t *testing.T) {
	ts := GetTestServer(t)

	_, author := helpers.CreateAndLoginAdmin(t, ts)
	otherToken, _ := helpers.CreateAndLoginAdmin(t, ts)
	ownerToken, _ := helpers.CreateAndLoginOwner(t, ts)

	ad := CreateTestCoachingAd(t, ts.DB, author.ID, "Spin bowling clinic", "Chennai", "Tamil Nadu")

	updateBody := map[string]interface{}{"title": "Hijacked title"}

	// Чужой админ получает 403
	res, bodyStr := ts.SendRequest(t, "PUT", "/api/v1/admin/coaching/"+ad.ID, otherToken, updateBody)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
	assert.Contains(t, bodyStr, "permission")

	// Владелец может обновить чужую запись
	ownerUpdate := map[string]interface{}{"title": "Spin bowling clinic (updated)"}
	res, bodyStr = ts.SendRequest(t, "PUT", "/api/v1/admin/coaching/"+ad.ID, ownerToken, ownerUpdate)
	assert.Equal(t, http.StatusOK, res.StatusCode, bodyStr)
	assert.Contains(t, bodyStr, "updated")

	// И удалить ее
	res, _ = ts.SendRequest(t, "DELETE", "/api/v1/admin/coaching/"+ad.ID, ownerToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

// TestPlayerCannotManageListings - игрок не попадает в консоль админа
func TestPlayerCannotManageListings(t *testing.T) {
	ts := GetTestServer(t)

	playerToken, _ := helpers.CreateAndLoginPlayer(t, ts, "Lucknow", "Uttar Pradesh", "batsman")

	createBody := map[string]interface{}{"title": "Should not work"}
	res, _ := ts.SendRequest(t, "POST", "/api/v1/admin/coaching", playerToken, createBody)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

// TestStoreCatalog - витрина магазина: только товары в наличии,
// и только по выполненному поиску
func TestStoreCatalog(t *testing.T) {
	ts := GetTestServer(t)

	_, admin := helpers.CreateAndLoginAdmin(t, ts)
	CreateTestProduct(t, ts.DB, admin.ID, "Premium cricket bat", "bats", true)
	CreateTestProduct(t, ts.DB, admin.ID, "Out of stock helmet", "protective", false)

	res, bodyStr := ts.SendRequest(t, "GET", "/api/v1/store?search=premium+cricket", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "Premium cricket bat")
	assert.Contains(t, bodyStr, `"search_performed":true`)

	// Отсутствующий товар скрыт даже при точном совпадении запроса
	res, bodyStr = ts.SendRequest(t, "GET", "/api/v1/store?search=helmet", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.NotContains(t, bodyStr, "Out of stock helmet")

	// Категория - подстрока
	res, bodyStr = ts.SendRequest(t, "GET", "/api/v1/store?category=bat", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "Premium cricket bat")

	// Без фильтров витрина не раскрывается
	res, bodyStr = ts.SendRequest(t, "GET", "/api/v1/store", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, `"search_performed":false`)
	assert.NotContains(t, bodyStr, "Premium cricket bat")
}

// TestLiveMatches - каталог матчей показывает только live-трансляции
func TestLiveMatches(t *testing.T) {
	ts := GetTestServer(t)

	adminToken, _ := helpers.CreateAndLoginAdmin(t, ts)

	createBody := map[string]interface{}{
		"title":    "Local derby stream",
		"teams":    "Tigers vs Lions",
		"city":     "Kolkata",
		"location": "Eden Gardens",
		"is_live":  true,
	}
	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/admin/matches", adminToken, createBody)
	require.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &created))

	// Поиск матчей по названию команды
	res, bodyStr = ts.SendRequest(t, "GET", "/api/v1/matches?search=tigers", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "Local derby stream")

	// И по городу
	res, bodyStr = ts.SendRequest(t, "GET", "/api/v1/matches?city=kolkata", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "Local derby stream")

	// Без фильтров каталог не раскрывается
	res, bodyStr = ts.SendRequest(t, "GET", "/api/v1/matches", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, `"search_performed":false`)
	assert.NotContains(t, bodyStr, "Local derby stream")

	// Снятие флага live убирает матч из публичной выдачи
	updateBody := map[string]interface{}{"is_live": false}
	res, _ = ts.SendRequest(t, "PUT", "/api/v1/admin/matches/"+created.ID, adminToken, updateBody)
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, bodyStr = ts.SendRequest(t, "GET", "/api/v1/matches?search=tigers", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.NotContains(t, bodyStr, "Local derby stream")
}
