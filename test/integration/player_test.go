package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"gameconnect_backend/internal/models"
	"gameconnect_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSearchPlayers_NoFilters - без фильтров поиск не выполняется
func TestSearchPlayers_NoFilters(t *testing.T) {
	ts := GetTestServer(t)

	token, _ := helpers.CreateAndLoginPlayer(t, ts, "Chennai", "Tamil Nadu", models.CricketRoleBatsman)

	res, bodyStr := ts.SendRequest(t, "GET", "/api/v1/players/search", token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, `"search_performed":false`)
	assert.Contains(t, bodyStr, `"players":[]`)
}

// TestSearchPlayers_RoleAll - роль "all" считается выполненным поиском
func TestSearchPlayers_RoleAll(t *testing.T) {
	ts := GetTestServer(t)

	token, _ := helpers.CreateAndLoginPlayer(t, ts, "Chennai", "Tamil Nadu", models.CricketRoleBatsman)

	res, bodyStr := ts.SendRequest(t, "GET", "/api/v1/players/search?role=all", token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, `"search_performed":true`)
}

// TestProfileVisibilityGate - профиль чужого игрока закрыт до поиска
// и открывается навсегда после появления в выдаче
func TestProfileVisibilityGate(t *testing.T) {
	ts := GetTestServer(t)

	viewerToken, _ := helpers.CreateAndLoginPlayer(t, ts, "Kolkata", "West Bengal", models.CricketRoleBowler)
	_, target := helpers.CreateAndLoginPlayer(t, ts, "Gatecity", "Gatestate", models.CricketRoleBatsman)

	// До поиска детальная страница закрыта
	res, bodyStr := ts.SendRequest(t, "GET", "/api/v1/players/"+target.ID, viewerToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
	assert.Contains(t, bodyStr, "must search for players")

	// Поиск по городу цели выдает право просмотра
	res, bodyStr = ts.SendRequest(t, "GET", "/api/v1/players/search?city=Gatecity", viewerToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, target.Username)

	// Теперь профиль открыт
	res, bodyStr = ts.SendRequest(t, "GET", "/api/v1/players/"+target.ID, viewerToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, target.Username)
	assert.Contains(t, bodyStr, `"followers_count":0`)
}

// TestOwnProfileAlwaysVisible - свой профиль виден без поиска
func TestOwnProfileAlwaysVisible(t *testing.T) {
	ts := GetTestServer(t)

	token, user := helpers.CreateAndLoginPlayer(t, ts, "Jaipur", "Rajasthan", models.CricketRoleAllRounder)

	res, bodyStr := ts.SendRequest(t, "GET", "/api/v1/players/"+user.ID, token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, user.Username)
}

// TestFollowFlow - подписка идемпотентна, отписка снимает ее
func TestFollowFlow(t *testing.T) {
	ts := GetTestServer(t)

	followerToken, _ := helpers.CreateAndLoginPlayer(t, ts, "Nagpur", "Maharashtra", models.CricketRoleBowler)
	_, target := helpers.CreateAndLoginPlayer(t, ts, "Followtown", "Followstate", models.CricketRoleBatsman)

	// Открываем профиль через поиск
	res, _ := ts.SendRequest(t, "GET", "/api/v1/players/search?city=Followtown", followerToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	// Две одинаковые подписки - один фолловер
	res, _ = ts.SendRequest(t, "POST", "/api/v1/players/"+target.ID+"/follow", followerToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	res, _ = ts.SendRequest(t, "POST", "/api/v1/players/"+target.ID+"/follow", followerToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	res, bodyStr := ts.SendRequest(t, "GET", "/api/v1/players/"+target.ID, followerToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var detail struct {
		FollowersCount int64 `json:"followers_count"`
		IsFollowing    bool  `json:"is_following"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &detail))
	assert.Equal(t, int64(1), detail.FollowersCount)
	assert.True(t, detail.IsFollowing)

	// Отписка
	res, _ = ts.SendRequest(t, "DELETE", "/api/v1/players/"+target.ID+"/follow", followerToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	res, bodyStr = ts.SendRequest(t, "GET", "/api/v1/players/"+target.ID, followerToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &detail))
	assert.Equal(t, int64(0), detail.FollowersCount)
	assert.False(t, detail.IsFollowing)
}

// TestFollowSelf - подписка на себя запрещена
func TestFollowSelf(t *testing.T) {
	ts := GetTestServer(t)

	token, user := helpers.CreateAndLoginPlayer(t, ts, "Surat", "Gujarat", models.CricketRoleBatsman)

	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/players/"+user.ID+"/follow", token, nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, "Cannot follow yourself")
}

// TestSearchRequiresAuth - поиск без токена дает 401
func TestSearchRequiresAuth(t *testing.T) {
	ts := GetTestServer(t)

	res, _ := ts.SendRequest(t, "GET", "/api/v1/players/search?city=Mumbai", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

// TestUpdateProfile - частичное обновление профиля
func TestUpdateProfile(t *testing.T) {
	ts := GetTestServer(t)

	token, _ := helpers.CreateAndLoginPlayer(t, ts, "Indore", "Madhya Pradesh", models.CricketRoleBowler)

	updateBody := map[string]interface{}{
		"availability": "weekends",
		"cricket_role": "all-rounder",
	}
	res, bodyStr := ts.SendRequest(t, "PUT", "/api/v1/profile", token, updateBody)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, `"availability":"weekends"`)
	assert.Contains(t, bodyStr, `"cricket_role":"all-rounder"`)
	// Непереданные поля не изменились
	assert.Contains(t, bodyStr, `"city":"Indore"`)

	// Произвольная роль не проходит валидацию
	badRole := map[string]interface{}{"cricket_role": "wicketkeeper"}
	res, bodyStr = ts.SendRequest(t, "PUT", "/api/v1/profile", token, badRole)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, "cricket_role")
}
