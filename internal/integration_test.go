package internal

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"resource-inventory-backend/config"
	"resource-inventory-backend/internal/api"
	"resource-inventory-backend/internal/model"
	"resource-inventory-backend/internal/seed"
	"resource-inventory-backend/internal/store"
)

// TestResourceLifecycle drives the full surface end to end: seed the
// inventory, create a resource through the form, collide on its name,
// search for it, edit it, and finally delete it.
func TestResourceLifecycle(t *testing.T) {
	gin.SetMode(gin.TestMode)

	testDB, err := gorm.Open(sqlite.Open("file:lifecycle?mode=memory&cache=shared"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, _ := testDB.DB()
	defer sqlDB.Close()

	require.NoError(t, testDB.AutoMigrate(&model.Resource{}))

	appStore := store.NewGormStore(testDB)

	cfg := config.Default()
	cfg.Server.RateLimitPerSec = 10000
	cfg.Server.RateLimitBurst = 10000
	router := api.NewRouter(appStore, cfg)

	ctx := context.Background()

	// --- Seed the sample inventory; a second run inserts nothing. ---
	inserted, err := seed.Run(ctx, appStore)
	require.NoError(t, err)
	require.Greater(t, inserted, 0)

	again, err := seed.Run(ctx, appStore)
	require.NoError(t, err)
	assert.Zero(t, again)

	// --- Dashboard reflects the seeded inventory. ---
	w := doGet(router, "/")
	require.Equal(t, http.StatusOK, w.Code)
	var dash struct {
		Stats  store.StatusCounts `json:"stats"`
		Recent []model.Resource   `json:"recent_resources"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dash))
	assert.Equal(t, int64(inserted), dash.Stats.Total)
	assert.Equal(t, dash.Stats.Total,
		dash.Stats.Available+dash.Stats.Maintenance+dash.Stats.Booked)
	assert.Len(t, dash.Recent, 5)

	// --- Create with minimal fields; status defaults to available. ---
	w = doPost(router, "/resources/create", url.Values{
		"name":          {"Lab X"},
		"resource_type": {"lab"},
		"location":      {"Bldg 1"},
	})
	require.Equal(t, http.StatusSeeOther, w.Code)
	detailPath := w.Header().Get("Location")
	require.True(t, strings.HasPrefix(detailPath, "/resources/"))

	w = doGet(router, detailPath)
	require.Equal(t, http.StatusOK, w.Code)
	var detail struct {
		Resource model.Resource `json:"resource"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
	assert.Equal(t, model.StatusAvailable, detail.Resource.Status)

	// --- A second "Lab X" is rejected; exactly one survives. ---
	w = doPost(router, "/resources/create", url.Values{
		"name":          {"Lab X"},
		"resource_type": {"room"},
		"location":      {"Bldg 2"},
	})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	matches, err := appStore.List(ctx, store.Filter{Search: "Lab X"})
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, model.TypeLab, matches[0].ResourceType)

	// --- Search returns only matching records, sorted by name. ---
	w = doGet(router, "/resources?search=Lab")
	require.Equal(t, http.StatusOK, w.Code)
	var listing struct {
		Resources []model.Resource `json:"resources"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listing))
	require.NotEmpty(t, listing.Resources)
	prev := ""
	for _, r := range listing.Resources {
		haystack := strings.ToLower(r.Name + " " + r.Description + " " + r.Location)
		assert.Contains(t, haystack, "lab")
		assert.LessOrEqual(t, prev, r.Name)
		prev = r.Name
	}

	// --- Edit the new resource into maintenance. ---
	w = doPost(router, detailPath+"/edit", url.Values{
		"name":              {"Lab X"},
		"resource_type":     {"lab"},
		"location":          {"Bldg 1"},
		"status":            {"maintenance"},
		"maintenance_notes": {"Fume hood inspection."},
	})
	require.Equal(t, http.StatusSeeOther, w.Code)

	w = doGet(router, detailPath)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
	assert.Equal(t, model.StatusMaintenance, detail.Resource.Status)
	assert.Equal(t, "Fume hood inspection.", detail.Resource.MaintenanceNotes)
	assert.True(t, detail.Resource.UpdatedAt.After(detail.Resource.CreatedAt) ||
		detail.Resource.UpdatedAt.Equal(detail.Resource.CreatedAt))

	// --- Delete it and confirm the detail page now navigates away. ---
	w = doPost(router, detailPath+"/delete", nil)
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/resources", w.Header().Get("Location"))

	w = doGet(router, detailPath)
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/resources", w.Header().Get("Location"))
}

func doGet(router *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(w, req)
	return w
}

func doPost(router *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	router.ServeHTTP(w, req)
	return w
}
