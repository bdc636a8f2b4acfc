package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Kas-Kady/bbq/internal/models"
)

func setupTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	// A named in-memory database keeps every pooled connection on the
	// same store and isolates tests from each other.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.BBQ{}, &models.Upgrade{}, &models.Attendee{}))

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("db", db)
		c.Next()
	})
	r.GET("/v1/bbqs", ListBBQs)
	r.PUT("/v1/bbqs/:slug", UpdateBBQ)

	return r, db
}

func performJSON(t *testing.T, r *gin.Engine, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestListBBQs_RejectsInvalidPagination(t *testing.T) {
	r, _ := setupTestRouter(t)

	for _, query := range []string{"?page=0", "?page=-1", "?page=abc", "?limit=0", "?limit=-5", "?limit=abc"} {
		w := performJSON(t, r, http.MethodGet, "/v1/bbqs"+query, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, query)
	}
}

func TestUpdateBBQ_RejectsSlugCollision(t *testing.T) {
	r, db := setupTestRouter(t)

	require.NoError(t, db.Create(&models.BBQ{
		ID:          uuid.New(),
		Slug:        "zomer-bbq",
		Title:       "Zomer BBQ",
		Description: "De jaarlijkse zomereditie.",
	}).Error)
	require.NoError(t, db.Create(&models.BBQ{
		ID:          uuid.New(),
		Slug:        "herfst-bbq",
		Title:       "Herfst BBQ",
		Description: "Onder de pergola.",
	}).Error)

	// Renaming the autumn BBQ onto the summer one's title must be refused.
	w := performJSON(t, r, http.MethodPut, "/v1/bbqs/herfst-bbq", BBQRequest{
		Title:       "Zomer BBQ",
		Description: "Onder de pergola.",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	var bbq models.BBQ
	require.NoError(t, db.Where("slug = ?", "herfst-bbq").First(&bbq).Error)
	assert.Equal(t, "Herfst BBQ", bbq.Title)
}

func TestUpdateBBQ_KeepingOwnTitleIsNotACollision(t *testing.T) {
	r, db := setupTestRouter(t)

	require.NoError(t, db.Create(&models.BBQ{
		ID:          uuid.New(),
		Slug:        "herfst-bbq",
		Title:       "Herfst BBQ",
		Description: "Onder de pergola.",
	}).Error)

	w := performJSON(t, r, http.MethodPut, "/v1/bbqs/herfst-bbq", BBQRequest{
		Title:       "Herfst BBQ",
		Description: "Onder de pergola, met vuurkorf.",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var bbq models.BBQ
	require.NoError(t, db.Where("slug = ?", "herfst-bbq").First(&bbq).Error)
	assert.Equal(t, "Onder de pergola, met vuurkorf.", bbq.Description)
}
