package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/PierrunoYT/financeflow/internal/routes"
	"github.com/PierrunoYT/financeflow/models"
)

// setupAPI builds a router over a fresh sqlite database with foreign keys
// switched on, so the RESTRICT constraint behaves as in production.
func setupAPI(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := filepath.Join(t.TempDir(), "test.sqlite") + "?_foreign_keys=on"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Category{}, &models.Transaction{}, &models.Budget{}))

	r := gin.New()
	routes.RegisterAPIRoutes(r, db)
	return r, db
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func createCategory(t *testing.T, r *gin.Engine, name, typ string) models.Category {
	t.Helper()
	w := doRequest(t, r, http.MethodPost, "/api/categories", gin.H{"name": name, "type": typ})
	require.Equal(t, http.StatusCreated, w.Code)

	var category models.Category
	decodeBody(t, w, &category)
	return category
}
