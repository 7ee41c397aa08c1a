package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/International-Slackline-Association/SlackData/database"
	"github.com/International-Slackline-Association/SlackData/models"
	"github.com/International-Slackline-Association/SlackData/routes"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Brand{},
		&models.Webbing{},
		&models.Weblock{},
		&models.Roller{},
		&models.LeashRing{},
		&models.Grip{},
		&models.TreePro{},
		&models.StarterKit{},
		&models.TricklineKit{},
	))
	database.DB = db

	return routes.SetupRoutes()
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestWebbingEndpoints(t *testing.T) {
	r := setupRouter(t)

	brand := models.Brand{Name: "Landcruising", Active: true, SlacklineFocused: true}
	require.NoError(t, database.DB.Create(&brand).Error)

	// create
	w := doRequest(r, http.MethodPost, "/api/webbings", `{
		"name": "Moonwalk",
		"brand_id": `+itoa(brand.ID)+`,
		"material": "Nylon",
		"width": 25,
		"weight": 62
	}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		Data struct {
			Data models.Webbing `json:"data"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	id := created.Data.Data.ID
	require.NotZero(t, id)

	// read back
	w = doRequest(r, http.MethodGet, "/api/webbings/"+itoa(id), "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Moonwalk")
	assert.Contains(t, w.Body.String(), "Landcruising")

	// list
	w = doRequest(r, http.MethodGet, "/api/webbings?offset=0&limit=10", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":1`)

	// patch
	w = doRequest(r, http.MethodPatch, "/api/webbings/"+itoa(id), `{"width": 26}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"width":26`)

	// delete, then 404
	w = doRequest(r, http.MethodDelete, "/api/webbings/"+itoa(id), "")
	assert.Equal(t, http.StatusOK, w.Code)
	w = doRequest(r, http.MethodGet, "/api/webbings/"+itoa(id), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestWebbingNotFound(t *testing.T) {
	r := setupRouter(t)

	w := doRequest(r, http.MethodGet, "/api/webbings/12345", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(r, http.MethodGet, "/api/webbings/notanumber", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateWebbingValidation(t *testing.T) {
	r := setupRouter(t)

	// missing required name
	w := doRequest(r, http.MethodPost, "/api/webbings", `{"brand_id": 1}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	// unknown brand reference
	w = doRequest(r, http.MethodPost, "/api/webbings", `{"name": "X", "brand_id": 999}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestUpdateWebbingRejectsUnknownFields(t *testing.T) {
	r := setupRouter(t)

	brand := models.Brand{Name: "B", Active: true, SlacklineFocused: true}
	require.NoError(t, database.DB.Create(&brand).Error)
	webbing := models.Webbing{Name: "W", BrandID: brand.ID}
	require.NoError(t, database.DB.Create(&webbing).Error)

	w := doRequest(r, http.MethodPatch, "/api/webbings/"+itoa(webbing.ID), `{"wdith": 26}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	// record unchanged
	var got models.Webbing
	require.NoError(t, database.DB.First(&got, webbing.ID).Error)
	assert.Equal(t, 0, got.Width)
}

func TestBrandEndpoints(t *testing.T) {
	r := setupRouter(t)

	w := doRequest(r, http.MethodPost, "/api/brands", `{"name": "Slacktivity", "country": "Switzerland"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// duplicate name conflicts
	w = doRequest(r, http.MethodPost, "/api/brands", `{"name": "Slacktivity"}`)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doRequest(r, http.MethodGet, "/api/brands", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Slacktivity")
}

func itoa(v uint) string {
	return strconv.Itoa(int(v))
}
