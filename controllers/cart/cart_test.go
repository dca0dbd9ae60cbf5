package cartControllers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	cartControllers "github.com/developerssaddam/bistro-boss-server/controllers/cart"
	"github.com/developerssaddam/bistro-boss-server/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setup(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.CartEntry{}))

	r := gin.New()
	r.GET("/carts", cartControllers.GetCarts(db))
	r.POST("/carts", cartControllers.AddCartEntry(db))
	r.DELETE("/carts", cartControllers.DeleteCartEntry(db))
	return r, db
}

func TestAddAndListCartEntries(t *testing.T) {
	r, _ := setup(t)

	body := `{"email":"guest@bistro.app","menu_item_id":7,"name":"Roast Duck","price":14.5}`
	req := httptest.NewRequest("POST", "/carts", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	// Another owner's entry must not leak into the listing.
	body = `{"email":"other@bistro.app","menu_item_id":3,"name":"Soup","price":4}`
	req = httptest.NewRequest("POST", "/carts", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	req = httptest.NewRequest("GET", "/carts?email=guest@bistro.app", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var entries []models.CartEntry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "Roast Duck", entries[0].Name)
	assert.EqualValues(t, 7, entries[0].MenuItemID)
}

func TestAddCartEntryValidation(t *testing.T) {
	r, _ := setup(t)

	req := httptest.NewRequest("POST", "/carts", strings.NewReader(`{"email":"nope"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteCartEntry(t *testing.T) {
	r, db := setup(t)

	entry := models.CartEntry{Email: "guest@bistro.app", MenuItemID: 7, Name: "Roast Duck"}
	require.NoError(t, db.Create(&entry).Error)

	req := httptest.NewRequest("DELETE", fmt.Sprintf("/carts?id=%d", entry.ID), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.CartEntry{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)

	req = httptest.NewRequest("DELETE", fmt.Sprintf("/carts?id=%d", entry.ID), nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)

	req = httptest.NewRequest("DELETE", "/carts?id=zzz", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
