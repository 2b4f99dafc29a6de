package cartControllers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vkvijay314/cloud-cart-backend/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
	))
	require.NoError(t, db.Create(&models.User{ID: "user-1", Email: "u@example.com", Provider: "local"}).Error)
	return db
}

func cartRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	asUser := func(c *gin.Context) { c.Set("user_id", "user-1") }

	r.GET("/cart", asUser, GetUserCart(db))
	r.POST("/cart", asUser, UpdateCartItem(db))
	r.DELETE("/cart/:product_id", asUser, DeleteCartItem(db))
	r.DELETE("/cart", asUser, ClearUserCart(db))
	return r
}

func jsonRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestUpdateCartItem_AddAndUpdate(t *testing.T) {
	db := setupTestDB(t)
	product := models.Product{Name: "keyboard", Price: 10}
	require.NoError(t, db.Create(&product).Error)
	r := cartRouter(db)

	body := fmt.Sprintf(`{"product_id": %d, "quantity": 2}`, product.ID)
	w := jsonRequest(r, http.MethodPost, "/cart", body)
	assert.Equal(t, http.StatusCreated, w.Code)

	// Same product again replaces the quantity, no second line.
	body = fmt.Sprintf(`{"product_id": %d, "quantity": 5}`, product.ID)
	w = jsonRequest(r, http.MethodPost, "/cart", body)
	assert.Equal(t, http.StatusOK, w.Code)

	var items []models.CartItem
	require.NoError(t, db.Find(&items).Error)
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
}

func TestUpdateCartItem_UnknownProduct(t *testing.T) {
	db := setupTestDB(t)
	r := cartRouter(db)

	w := jsonRequest(r, http.MethodPost, "/cart", `{"product_id": 999, "quantity": 1}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateCartItem_ZeroQuantityRejected(t *testing.T) {
	db := setupTestDB(t)
	product := models.Product{Name: "keyboard", Price: 10}
	require.NoError(t, db.Create(&product).Error)
	r := cartRouter(db)

	body := fmt.Sprintf(`{"product_id": %d, "quantity": 0}`, product.ID)
	w := jsonRequest(r, http.MethodPost, "/cart", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetUserCart_NoCartYet(t *testing.T) {
	db := setupTestDB(t)
	r := cartRouter(db)

	w := jsonRequest(r, http.MethodGet, "/cart", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"items":[]`)
}

func TestDeleteCartItem(t *testing.T) {
	db := setupTestDB(t)
	product := models.Product{Name: "keyboard", Price: 10}
	require.NoError(t, db.Create(&product).Error)
	r := cartRouter(db)

	body := fmt.Sprintf(`{"product_id": %d, "quantity": 2}`, product.ID)
	require.Equal(t, http.StatusCreated, jsonRequest(r, http.MethodPost, "/cart", body).Code)

	w := jsonRequest(r, http.MethodDelete, fmt.Sprintf("/cart/%d", product.ID), "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = jsonRequest(r, http.MethodDelete, fmt.Sprintf("/cart/%d", product.ID), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestClearUserCart_Idempotent(t *testing.T) {
	db := setupTestDB(t)
	product := models.Product{Name: "keyboard", Price: 10}
	require.NoError(t, db.Create(&product).Error)
	r := cartRouter(db)

	body := fmt.Sprintf(`{"product_id": %d, "quantity": 2}`, product.ID)
	require.Equal(t, http.StatusCreated, jsonRequest(r, http.MethodPost, "/cart", body).Code)

	w := jsonRequest(r, http.MethodDelete, "/cart", "")
	assert.Equal(t, http.StatusOK, w.Code)

	// Clearing an already-empty cart is still a success.
	w = jsonRequest(r, http.MethodDelete, "/cart", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.CartItem{}).Count(&count).Error)
	assert.Zero(t, count)
}
