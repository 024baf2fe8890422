package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	catalogdomain "github.com/shopcore/backend/internal/domain/catalog"
	"github.com/shopcore/backend/internal/domain/shopping"
	shoppingapp "github.com/shopcore/backend/internal/application/shopping"
	"github.com/shopcore/backend/internal/infrastructure/persistence"
	"github.com/shopcore/backend/internal/interfaces/http/middleware"
)

const cartSessionHeader = "X-Cart-Session"

func init() {
	gin.SetMode(gin.TestMode)
}

// newCartTestRouter wires the cart endpoints against an in-memory
// database, the way the server does minus auth.
func newCartTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&catalogdomain.Category{},
		&catalogdomain.Product{},
		&catalogdomain.ProductImage{},
		&shopping.CartLine{},
		&shopping.Order{},
	))

	cartService := shoppingapp.NewCartService(
		persistence.NewGormCartLineRepository(db),
		persistence.NewGormProductRepository(db),
	)
	cartHandler := NewCartHandler(cartService)

	router := gin.New()
	api := router.Group("/api")
	api.Use(middleware.CartSession(cartSessionHeader))
	api.GET("/cart", cartHandler.Get)
	api.POST("/cart", cartHandler.Add)
	api.PUT("/cart/:id", cartHandler.UpdateLine)
	api.DELETE("/cart/clear", cartHandler.Clear)
	api.DELETE("/cart/:id", cartHandler.RemoveLine)

	return router, db
}

func seedProduct(t *testing.T, db *gorm.DB, stock int, price string) *catalogdomain.Product {
	t.Helper()
	category, err := catalogdomain.NewCategory("Desks", "desks")
	require.NoError(t, err)
	require.NoError(t, db.Create(category).Error)

	product, err := catalogdomain.NewProduct(category.ID, "Standing Desk", decimal.RequireFromString(price))
	require.NoError(t, err)
	product.StockQuantity = stock
	require.NoError(t, db.Create(product).Error)
	return product
}

func TestCartHandler_AddAndGet(t *testing.T) {
	router, db := newCartTestRouter(t)
	product := seedProduct(t, db, 5, "10.00")

	body, _ := json.Marshal(gin.H{"product_id": product.ID, "quantity": 3})
	req := httptest.NewRequest(http.MethodPost, "/api/cart", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	sessionID := w.Header().Get(cartSessionHeader)
	require.NotEmpty(t, sessionID)

	var cart shoppingapp.CartResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cart))
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 3, cart.Lines[0].Quantity)
	assert.True(t, cart.Total.Equal(decimal.RequireFromString("30.00")))

	// Same session sees the same cart
	req = httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	req.Header.Set(cartSessionHeader, sessionID)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cart))
	assert.Equal(t, 3, cart.ItemCount)

	// A different session sees an empty cart
	req = httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	req.Header.Set(cartSessionHeader, uuid.NewString())
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cart))
	assert.Empty(t, cart.Lines)
}

func TestCartHandler_RepeatAddClampsToStock(t *testing.T) {
	router, db := newCartTestRouter(t)
	product := seedProduct(t, db, 5, "10.00")
	sessionID := uuid.NewString()

	add := func(quantity int) *httptest.ResponseRecorder {
		body, _ := json.Marshal(gin.H{"product_id": product.ID, "quantity": quantity})
		req := httptest.NewRequest(http.MethodPost, "/api/cart", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(cartSessionHeader, sessionID)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	require.Equal(t, http.StatusCreated, add(3).Code)
	w := add(4)
	require.Equal(t, http.StatusCreated, w.Code)

	var cart shoppingapp.CartResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cart))
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 5, cart.Lines[0].Quantity)
	assert.True(t, cart.Total.Equal(decimal.RequireFromString("50.00")))
}

func TestCartHandler_AddOverStockOnFreshLine(t *testing.T) {
	router, db := newCartTestRouter(t)
	product := seedProduct(t, db, 2, "10.00")

	body, _ := json.Marshal(gin.H{"product_id": product.ID, "quantity": 3})
	req := httptest.NewRequest(http.MethodPost, "/api/cart", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Insufficient stock"}`, w.Body.String())
}

func TestCartHandler_UpdateRemoveClear(t *testing.T) {
	router, db := newCartTestRouter(t)
	product := seedProduct(t, db, 10, "25.00")
	sessionID := uuid.NewString()

	body, _ := json.Marshal(gin.H{"product_id": product.ID, "quantity": 2})
	req := httptest.NewRequest(http.MethodPost, "/api/cart", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(cartSessionHeader, sessionID)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var cart shoppingapp.CartResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cart))
	lineID := cart.Lines[0].ID

	// Update the quantity directly
	body, _ = json.Marshal(gin.H{"quantity": 4})
	req = httptest.NewRequest(http.MethodPut, fmt.Sprintf("/api/cart/%s", lineID), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(cartSessionHeader, sessionID)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cart))
	assert.Equal(t, 4, cart.Lines[0].Quantity)

	// Remove the line
	req = httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/cart/%s", lineID), nil)
	req.Header.Set(cartSessionHeader, sessionID)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)

	// Clearing an already-empty cart is a no-op
	req = httptest.NewRequest(http.MethodDelete, "/api/cart/clear", nil)
	req.Header.Set(cartSessionHeader, sessionID)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
}
