package main

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yeremiapane/food-order-app/models"
	"github.com/yeremiapane/food-order-app/router"
	"github.com/yeremiapane/food-order-app/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// TestEndToEndIntegration menguji flow utama:
// 0. Seed restoran + menu
// 1. Register customer -> login -> token
// 2. Lihat katalog menu
// 3. Place order -> total = harga * qty
// 4. Cek summary
func TestEndToEndIntegration(t *testing.T) {
	db := setupTestDB()
	utils.InitDB(db)
	r := router.SetupRouter(db)

	menu := seedCatalogTest(t, db)

	token := registerAndLoginTest(t, r)

	listMenusTest(t, r)

	orderID := placeOrderTest(t, r, token, menu)
	assert.NotZero(t, orderID)

	summaryTest(t, r, token)

	pingTest(t, r)
}

// setupTestDB -> migrasi model di SQLite in-memory
func setupTestDB() *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file:integration_test?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to open in-memory sqlite: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.Shop{},
		&models.Menu{},
		&models.Order{},
	)
	if err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}

func seedCatalogTest(t *testing.T, db *gorm.DB) models.Menu {
	shop := models.Shop{ShopName: "Baan Aroi", ShopAddress: "7 Rama IV Rd"}
	assert.NoError(t, db.Create(&shop).Error)

	menu := models.Menu{MenuName: "Massaman Curry", MenuDescription: "Slow-cooked beef curry", Price: 95, ShopID: shop.ShopID}
	assert.NoError(t, db.Create(&menu).Error)
	return menu
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, payload interface{}) *httptest.ResponseRecorder {
	var body *bytes.Buffer
	if payload != nil {
		b, err := json.Marshal(payload)
		assert.NoError(t, err)
		body = bytes.NewBuffer(b)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, path, body)
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func registerAndLoginTest(t *testing.T, r *gin.Engine) string {
	w := doJSON(t, r, "POST", "/register", "", map[string]string{
		"prefix":       "Ms.",
		"firstname":    "Fah",
		"lastname":     "Rattanawadee",
		"username":     "fah",
		"password":     "fah-secret",
		"address":      "Chiang Mai",
		"email":        "fah@example.com",
		"phone_number": "0899998888",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, "POST", "/login", "", map[string]string{
		"username": "fah",
		"password": "fah-secret",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	token, ok := resp["token"].(string)
	assert.True(t, ok)
	assert.NotEmpty(t, token)
	return token
}

func listMenusTest(t *testing.T, r *gin.Engine) {
	w := doJSON(t, r, "GET", "/menus", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var rows []map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
	assert.Len(t, rows, 1)
	assert.Equal(t, "Massaman Curry", rows[0]["menu_name"])
	assert.Equal(t, "Baan Aroi", rows[0]["shop_name"])
}

func placeOrderTest(t *testing.T, r *gin.Engine, token string, menu models.Menu) uint {
	// Tanpa token harus ditolak
	w := doJSON(t, r, "POST", "/orders", "", map[string]interface{}{
		"shop_id": menu.ShopID, "menu_id": menu.MenuID, "quantity": 2,
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, "POST", "/orders", token, map[string]interface{}{
		"shop_id": menu.ShopID, "menu_id": menu.MenuID, "quantity": 2,
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, float64(190), resp["total"]) // 95 * 2
	return uint(resp["order_id"].(float64))
}

func summaryTest(t *testing.T, r *gin.Engine, token string) {
	w := doJSON(t, r, "GET", "/orders/summary", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Fah Rattanawadee", resp["customer_name"])
	assert.Equal(t, float64(190), resp["total_amount"])
}

func pingTest(t *testing.T, r *gin.Engine) {
	w := doJSON(t, r, "GET", "/ping", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

// Sanity: digest yang tersimpan bisa diverifikasi ulang dengan bcrypt
func TestStoredDigestVerifiable(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("sanity"), bcrypt.DefaultCost)
	assert.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword(hashed, []byte("sanity")))
	assert.Error(t, bcrypt.CompareHashAndPassword(hashed, []byte("different")))
}
