package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/food-order-app/models"
	"github.com/yeremiapane/food-order-app/utils"
	"gorm.io/gorm"
)

type MenuController struct {
	DB *gorm.DB
}

func NewMenuController(db *gorm.DB) *MenuController {
	return &MenuController{DB: db}
}

// GetAllMenus -> semua menu di-join dengan restoran pemiliknya.
// Full-table read, tanpa pagination.
func (mc *MenuController) GetAllMenus(c *gin.Context) {
	var rows []models.MenuWithShop

	err := mc.DB.Table("tbl_menus").
		Select("tbl_menus.menu_id, tbl_menus.menu_name, tbl_menus.menu_description, tbl_menus.price, tbl_restaurants.shop_id, tbl_restaurants.shop_name, tbl_restaurants.shop_address").
		Joins("INNER JOIN tbl_restaurants ON tbl_menus.shop_id = tbl_restaurants.shop_id").
		Scan(&rows).Error
	if err != nil {
		utils.ErrorLogger.Printf("Query menus failed: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("Failed to fetch menus"))
		return
	}

	c.JSON(http.StatusOK, rows)
}

// ErrMenuNotFound dipakai OrderController saat snapshot harga.
var ErrMenuNotFound = errors.New("Menu not found")

// GetMenuPrice mengambil harga satu menu untuk snapshot saat order dibuat.
func (mc *MenuController) GetMenuPrice(menuID uint) (float64, error) {
	var menu models.Menu
	if err := mc.DB.Select("price").First(&menu, menuID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrMenuNotFound
		}
		return 0, err
	}
	return menu.Price, nil
}
