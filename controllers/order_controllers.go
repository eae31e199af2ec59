package controllers

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/food-order-app/models"
	"github.com/yeremiapane/food-order-app/utils"
	"gorm.io/gorm"
)

type OrderController struct {
	DB    *gorm.DB
	Menus *MenuController
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{DB: db, Menus: NewMenuController(db)}
}

// customerFromContext mengambil identitas hasil decode token di middleware.
func customerFromContext(c *gin.Context) (uint, string, bool) {
	idVal, exists := c.Get("customer_id")
	if !exists {
		return 0, "", false
	}
	id, ok := idVal.(uint)
	if !ok || id == 0 {
		return 0, "", false
	}
	firstname, _ := c.Get("firstname")
	name, _ := firstname.(string)
	return id, name, true
}

// PlaceOrder -> snapshot harga menu, hitung total, insert order.
// Tidak ada idempotency key: request identik ganda membuat order ganda.
func (oc *OrderController) PlaceOrder(c *gin.Context) {
	type reqBody struct {
		ShopID   uint `json:"shop_id"`
		MenuID   uint `json:"menu_id"`
		Quantity int  `json:"quantity"`
	}

	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	customerID, _, ok := customerFromContext(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("No token provided"))
		return
	}

	// Harga diambil sekali di sini; order lama tidak terpengaruh
	// perubahan harga menu setelahnya.
	price, err := oc.Menus.GetMenuPrice(body.MenuID)
	if err != nil {
		if errors.Is(err, ErrMenuNotFound) {
			utils.RespondError(c, http.StatusNotFound, ErrMenuNotFound)
			return
		}
		utils.ErrorLogger.Printf("Price lookup failed: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("Failed to place order"))
		return
	}

	total := price * float64(body.Quantity)

	order := models.Order{
		CustomerID: customerID,
		ShopID:     body.ShopID,
		MenuID:     body.MenuID,
		Quantity:   body.Quantity,
		Price:      price,
		Total:      total,
		OrderDate:  time.Now(),
	}

	if err := oc.DB.Create(&order).Error; err != nil {
		utils.ErrorLogger.Printf("Insert order failed: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("Failed to place order"))
		return
	}

	utils.InfoLogger.Printf("Order %d placed by customer %d (total %s)",
		order.OrderID, customerID, utils.FormatCurrency(total))

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Order placed successfully",
		"order_id":    order.OrderID,
		"customer_id": customerID,
		"quantity":    body.Quantity,
		"price":       price,
		"total":       total,
	})
}

// GetOrderSummary -> nama customer + akumulasi total semua ordernya.
// Customer tanpa order: total 0 dan nama diambil dari firstname di token,
// bukan dari tabel customer.
func (oc *OrderController) GetOrderSummary(c *gin.Context) {
	customerID, tokenFirstname, ok := customerFromContext(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("No token provided"))
		return
	}

	var row struct {
		Firstname   sql.NullString
		Lastname    sql.NullString
		TotalAmount sql.NullFloat64 `gorm:"column:total_amount"`
	}

	err := oc.DB.Table("tbl_orders").
		Select("tbl_customers.firstname AS firstname, tbl_customers.lastname AS lastname, SUM(tbl_orders.total) AS total_amount").
		Joins("INNER JOIN tbl_customers ON tbl_orders.customer_id = tbl_customers.id").
		Joins("INNER JOIN tbl_menus ON tbl_orders.menu_id = tbl_menus.menu_id").
		Where("tbl_orders.customer_id = ?", customerID).
		Scan(&row).Error
	if err != nil {
		utils.ErrorLogger.Printf("Summary query failed: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("Failed to get summary"))
		return
	}

	customerName := tokenFirstname
	if row.Firstname.Valid {
		customerName = row.Firstname.String + " " + row.Lastname.String
	}

	var totalAmount float64
	if row.TotalAmount.Valid {
		totalAmount = row.TotalAmount.Float64
	}

	c.JSON(http.StatusOK, gin.H{
		"customer_name": customerName,
		"total_amount":  totalAmount,
	})
}
