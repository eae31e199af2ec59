package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/food-order-app/models"
	"github.com/yeremiapane/food-order-app/utils"
	"gorm.io/gorm"
)

type CustomerController struct {
	DB *gorm.DB
}

func NewCustomerController(db *gorm.DB) *CustomerController {
	return &CustomerController{DB: db}
}

// GetAllCustomers -> semua customer, digest password tidak ikut diserialisasi
func (cc *CustomerController) GetAllCustomers(c *gin.Context) {
	var customers []models.Customer
	if err := cc.DB.Find(&customers).Error; err != nil {
		utils.ErrorLogger.Printf("Query customers failed: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("Query failed"))
		return
	}

	c.JSON(http.StatusOK, customers)
}
