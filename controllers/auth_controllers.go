package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/food-order-app/models"
	"github.com/yeremiapane/food-order-app/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// isDuplicateErr mendeteksi pelanggaran unique key (MySQL 1062 / SQLite).
func isDuplicateErr(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") || strings.Contains(msg, "UNIQUE constraint")
}

// Register customer baru
func (ac *AuthController) Register(c *gin.Context) {
	type request struct {
		Prefix      string `json:"prefix"`
		Firstname   string `json:"firstname"`
		Lastname    string `json:"lastname"`
		Username    string `json:"username" binding:"required"`
		Password    string `json:"password"`
		Address     string `json:"address"`
		Email       string `json:"email" binding:"required,email"`
		PhoneNumber string `json:"phone_number"`
	}
	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	// Tolak sebelum hashing
	if req.Password == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("Password is required"))
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	customer := models.Customer{
		Prefix:      req.Prefix,
		Firstname:   req.Firstname,
		Lastname:    req.Lastname,
		Username:    req.Username,
		Password:    string(hashed),
		Address:     req.Address,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
	}

	if err := ac.DB.Create(&customer).Error; err != nil {
		if isDuplicateErr(err) {
			utils.RespondError(c, http.StatusConflict, errors.New("Username or Email already exists!"))
			return
		}
		utils.ErrorLogger.Printf("Insert customer failed: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("Insert failed"))
		return
	}

	utils.InfoLogger.Printf("New customer registered: %s (id=%d)", customer.Username, customer.ID)

	c.JSON(http.StatusOK, gin.H{
		"message": "Register successful",
		"id":      customer.ID,
	})
}

// Login customer -> return JWT
func (ac *AuthController) Login(c *gin.Context) {
	var input struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var customer models.Customer
	if err := ac.DB.Where("username = ?", input.Username).First(&customer).Error; err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("User not found"))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(customer.Password), []byte(input.Password)); err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("Invalid password"))
		return
	}

	token, err := utils.GenerateToken(customer.ID, customer.Firstname, customer.Lastname)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Login successful for customer: %s", customer.Username)

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
	})
}

// Logout -> token tetap berlaku sampai kadaluarsa; frontend yang membuang token
func (ac *AuthController) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}
