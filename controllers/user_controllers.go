package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/food-order-app/models"
	"github.com/yeremiapane/food-order-app/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserController mengelola akun staf (tbl_users).
type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// GetAllUsers -> list user tanpa kolom password
func (uc *UserController) GetAllUsers(c *gin.Context) {
	var users []models.User
	if err := uc.DB.Find(&users).Error; err != nil {
		utils.ErrorLogger.Printf("Query users failed: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("Query failed"))
		return
	}

	c.JSON(http.StatusOK, users)
}

// GetUserByID
func (uc *UserController) GetUserByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var user models.User
	if err := uc.DB.First(&user, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("User not found"))
		return
	}

	c.JSON(http.StatusOK, user)
}

// CreateUser -> tambah user baru, password di-hash sebelum insert
func (uc *UserController) CreateUser(c *gin.Context) {
	type request struct {
		Firstname string `json:"firstname"`
		Fullname  string `json:"fullname"`
		Lastname  string `json:"lastname"`
		Username  string `json:"username"`
		Password  string `json:"password"`
		Status    string `json:"status"`
	}
	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.Password == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("Password is required"))
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	user := models.User{
		Firstname: req.Firstname,
		Fullname:  req.Fullname,
		Lastname:  req.Lastname,
		Username:  req.Username,
		Password:  string(hashed),
		Status:    req.Status,
	}

	if err := uc.DB.Create(&user).Error; err != nil {
		utils.ErrorLogger.Printf("Insert user failed: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("Insert failed"))
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateUser -> partial update: hanya field yang dikirim yang berubah,
// password yang dikirim di-hash ulang, updated_at selalu dinaikkan.
func (uc *UserController) UpdateUser(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	type request struct {
		Firstname *string `json:"firstname"`
		Fullname  *string `json:"fullname"`
		Lastname  *string `json:"lastname"`
		Username  *string `json:"username"`
		Password  *string `json:"password"`
		Status    *string `json:"status"`
	}
	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var user models.User
	if err := uc.DB.First(&user, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("User not found"))
		return
	}

	if req.Firstname != nil {
		user.Firstname = *req.Firstname
	}
	if req.Fullname != nil {
		user.Fullname = *req.Fullname
	}
	if req.Lastname != nil {
		user.Lastname = *req.Lastname
	}
	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.Status != nil {
		user.Status = *req.Status
	}
	if req.Password != nil && *req.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
		user.Password = string(hashed)
	}

	user.UpdatedAt = time.Now()
	if err := uc.DB.Save(&user).Error; err != nil {
		utils.ErrorLogger.Printf("Update user failed: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("Update failed"))
		return
	}

	c.JSON(http.StatusOK, user)
}

// DeleteUser
func (uc *UserController) DeleteUser(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	result := uc.DB.Delete(&models.User{}, id)
	if result.Error != nil {
		utils.ErrorLogger.Printf("Delete user failed: %v", result.Error)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("Delete failed"))
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondError(c, http.StatusNotFound, errors.New("User not found"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
