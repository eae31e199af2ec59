package router

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/food-order-app/controllers"
	"github.com/yeremiapane/food-order-app/middlewares"
	"github.com/yeremiapane/food-order-app/utils"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	// Apply security middlewares
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	// Inisialisasi controller
	authCtrl := controllers.NewAuthController(db)
	customerCtrl := controllers.NewCustomerController(db)
	userCtrl := controllers.NewUserController(db)
	menuCtrl := controllers.NewMenuController(db)
	orderCtrl := controllers.NewOrderController(db)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		sqlDB, err := utils.GetDB().DB()
		if err == nil {
			err = sqlDB.Ping()
		}
		if err != nil {
			utils.ErrorLogger.Printf("Database ping failed: %v", err)
			utils.RespondError(c, http.StatusInternalServerError, errors.New("Database connection failed"))
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Pong: Database connected"})
	})

	// Rate limiter lebih ketat untuk login/register
	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/register", authCtrl.Register)
		public.POST("/login", authCtrl.Login)
		public.POST("/logout", authCtrl.Logout)
	}

	// Katalog menu terbuka tanpa auth
	r.GET("/menus", menuCtrl.GetAllMenus)

	// Manajemen user staf (tbl_users)
	r.GET("/users", userCtrl.GetAllUsers)
	r.GET("/users/:id", userCtrl.GetUserByID)
	r.POST("/users", userCtrl.CreateUser)
	r.PUT("/users/:id", userCtrl.UpdateUser)
	r.DELETE("/users/:id", userCtrl.DeleteUser)

	// ----------------------------------------------------------------
	//                      PROTECTED ROUTES
	// ----------------------------------------------------------------
	auth := r.Group("/")
	auth.Use(middlewares.AuthMiddleware())
	{
		auth.GET("/customers", customerCtrl.GetAllCustomers)
		auth.POST("/orders", orderCtrl.PlaceOrder)
		auth.GET("/orders/summary", orderCtrl.GetOrderSummary)
	}

	return r
}
