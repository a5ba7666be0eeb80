package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hotel-backoffice/controllers"
	"hotel-backoffice/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func SetupRouter(
	rmc *controllers.RoomController,
	sc *controllers.SalesController,
	rpc *controllers.ReportController,
	stc *controllers.SettingsController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/login", controllers.Login)
		auth.POST("/logout", controllers.Logout)
	}

	// everything below requires a valid session
	protected := api.Group("")
	protected.Use(middleware.AuthRequired())
	{
		protected.GET("/dashboard", rpc.GetDashboard)

		inventory := protected.Group("/inventory")
		{
			inventory.GET("", controllers.GetInventoryItems)
			inventory.POST("/create", controllers.CreateInventoryItem)
			inventory.PUT("/:id/update", controllers.UpdateInventoryItem)
			inventory.DELETE("/:id/delete", controllers.DeleteInventoryItem)
		}

		rooms := protected.Group("/rooms")
		{
			rooms.GET("", rmc.GetRooms)
			rooms.POST("/create", rmc.CreateRoom)
			rooms.PUT("/:id/update", rmc.UpdateRoom)
			rooms.DELETE("/:id/delete", rmc.DeleteRoom)
		}

		guests := protected.Group("/guests")
		{
			guests.GET("", controllers.GetGuests)
			guests.POST("/create", controllers.CreateGuest)
			guests.PUT("/:id/update", controllers.UpdateGuest)
			guests.DELETE("/:id/delete", controllers.DeleteGuest)
		}

		foodItems := protected.Group("/food-items")
		{
			foodItems.GET("", controllers.GetFoodItems)
			foodItems.POST("/create", controllers.CreateFoodItem)
			foodItems.PUT("/:id/update", controllers.UpdateFoodItem)
			foodItems.DELETE("/:id/delete", controllers.DeleteFoodItem)
		}

		salesBills := protected.Group("/sales-bills")
		{
			salesBills.GET("", sc.GetBills)
			salesBills.POST("/create", sc.CreateBill)
			salesBills.GET("/:id", sc.GetBillDetail)
			salesBills.DELETE("/:id/delete", sc.DeleteBill)
		}

		finance := protected.Group("/finance")
		{
			finance.GET("/balance-sheet", rpc.GetBalanceSheet)
		}

		expenses := protected.Group("/expenses")
		{
			expenses.GET("", controllers.GetExpenses)
			expenses.POST("/create", controllers.CreateExpense)
			expenses.PUT("/:id/update", controllers.UpdateExpense)
			expenses.DELETE("/:id/delete", controllers.DeleteExpense)
		}

		employees := protected.Group("/employees")
		{
			employees.GET("", controllers.GetEmployees)
			employees.POST("/create", controllers.CreateEmployee)
			employees.PUT("/:id/update", controllers.UpdateEmployee)
			employees.DELETE("/:id/delete", controllers.DeleteEmployee)
		}

		salaryPayments := protected.Group("/salary-payments")
		{
			salaryPayments.GET("", controllers.GetSalaryPayments)
			salaryPayments.POST("/create", controllers.CreateSalaryPayment)
			salaryPayments.DELETE("/:id/delete", controllers.DeleteSalaryPayment)
		}

		debtors := protected.Group("/debtors")
		{
			debtors.GET("", controllers.GetDebtors)
			debtors.POST("/create", controllers.CreateDebtor)
			debtors.PUT("/:id/update", controllers.UpdateDebtor)
			debtors.DELETE("/:id/delete", controllers.DeleteDebtor)
		}

		creditors := protected.Group("/creditors")
		{
			creditors.GET("", controllers.GetCreditors)
			creditors.POST("/create", controllers.CreateCreditor)
			creditors.PUT("/:id/update", controllers.UpdateCreditor)
			creditors.DELETE("/:id/delete", controllers.DeleteCreditor)
		}

		settings := protected.Group("/settings")
		{
			settings.GET("/export", stc.Export)
			settings.POST("/import", stc.Import)
			settings.POST("/delete-all", stc.DeleteAll)
		}
	}

	return r
}
