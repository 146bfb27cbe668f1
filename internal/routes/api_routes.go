package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/PierrunoYT/financeflow/internal/handlers"
)

// RegisterAPIRoutes wires all resource handlers under /api. The database
// handle is injected here once and threaded into every handler.
func RegisterAPIRoutes(r *gin.Engine, db *gorm.DB) {
	api := r.Group("/api")
	{
		categoryHandler := handlers.NewCategoryHandler(db)
		categories := api.Group("/categories")
		{
			categories.GET("", categoryHandler.List)
			categories.POST("", categoryHandler.Create)
			categories.PUT("/:id", categoryHandler.Update)
			categories.DELETE("/:id", categoryHandler.Delete)
		}

		transactionHandler := handlers.NewTransactionHandler(db)
		transactions := api.Group("/transactions")
		{
			transactions.GET("", transactionHandler.List)
			transactions.POST("", transactionHandler.Create)
			transactions.PUT("/:id", transactionHandler.Update)
			transactions.DELETE("/:id", transactionHandler.Delete)
		}

		budgetHandler := handlers.NewBudgetHandler(db)
		budgets := api.Group("/budgets")
		{
			budgets.GET("", budgetHandler.List)
			budgets.POST("", budgetHandler.Create)
			budgets.PUT("/:id", budgetHandler.Update)
			budgets.DELETE("/:id", budgetHandler.Delete)
		}
	}
}
