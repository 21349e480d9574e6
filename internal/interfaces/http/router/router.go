package router

import (
	"github.com/gin-gonic/gin"

	"github.com/Sir-Wagyu/e-commerce-app/internal/interfaces/http/handler"
)

func RegisterRoutes(
	r *gin.Engine,
	transactionHandler *handler.TransactionHandler,
	customerHandler *handler.CustomerHandler,
	productHandler *handler.ProductHandler,
) {
	r.GET("/health", transactionHandler.HealthCheck)

	api := r.Group("/api")
	{
		api.POST("/transactions", transactionHandler.Create)
		api.GET("/transactions", transactionHandler.GetAll)
		api.GET("/transactions/:id", transactionHandler.GetByID)
		api.PUT("/transactions/:id/status", transactionHandler.UpdateStatus)
		api.DELETE("/transactions/:id", transactionHandler.Delete)

		api.POST("/customers", customerHandler.Create)
		api.GET("/customers", customerHandler.GetAll)
		api.GET("/customers/:id", customerHandler.GetByID)
		api.PUT("/customers/:id", customerHandler.Update)
		api.DELETE("/customers/:id", customerHandler.Delete)
		api.GET("/customers/:id/transactions", transactionHandler.GetByCustomer)

		api.GET("/users/:userId/customer", customerHandler.GetByUserID)

		api.POST("/products", productHandler.Create)
		api.GET("/products", productHandler.GetAll)
		api.GET("/products/:id", productHandler.GetByID)
	}
}
