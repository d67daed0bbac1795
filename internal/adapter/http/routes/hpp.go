package routes

import (
	"waafipay_hpp/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathHPP = "/hpp"
)

func addHPPRoutes(rg *gin.RouterGroup, hppHandler *handlers.HPPHandler) {
	// Unified endpoint; the body's action selects the operation.
	rg.POST(PathHPP, hppHandler.Dispatch)

	hpp := rg.Group(PathHPP)
	{
		hpp.POST("/purchase", hppHandler.Purchase)
		hpp.POST("/refund", hppHandler.Refund)
		hpp.POST("/withdraw", hppHandler.Refund)
		hpp.POST("/transaction-info", hppHandler.TransactionInfo)
	}
}
