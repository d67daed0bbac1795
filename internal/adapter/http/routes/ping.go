package routes

import (
	"net/http"

	response "waafipay_hpp/internal/adapter/http/dto/response"

	"github.com/gin-gonic/gin"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, response.PingResponse{Message: "pong"})
	})
}
