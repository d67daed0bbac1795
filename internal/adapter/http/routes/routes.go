package routes

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	_ "waafipay_hpp/docs" // swag generated
	"waafipay_hpp/internal/adapter/http/handlers"
	"waafipay_hpp/internal/config"
	"waafipay_hpp/internal/infrastructure/payments"
	"waafipay_hpp/internal/usecase"
	"waafipay_hpp/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 10 * time.Second

// Run will start the server
func Run() {
	cfg := config.Load()

	if missing := cfg.Merchant.Missing(); len(missing) > 0 && !cfg.GatewayMock {
		log.Printf("[hpp][config] missing merchant credentials: %s", strings.Join(missing, ", "))
	}

	var paymentGateway interfaces.IPaymentGateway
	waafiGateway, err := payments.NewWaafiPayGateway(cfg.Merchant.BaseURL, cfg.GatewayTimeout, cfg.GatewayMock)
	if err != nil {
		log.Printf("WaafiPay gateway not configured: %v", err)
	} else {
		paymentGateway = waafiGateway
	}

	hppUseCase := usecase.NewHPPUseCase(cfg.Merchant, paymentGateway)
	hppHandler := handlers.NewHPPHandler(hppUseCase)

	router := newRouter(hppHandler)

	srv := &http.Server{
		Addr:    ":" + strconv.Itoa(cfg.Port),
		Handler: router,
	}

	go func() {
		log.Printf("Starting API server on port %d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to startup the application: %v", err.Error())
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Printf("Shutting down gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Forced shutdown: %v", err)
	}
}

func newRouter(hppHandler *handlers.HPPHandler) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Non-POST requests on HPP routes get the JSON 405 body instead of gin's 404.
	router.HandleMethodNotAllowed = true
	router.NoMethod(handlers.MethodNotAllowed)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addHPPRoutes(v1, hppHandler)

	return router
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
