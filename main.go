// File: tourify/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tourify/clients"
	"tourify/config"
	"tourify/handlers"
	"tourify/middleware"
	"tourify/routes"
	"tourify/services/reservation"
	"tourify/services/tracking"
	"tourify/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitSessionCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(routes.CORSMiddleware())

	upstreamTimeout := time.Duration(config.AppConfig.UpstreamTimeout) * time.Second

	// Upstream API clients.
	catalogClient := clients.NewCatalogClient(config.AppConfig.CatalogAPIURL, upstreamTimeout, logger)
	reservationClient := clients.NewReservationClient(config.AppConfig.ReservationAPIURL, upstreamTimeout, logger)

	var paymentGateway clients.PaymentGateway
	if config.AppConfig.PaymentProvider == "stripe" {
		stripe.Key = config.AppConfig.StripeKey
		paymentGateway = clients.NewStripePaymentGateway(
			config.AppConfig.PaymentSuccessURL,
			config.AppConfig.PaymentCancelURL,
			config.AppConfig.PaymentCurrency,
			logger,
		)
		logger.Sugar().Info("main: using Stripe Checkout payment gateway")
	} else {
		paymentGateway = clients.NewAgencyPaymentGateway(config.AppConfig.PaymentGatewayURL, upstreamTimeout, logger)
		logger.Sugar().Infof("main: using agency payment gateway at %s", config.AppConfig.PaymentGatewayURL)
	}

	// Session store and services.
	sessionStore := reservation.NewRedisSessionStore(
		utils.GetSessionCacheClient(),
		time.Duration(config.AppConfig.SessionTTLMinutes)*time.Minute,
	)
	flowService := reservation.NewFlowService(catalogClient, reservationClient, paymentGateway, sessionStore, logger)
	trackingService := tracking.NewService(reservationClient, logger)

	reservationHandler := handlers.NewReservationHandler(flowService)
	trackingHandler := handlers.NewTrackingHandler(trackingService)

	routes.RegisterReservationRoutes(router, reservationHandler)
	routes.RegisterTrackingRoutes(router, trackingHandler)
	routes.RegisterHealthRoute(router)

	utils.StartHealthMonitor(utils.GetSessionCacheClient(), map[string]string{
		"catalog":     config.AppConfig.CatalogAPIURL,
		"reservation": config.AppConfig.ReservationAPIURL,
	})

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
