package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"bundlepay/cmd/fx/checkout_fx"
	"bundlepay/cmd/fx/config_fx"
	"bundlepay/cmd/fx/gateway_fx"
	"bundlepay/cmd/fx/records_fx"
	"bundlepay/cmd/fx/sms_fx"
	"bundlepay/internal/api/controllers"
	"bundlepay/internal/infra"
	"bundlepay/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on process environment")
	}

	app := fx.New(
		config_fx.Module,
		records_fx.Module,
		gateway_fx.Module,
		sms_fx.Module,
		checkout_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *infra.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server on :%s", cfg.Port)
				if err := engine.Run(":" + cfg.Port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	checkoutController *controllers.CheckoutController,
	healthController *controllers.HealthController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, checkoutController, healthController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	checkoutController *controllers.CheckoutController,
	healthController *controllers.HealthController) {

	r.GET("/test", healthController.Test)

	api := r.Group("/api")
	api.POST("/start-checkout", checkoutController.StartCheckout)
	api.POST("/payment-webhook", checkoutController.PaymentWebhook)
	api.GET("/check-status/:transaction_id", checkoutController.CheckStatus)
	api.POST("/cancel-transaction/:transaction_id", checkoutController.CancelTransaction)
}
