package main

import (
	"time"

	"concierge-app/config"
	routes "concierge-app/internal/app/http"
	"concierge-app/internal/infra/payments"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	config.LoadEnv()

	// One configured Stripe client for the whole process; handlers get it
	// injected so they stay testable with a fake.
	pay := payments.NewClient(config.STRIPE_SECRET_KEY)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.CORS_ORIGIN},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, pay)

	r.Run(":" + config.PORT)
}
