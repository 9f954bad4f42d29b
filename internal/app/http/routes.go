package routes

import (
	"concierge-app/config"
	"concierge-app/internal/api/checkout"
	siteapi "concierge-app/internal/api/site"
	"concierge-app/internal/api/stripewebhook"
	"concierge-app/internal/api/subscribe"
	"concierge-app/internal/domain/pricing"
	"concierge-app/internal/infra/payments"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, pay *payments.Client) {
	prices := pricing.NewAllowList(
		config.PRICE_ID_BASIC,
		config.PRICE_ID_PRO,
		config.PRICE_ID_ENTERPRISE,
	)

	checkoutHandler := checkout.NewHandler(pay, prices, config.APP_URL)
	subscribeHandler := subscribe.NewHandler(pay, config.APP_URL)
	webhookHandler := stripewebhook.NewHandler(config.STRIPE_WEBHOOK_SECRET, stripewebhook.NewLogHandlers())

	// Webhook stays outside any body-touching middleware: signature
	// verification needs the raw bytes Stripe sent.
	r.POST("/webhook", webhookHandler.Handle)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/site-config", siteapi.GetSiteConfig)

	r.POST("/create-checkout-session", checkoutHandler.Create)
	r.POST("/create-subscription", subscribeHandler.Create)
}
