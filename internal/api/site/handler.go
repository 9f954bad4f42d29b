package site

import (
	"net/http"

	"concierge-app/config"

	"github.com/gin-gonic/gin"
)

// GetSiteConfig exposes the values the marketing site's browser code needs:
// the publishable key for the client-side checkout redirect and the price
// ids behind the pricing cards. Nothing secret belongs in this payload.
func GetSiteConfig(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"publishableKey": config.STRIPE_PUBLISHABLE_KEY,
		"prices": gin.H{
			"basic":      config.PRICE_ID_BASIC,
			"pro":        config.PRICE_ID_PRO,
			"enterprise": config.PRICE_ID_ENTERPRISE,
		},
	})
}
