package types

import (
	"github.com/gin-gonic/gin"
)

// PremiumHeader marks a request as coming from a premium account. Stands in
// for the auth layer this service sits behind.
const PremiumHeader = "X-Premium-User"

// premiumContextKey is where the premium flag lands in the gin context
const premiumContextKey = "premium"

// SetPremium records the account tier on the request context
func SetPremium(c *gin.Context, premium bool) {
	c.Set(premiumContextKey, premium)
}

// IsPremium reports the account tier. Falls back to the header when no
// middleware resolved the flag, which keeps isolated handler tests honest.
func IsPremium(c *gin.Context) bool {
	if v, ok := c.Get(premiumContextKey); ok {
		b, _ := v.(bool)
		return b
	}
	return c.GetHeader(PremiumHeader) == "true"
}
