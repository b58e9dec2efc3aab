package middleware

import (
	"fmt"
	"net"
	"strings"

	"github.com/gin-gonic/gin"

	"voice-skill/pkg/response"
)

// AllowIP rejects clients outside the configured allowlist.
func (m Middleware) AllowIP() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := validateIP(m.allowedIPs, c.ClientIP()); err != nil {
			m.l.Warnf(c.Request.Context(), "middleware.AllowIP: %v", err)
			response.Forbidden(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

// validateIP checks ip against exact entries and CIDR ranges.
func validateIP(allowed []string, ip string) error {
	if len(allowed) == 0 {
		return nil // No IP restriction
	}

	parsed := net.ParseIP(ip)
	for _, allowedIP := range allowed {
		if ip == allowedIP {
			return nil
		}

		if strings.Contains(allowedIP, "/") {
			_, ipNet, err := net.ParseCIDR(allowedIP)
			if err != nil {
				continue
			}
			if parsed != nil && ipNet.Contains(parsed) {
				return nil
			}
		}
	}

	return fmt.Errorf("IP %s not whitelisted", ip)
}
