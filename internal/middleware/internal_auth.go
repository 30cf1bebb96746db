package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"shop-payout-api/internal/config"
	"shop-payout-api/internal/constant"
	"shop-payout-api/internal/utils"
)

// InternalAuth 管理接口鉴权：内部 token + IP 白名单
func InternalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("X-Internal-Token")
		if token != config.C.Security.InternalToken {
			c.JSON(http.StatusUnauthorized, utils.Error(constant.CodeUnauthorized))
			c.Abort()
			return
		}

		// IP 白名单
		ip := c.ClientIP()
		whitelist := []string{"127.0.0.1", "192.168.", "10.", "::1"}
		allowed := false
		for _, prefix := range whitelist {
			if strings.HasPrefix(ip, prefix) {
				allowed = true
				break
			}
		}
		if !allowed {
			c.JSON(http.StatusForbidden, utils.Error(constant.CodeIPNotWhitelisted))
			c.Abort()
			return
		}

		c.Next()
	}
}
