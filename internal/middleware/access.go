package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"pujo-gallery/internal/conf"
)

// AllowHost guards debug endpoints to the hosts in Server.DebugWhiteList.
// An empty list allows everyone.
func AllowHost() gin.HandlerFunc {
	return func(c *gin.Context) {
		whiteList := conf.ServerSetting.DebugWhiteList
		if len(whiteList) == 0 {
			c.Next()
			return
		}
		host := c.RemoteIP()
		for _, v := range whiteList {
			if v == host {
				c.Next()
				return
			}
		}
		c.AbortWithStatus(http.StatusForbidden)
	}
}
