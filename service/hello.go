package service

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gripdash/gripdash/share"
)

// attachHello adds the liveness probe.
func (service *Service) attachHello(group *gin.RouterGroup) {
	group.GET("/hello", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"MESSAGE":     "HELLO, WORLD",
			"SERVER_TIME": time.Now().Format(time.RFC3339),
			"VERSION":     share.VERSION,
			"PRVERSION":   share.PRVERSION,
			"APP":         share.App.Name,
			"APP_VERSION": share.App.Version,
			"TARGET":      service.data.Target,
		})
	})
}
