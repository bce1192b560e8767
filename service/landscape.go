package service

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gripdash/gripdash/dataset"
)

// attachLandscape adds the competitive landscape routes.
func (service *Service) attachLandscape(group *gin.RouterGroup) {
	group.GET("/landscape", func(c *gin.Context) {
		groups := dataset.GroupPrograms(service.data.Programs)
		c.JSON(http.StatusOK, gin.H{"data": groups, "total": len(service.data.Programs)})
	})

	group.GET("/landscape/programs", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"data":  service.data.Programs,
			"total": len(service.data.Programs),
		})
	})
}
