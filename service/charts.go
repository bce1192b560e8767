package service

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gripdash/gripdash/chart"
)

// attachCharts adds the chart datasets computed from the indication
// set. The heatmap takes the filter query, the breakdowns always cover
// the full table.
func (service *Service) attachCharts(group *gin.RouterGroup) {
	group.GET("/charts/heatmap", func(c *gin.Context) {
		filter, ok := filterFromQuery(c)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, chart.BuildHeatmap(filter.Apply(service.data.Records)))
	})

	group.GET("/charts/areas", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"data": chart.AreaBreakdown(service.data.Records)})
	})

	group.GET("/charts/scores", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"data": chart.ScoreDistribution(service.data.Records)})
	})
}
