package service

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gripdash/gripdash/indication"
	"github.com/spf13/cast"
)

// attachIndications adds the indication listing and summary routes.
func (service *Service) attachIndications(group *gin.RouterGroup) {
	group.GET("/indications", service.listIndications)

	group.GET("/indications/summary", func(c *gin.Context) {
		c.JSON(http.StatusOK, indication.Summarize(service.data.Records))
	})

	group.GET("/indications/areas", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"data": indication.Areas(service.data.Records)})
	})

	group.GET("/approaches", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"data": indication.Approaches})
	})
}

// listIndications filters and orders the dataset from the query string.
// Unset dimensions stay open.
func (service *Service) listIndications(c *gin.Context) {
	filter, ok := filterFromQuery(c)
	if !ok {
		return
	}

	matched := filter.Apply(service.data.Records)
	c.JSON(http.StatusOK, gin.H{"data": matched, "total": len(matched)})
}

// filterFromQuery builds the record filter from the area, relevancy,
// min_score and sort query values, answering 400 itself when one is
// malformed. The heatmap and discovery exports share it with the
// listing.
func filterFromQuery(c *gin.Context) (indication.Filter, bool) {
	filter := indication.Filter{
		TherapeuticArea: c.Query("area"),
		Relevancy:       indication.Relevancy(c.Query("relevancy")),
		Sort:            c.Query("sort"),
	}

	if raw := c.Query("min_score"); raw != "" {
		min, err := cast.ToIntE(raw)
		if err != nil {
			respondError(c, http.StatusBadRequest, "bad_request",
				fmt.Sprintf("min_score '%s' is not an integer", raw))
			return filter, false
		}
		filter.MinScore = min
	}

	if !indication.ValidSort(filter.Sort) {
		respondError(c, http.StatusBadRequest, "bad_request",
			fmt.Sprintf("sort '%s' is not one of score_desc, score_asc, name, area", filter.Sort))
		return filter, false
	}
	return filter, true
}
