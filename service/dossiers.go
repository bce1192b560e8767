package service

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gripdash/gripdash/chart"
	"github.com/gripdash/gripdash/dossier"
)

// attachDossiers adds the deep-dive dossier routes.
func (service *Service) attachDossiers(group *gin.RouterGroup) {
	group.GET("/dossiers", func(c *gin.Context) {
		names := service.data.Dossiers.Names()
		c.JSON(http.StatusOK, gin.H{"data": names, "total": len(names)})
	})

	group.GET("/dossiers/:name", func(c *gin.Context) {
		d, ok := service.dossierOf(c)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, d)
	})

	group.GET("/dossiers/:name/radar", func(c *gin.Context) {
		d, ok := service.dossierOf(c)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, chart.BuildRadar(d))
	})

	group.GET("/dossiers/:name/network", func(c *gin.Context) {
		d, ok := service.dossierOf(c)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, chart.BuildNetwork(service.data.Target, d))
	})
}

// dossierOf resolves the :name parameter, answering 404 itself when the
// dossier is unknown.
func (service *Service) dossierOf(c *gin.Context) (*dossier.Dossier, bool) {
	name := c.Param("name")
	d, err := service.data.Dossiers.Get(name)
	if err != nil {
		respondError(c, http.StatusNotFound, "not_found",
			fmt.Sprintf("dossier '%s' not found", name))
		return nil, false
	}
	return d, true
}
