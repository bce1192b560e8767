package service

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gripdash/gripdash/excel"
	"github.com/gripdash/gripdash/report"
)

const (
	mimePDF  = "application/pdf"
	mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// attachExport adds the report and workbook download routes.
func (service *Service) attachExport(group *gin.RouterGroup) {
	group.GET("/export/capability", service.exportCapability)
	group.GET("/export/discovery.pdf", service.exportDiscoveryPDF)
	group.GET("/export/discovery.xlsx", service.exportDiscoveryBook)
	group.GET("/export/dossiers/:file", service.exportDossier)
}

// exportCapability reports whether the PDF renderer works. Callers use
// it to disable download controls instead of failing on click.
func (service *Service) exportCapability(c *gin.Context) {
	if err := report.Available(); err != nil {
		c.JSON(http.StatusOK, gin.H{"available": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"available": true})
}

// exportDiscoveryPDF renders the discovery report over the filtered
// table, the full table when no filter query is given.
func (service *Service) exportDiscoveryPDF(c *gin.Context) {
	if err := report.Available(); err != nil {
		respondError(c, http.StatusServiceUnavailable, "export_unavailable",
			fmt.Sprintf("export unavailable: %s", err.Error()))
		return
	}

	filter, ok := filterFromQuery(c)
	if !ok {
		return
	}

	content, err := report.Discovery(service.data.Target, filter.Apply(service.data.Records),
		&report.Option{Logo: service.conf.Logo})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "export_failed", err.Error())
		return
	}
	attach(c, report.DiscoveryFilename(service.data.Target, time.Now()), mimePDF, content)
}

func (service *Service) exportDiscoveryBook(c *gin.Context) {
	filter, ok := filterFromQuery(c)
	if !ok {
		return
	}

	content, err := excel.Discovery(service.data.Target, filter.Apply(service.data.Records))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "export_failed", err.Error())
		return
	}
	attach(c, excel.DiscoveryFilename(service.data.Target, time.Now()), mimeXLSX, content)
}

// exportDossier renders one deep-dive report. The route matches any
// file name under /export/dossiers, anything but <name>.pdf is a 404.
func (service *Service) exportDossier(c *gin.Context) {
	name, found := strings.CutSuffix(c.Param("file"), ".pdf")
	if !found || name == "" {
		respondError(c, http.StatusNotFound, "not_found",
			fmt.Sprintf("%s is not a route", c.Request.URL.Path))
		return
	}

	d, err := service.data.Dossiers.Get(name)
	if err != nil {
		respondError(c, http.StatusNotFound, "not_found",
			fmt.Sprintf("dossier '%s' not found", name))
		return
	}

	if err := report.Available(); err != nil {
		respondError(c, http.StatusServiceUnavailable, "export_unavailable",
			fmt.Sprintf("export unavailable: %s", err.Error()))
		return
	}

	content, err := report.DeepDive(service.data.Target, d.Name, d,
		&report.Option{Logo: service.conf.Logo})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "export_failed", err.Error())
		return
	}
	attach(c, report.DossierFilename(service.data.Target, d.Name, time.Now()), mimePDF, content)
}

func attach(c *gin.Context, filename string, mime string, content []byte) {
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, mime, content)
}
