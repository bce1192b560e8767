// Package service exposes the analysis over HTTP: the frequency table,
// the dossiers, the chart shapes, and the report downloads.
package service

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gripdash/gripdash/config"
	"github.com/yaoapp/kun/log"
)

// Service is one running HTTP server over a loaded dataset.
type Service struct {
	conf   config.Config
	data   *Data
	router *gin.Engine
	server *http.Server
}

// New loads the datasets and builds the service.
func New(conf config.Config) (*Service, error) {
	data, err := Load(conf)
	if err != nil {
		return nil, err
	}

	service := &Service{conf: conf, data: data}
	service.router = service.buildRouter()
	service.server = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", conf.Host, conf.Port),
		Handler:           service.router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return service, nil
}

// Router returns the gin engine, handlers attached.
func (service *Service) Router() *gin.Engine {
	return service.router
}

// Start serves until Stop is called. It blocks, a server closed by
// Stop returns nil.
func (service *Service) Start() error {
	log.Info("service listening on %s", service.server.Addr)
	err := service.server.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Stop drains in-flight requests and shuts the server down.
func (service *Service) Stop(ctx context.Context) error {
	return service.server.Shutdown(ctx)
}

// buildRouter attaches every feature group under /api.
func (service *Service) buildRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestID(), logger())

	if len(service.conf.AllowFrom) > 0 {
		router.Use(crossOrigin(service.conf.AllowFrom))
	}

	api := router.Group("/api")
	service.attachHello(api)
	service.attachIndications(api)
	service.attachCharts(api)
	service.attachDossiers(api)
	service.attachLandscape(api)
	service.attachExport(api)

	router.NoRoute(func(c *gin.Context) {
		respondError(c, http.StatusNotFound, "not_found", fmt.Sprintf("%s is not a route", c.Request.URL.Path))
	})
	return router
}
