package v1

import (
	"github.com/ahwethan/swiss-ephemeris-api/internal/domain/charts"
	"github.com/ahwethan/swiss-ephemeris-api/internal/domain/horoscope"
	"github.com/ahwethan/swiss-ephemeris-api/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine,
	computeService horoscope.ComputeService,
	archiveService charts.ChartArchiveService,
	collector *metrics.Collector) {

	healthHandler := NewHealthHandler()
	r.GET("/health", healthHandler.Status)

	if collector != nil {
		r.GET("/metrics", gin.WrapH(collector.Handler()))
	}

	api := r.Group(BasePath) // lookup in version file

	// Horoscope Routes
	horoscopeHandler := NewHoroscopeHandler(computeService, collector)
	api.GET("/horoscope", horoscopeHandler.ComputeFromQuery)
	api.POST("/horoscope", horoscopeHandler.Compute)
	api.GET("/positions", horoscopeHandler.Positions)

	// Chart Archive Routes
	chartHandler := NewChartHandler(computeService, archiveService, collector)
	api.POST("/charts", chartHandler.Create)
	api.GET("/charts", chartHandler.List)
	api.GET("/charts/:id", chartHandler.GetByID)
	api.DELETE("/charts/:id", chartHandler.DeleteByID)
}
