package v1

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/ahwethan/swiss-ephemeris-api/internal/domain/charts"
	"github.com/ahwethan/swiss-ephemeris-api/internal/domain/horoscope"
	"github.com/ahwethan/swiss-ephemeris-api/internal/pkg/metrics"
	"github.com/ahwethan/swiss-ephemeris-api/internal/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ChartHandler defines the interface for handling chart archive operations
type ChartHandler interface {
	Create(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

// ChartHandler struct holds the services
type chartHandler struct {
	computeService horoscope.ComputeService
	archiveService charts.ChartArchiveService
	collector      *metrics.Collector
}

// NewChartHandler creates a new ChartHandler
func NewChartHandler(computeService horoscope.ComputeService, archiveService charts.ChartArchiveService, collector *metrics.Collector) ChartHandler {
	return &chartHandler{
		computeService: computeService,
		archiveService: archiveService,
		collector:      collector,
	}
}

// Create casts a chart and stores it in the archive
func (handler *chartHandler) Create(ctx *gin.Context) {

	var request HoroscopeRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Error = fmt.Sprintf("invalid chart request: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Error = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	started := time.Now()

	chart, err := handler.computeService.Compute(ctx, request.ChartInput())
	if err != nil {
		handler.observeChart(requestedHouseSystem(&request), "error", started)
		var errorResponse ErrorResponse
		errorResponse.Error = fmt.Sprintf("error computing chart: %v", err.Error())
		ctx.JSON(http.StatusInternalServerError, errorResponse)
		return
	}

	handler.observeChart(string(chart.HouseSystemUsed), "ok", started)
	handler.observeGeocode(chart.Location.Source)

	record, err := handler.archiveService.Save(ctx, chart)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Error = fmt.Sprintf("error archiving chart: %v", err.Error())
		ctx.JSON(http.StatusInternalServerError, errorResponse)
		return
	}

	ctx.JSON(http.StatusCreated, ChartArchiveResponse{
		Success:             true,
		ChartRecordResponse: newChartRecordResponse(record, true),
	})
}

// List fetches archived charts optionally with query parameters
func (handler *chartHandler) List(ctx *gin.Context) {
	query := charts.NewChartQuery()

	if sunSign := ctx.Query("sunSign"); len(sunSign) > 0 {
		query.SunSign = sunSign
	}

	if moonSign := ctx.Query("moonSign"); len(moonSign) > 0 {
		query.MoonSign = moonSign
	}

	if houseSystem := ctx.Query("houseSystem"); len(houseSystem) > 0 {
		query.HouseSystem = houseSystem
	}

	if chartTimeAfter := ctx.Query("chartTimeAfter"); len(chartTimeAfter) > 0 {
		parsedTime, err := time.Parse(time.RFC3339, chartTimeAfter)
		if err == nil {
			query.ChartTimeAfter = parsedTime
		}
	}

	if limit := ctx.Query("limit"); len(limit) > 0 {
		query.Limit = utils.ConvertToInt(limit)
	}

	if offset := ctx.Query("offset"); len(offset) > 0 {
		query.Offset = utils.ConvertToInt(offset)
	}

	if sortBy := ctx.Query("sortBy"); len(sortBy) > 0 {
		query.SortBy = sortBy
	}

	if sortOrder := ctx.Query("sortOrder"); len(sortOrder) > 0 {
		query.SortOrder = sortOrder
	}

	if err := query.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Error = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	records, err := handler.archiveService.List(ctx, query)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Error = fmt.Sprintf("list query failed: %v", err.Error())
		ctx.JSON(http.StatusInternalServerError, errorResponse)
		return
	}

	var listResponse = []ChartRecordResponse{}
	for _, record := range records {
		listResponse = append(listResponse, newChartRecordResponse(record, false))
	}

	ctx.JSON(http.StatusOK, ChartListResponse{
		Success: true,
		Count:   len(listResponse),
		Charts:  listResponse,
	})
}

// GetByID fetches one archived chart with its full payload
func (handler *chartHandler) GetByID(ctx *gin.Context) {
	chartID := ctx.Param("id")

	record, err := handler.archiveService.GetByID(ctx, chartID)
	if err != nil {
		if errors.Is(err, charts.ErrChartNotFound) {
			var errorResponse ErrorResponse
			errorResponse.Error = fmt.Sprintf("chart with id %s not found", chartID)
			ctx.JSON(http.StatusNotFound, errorResponse)
			return
		}
		var errorResponse ErrorResponse
		errorResponse.Error = fmt.Sprintf("error fetching chart with id %s: %v", chartID, err.Error())
		ctx.JSON(http.StatusInternalServerError, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, ChartArchiveResponse{
		Success:             true,
		ChartRecordResponse: newChartRecordResponse(record, true),
	})
}

// DeleteByID removes an archived chart
func (handler *chartHandler) DeleteByID(ctx *gin.Context) {
	chartID := ctx.Param("id")

	if err := handler.archiveService.DeleteByID(ctx, chartID); err != nil {
		if errors.Is(err, charts.ErrChartNotFound) {
			var errorResponse ErrorResponse
			errorResponse.Error = fmt.Sprintf("chart with id %s not found", chartID)
			ctx.JSON(http.StatusNotFound, errorResponse)
			return
		}
		var errorResponse ErrorResponse
		errorResponse.Error = fmt.Sprintf("error deleting chart with id %s: %v", chartID, err.Error())
		ctx.JSON(http.StatusInternalServerError, errorResponse)
		return
	}

	var infoResponse InfoResponse
	infoResponse.Success = true
	infoResponse.Message = fmt.Sprintf("deleted chart with id %s", chartID)
	ctx.JSON(http.StatusNoContent, infoResponse)
}

func (handler *chartHandler) observeChart(houseSystem, status string, started time.Time) {
	if handler.collector == nil {
		return
	}
	handler.collector.ObserveChartComputed(houseSystem, status, time.Since(started).Seconds())
}

func (handler *chartHandler) observeGeocode(source string) {
	if handler.collector == nil {
		return
	}
	handler.collector.ObserveGeocode(geocodeResult(source))
}
