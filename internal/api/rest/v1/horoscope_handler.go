package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/ahwethan/swiss-ephemeris-api/internal/domain/geo"
	"github.com/ahwethan/swiss-ephemeris-api/internal/domain/horoscope"
	"github.com/ahwethan/swiss-ephemeris-api/internal/pkg/metrics"
	"github.com/ahwethan/swiss-ephemeris-api/internal/pkg/utils"

	"github.com/gin-gonic/gin"
)

// HoroscopeHandler defines the interface for handling chart computation requests
type HoroscopeHandler interface {
	Compute(ctx *gin.Context)
	ComputeFromQuery(ctx *gin.Context)
	Positions(ctx *gin.Context)
}

// HoroscopeHandler struct holds the services
type horoscopeHandler struct {
	computeService horoscope.ComputeService
	collector      *metrics.Collector
}

// NewHoroscopeHandler creates a new HoroscopeHandler
func NewHoroscopeHandler(computeService horoscope.ComputeService, collector *metrics.Collector) HoroscopeHandler {
	return &horoscopeHandler{
		computeService: computeService,
		collector:      collector,
	}
}

// Compute handles the POST request to cast a horary chart
// @Summary Cast a horary chart
// @Description Compute a full horary chart for the given moment and place, including houses, aspects, dignities, lunar condition and planetary rulers. Omitted date and time default to now; an omitted location resolves to the configured default site.
// @Tags Horoscope
// @Accept json
// @Produce json
// @Param requestBody body HoroscopeRequest true "Chart parameters"
// @Success 200 {object} HoroscopeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /horoscope [post]
func (handler *horoscopeHandler) Compute(ctx *gin.Context) {

	var request HoroscopeRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Error = fmt.Sprintf("invalid chart request: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	handler.computeAndRespond(ctx, &request)
}

// ComputeFromQuery handles the GET request to cast a horary chart with query parameters
// @Summary Cast a horary chart from query parameters
// @Description Compute a horary chart; takes the same parameters as the POST form but as query values.
// @Tags Horoscope
// @Accept json
// @Produce json
// @Param date query string false "Chart date (YYYY-MM-DD)"
// @Param time query string false "Chart time (HH:MM or HH:MM:SS)"
// @Param timezone query string false "IANA timezone name"
// @Param location query string false "Free-text place name"
// @Param latitude query number false "Latitude in degrees, north positive"
// @Param longitude query number false "Longitude in degrees, east positive"
// @Param house_system query string false "House system (placidus/regiomontanus/porphyry/equal/whole_sign)"
// @Param question query string false "Horary question"
// @Success 200 {object} HoroscopeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /horoscope [get]
func (handler *horoscopeHandler) ComputeFromQuery(ctx *gin.Context) {
	request := horoscopeRequestFromQuery(ctx)
	handler.computeAndRespond(ctx, request)
}

// Positions handles the GET request for raw geocentric positions
// @Summary List raw body positions
// @Description Compute apparent geocentric ecliptic positions of the chart bodies for a moment, without houses or judgement layers.
// @Tags Horoscope
// @Accept json
// @Produce json
// @Param date query string false "Date (YYYY-MM-DD)"
// @Param time query string false "Time (HH:MM or HH:MM:SS)"
// @Param timezone query string false "IANA timezone name"
// @Success 200 {object} PositionsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /positions [get]
func (handler *horoscopeHandler) Positions(ctx *gin.Context) {
	request := PositionsRequest{
		Date:     ctx.Query("date"),
		Time:     ctx.Query("time"),
		Timezone: ctx.Query("timezone"),
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Error = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	positions, err := handler.computeService.Positions(ctx, request.PositionsInput())
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Error = fmt.Sprintf("error computing positions: %v", err.Error())
		ctx.JSON(http.StatusInternalServerError, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, PositionsResponse{Success: true, PositionSet: positions})
}

func (handler *horoscopeHandler) computeAndRespond(ctx *gin.Context, request *HoroscopeRequest) {
	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Error = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	started := time.Now()

	chart, err := handler.computeService.Compute(ctx, request.ChartInput())
	if err != nil {
		handler.observeChart(requestedHouseSystem(request), "error", started)
		var errorResponse ErrorResponse
		errorResponse.Error = fmt.Sprintf("error computing chart: %v", err.Error())
		ctx.JSON(http.StatusInternalServerError, errorResponse)
		return
	}

	handler.observeChart(string(chart.HouseSystemUsed), "ok", started)
	handler.observeGeocode(chart.Location.Source)

	ctx.JSON(http.StatusOK, HoroscopeResponse{Success: true, Chart: chart})
}

func (handler *horoscopeHandler) observeChart(houseSystem, status string, started time.Time) {
	if handler.collector == nil {
		return
	}
	handler.collector.ObserveChartComputed(houseSystem, status, time.Since(started).Seconds())
}

func (handler *horoscopeHandler) observeGeocode(source string) {
	if handler.collector == nil {
		return
	}
	handler.collector.ObserveGeocode(geocodeResult(source))
}

// horoscopeRequestFromQuery reads the chart parameters from query values,
// using the same keys as the JSON body form.
func horoscopeRequestFromQuery(ctx *gin.Context) *HoroscopeRequest {
	request := &HoroscopeRequest{}

	if date := ctx.Query("date"); len(date) > 0 {
		request.Date = date
	}

	if clock := ctx.Query("time"); len(clock) > 0 {
		request.Time = clock
	}

	if timezone := ctx.Query("timezone"); len(timezone) > 0 {
		request.Timezone = timezone
	}

	if location := ctx.Query("location"); len(location) > 0 {
		request.Location = location
	}

	if latitude := ctx.Query("latitude"); len(latitude) > 0 {
		if value, ok := utils.ConvertToFloat64(latitude); ok {
			request.Latitude = &value
		}
	}

	if longitude := ctx.Query("longitude"); len(longitude) > 0 {
		if value, ok := utils.ConvertToFloat64(longitude); ok {
			request.Longitude = &value
		}
	}

	if houseSystem := ctx.Query("house_system"); len(houseSystem) > 0 {
		request.HouseSystem = houseSystem
	}

	if question := ctx.Query("question"); len(question) > 0 {
		request.Question = question
	}

	return request
}

func requestedHouseSystem(request *HoroscopeRequest) string {
	if request.HouseSystem == "" {
		return string(horoscope.DefaultHouseSystem)
	}
	return request.HouseSystem
}

// geocodeResult maps a location source onto its metrics label.
func geocodeResult(source string) string {
	switch source {
	case geo.SourceNominatim:
		return metrics.GeocodeResultRemote
	case geo.SourceCache:
		return metrics.GeocodeResultCache
	case geo.SourceFallback:
		return metrics.GeocodeResultFallback
	default:
		return metrics.GeocodeResultRequest
	}
}
