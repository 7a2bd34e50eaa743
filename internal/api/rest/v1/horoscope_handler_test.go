//go:build unit
// +build unit

package v1

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ahwethan/swiss-ephemeris-api/internal/domain/ephemeris"
	"github.com/ahwethan/swiss-ephemeris-api/internal/domain/geo"
	"github.com/ahwethan/swiss-ephemeris-api/internal/domain/horoscope"
	"github.com/ahwethan/swiss-ephemeris-api/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func sampleChart() *horoscope.Chart {
	moment := time.Date(2024, 6, 2, 14, 30, 0, 0, time.UTC)

	return &horoscope.Chart{
		Moment:    moment,
		UTC:       moment,
		JulianDay: 2460464.1041666665,
		Timezone:  "UTC",
		Location: geo.Location{
			Name:      "Istanbul, Turkey",
			Latitude:  41.0082,
			Longitude: 28.9784,
			Source:    geo.SourceNominatim,
		},
		HouseSystemRequested: horoscope.Placidus,
		HouseSystemUsed:      horoscope.Placidus,
		Bodies: []horoscope.BodyPlacement{
			{
				BodyPosition: ephemeris.BodyPosition{Body: ephemeris.Sun, Longitude: 72.5},
				Sign:         ephemeris.Gemini,
				SignDegree:   12.5,
				House:        10,
			},
			{
				BodyPosition: ephemeris.BodyPosition{Body: ephemeris.Moon, Longitude: 225.0},
				Sign:         ephemeris.Scorpio,
				SignDegree:   15.0,
				House:        2,
			},
		},
	}
}

func TestHoroscopeHandler_Compute_Success(t *testing.T) {
	mockComputeService := new(MockComputeService)

	handler := NewHoroscopeHandler(mockComputeService, metrics.NewCollector())

	requestBody := `{"date": "2024-06-02", "time": "14:30", "house_system": "placidus"}`

	mockComputeService.
		On("Compute", mock.Anything, mock.Anything).
		Return(sampleChart(), nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/horoscope", bytes.NewBufferString(requestBody))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Compute(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
	assert.Contains(t, w.Body.String(), "Gemini")
	mockComputeService.AssertExpectations(t)
}

func TestHoroscopeHandler_Compute_InvalidJSON(t *testing.T) {
	mockComputeService := new(MockComputeService)

	handler := NewHoroscopeHandler(mockComputeService, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/horoscope", bytes.NewBufferString(`{not json`))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Compute(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestHoroscopeHandler_Compute_ValidationError(t *testing.T) {
	mockComputeService := new(MockComputeService)

	handler := NewHoroscopeHandler(mockComputeService, nil)

	requestBody := `{"date": "2024-13-45"}`

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/horoscope", bytes.NewBufferString(requestBody))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Compute(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "validation failed")
}

func TestHoroscopeHandler_Compute_UnpairedCoordinates(t *testing.T) {
	mockComputeService := new(MockComputeService)

	handler := NewHoroscopeHandler(mockComputeService, nil)

	requestBody := `{"latitude": 41.0082}`

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/horoscope", bytes.NewBufferString(requestBody))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Compute(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "latitude and longitude")
}

func TestHoroscopeHandler_Compute_ServiceError(t *testing.T) {
	mockComputeService := new(MockComputeService)

	handler := NewHoroscopeHandler(mockComputeService, metrics.NewCollector())

	mockComputeService.
		On("Compute", mock.Anything, mock.Anything).
		Return(nil, errors.New("ephemeris unavailable"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/horoscope", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Compute(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
	assert.Contains(t, w.Body.String(), "ephemeris unavailable")
	mockComputeService.AssertExpectations(t)
}

func TestHoroscopeHandler_ComputeFromQuery_Success(t *testing.T) {
	mockComputeService := new(MockComputeService)

	handler := NewHoroscopeHandler(mockComputeService, nil)

	mockComputeService.
		On("Compute", mock.Anything, mock.MatchedBy(func(input *horoscope.ChartInput) bool {
			return input.Date == "2024-06-02" &&
				input.Time == "14:30" &&
				input.Timezone == "Europe/Istanbul" &&
				input.Latitude != nil && *input.Latitude == 41.0082 &&
				input.Longitude != nil && *input.Longitude == 28.9784 &&
				input.HouseSystem == "regiomontanus"
		})).
		Return(sampleChart(), nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/horoscope?date=2024-06-02&time=14:30&timezone=Europe/Istanbul&latitude=41.0082&longitude=28.9784&house_system=regiomontanus", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.ComputeFromQuery(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
	mockComputeService.AssertExpectations(t)
}

func TestHoroscopeHandler_ComputeFromQuery_ValidationError(t *testing.T) {
	mockComputeService := new(MockComputeService)

	handler := NewHoroscopeHandler(mockComputeService, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/horoscope?house_system=koch", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.ComputeFromQuery(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "validation failed")
}

func TestHoroscopeHandler_Positions_Success(t *testing.T) {
	mockComputeService := new(MockComputeService)

	handler := NewHoroscopeHandler(mockComputeService, nil)

	moment := time.Date(2024, 6, 2, 14, 30, 0, 0, time.UTC)
	positionSet := &horoscope.PositionSet{
		Moment:        moment,
		UTC:           moment,
		JulianDay:     2460464.1041666665,
		Timezone:      "UTC",
		FullPrecision: true,
		Positions: []ephemeris.BodyPosition{
			{Body: ephemeris.Sun, Longitude: 72.5, Speed: 0.957},
		},
	}

	mockComputeService.
		On("Positions", mock.Anything, mock.Anything).
		Return(positionSet, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/positions?date=2024-06-02&time=14:30", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Positions(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
	assert.Contains(t, w.Body.String(), `"full_precision":true`)
	assert.Contains(t, w.Body.String(), "Sun")
	mockComputeService.AssertExpectations(t)
}

func TestHoroscopeHandler_Positions_ValidationError(t *testing.T) {
	mockComputeService := new(MockComputeService)

	handler := NewHoroscopeHandler(mockComputeService, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/positions?date=not-a-date", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Positions(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "validation failed")
}

func TestHoroscopeHandler_Positions_ServiceError(t *testing.T) {
	mockComputeService := new(MockComputeService)

	handler := NewHoroscopeHandler(mockComputeService, nil)

	mockComputeService.
		On("Positions", mock.Anything, mock.Anything).
		Return(nil, errors.New("position provider failed"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/positions", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Positions(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
	mockComputeService.AssertExpectations(t)
}
