package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler defines the interface for the service health probe
type HealthHandler interface {
	Status(ctx *gin.Context)
}

type healthHandler struct{}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler() HealthHandler {
	return &healthHandler{}
}

// Status handles the GET request reporting service liveness
// @Summary Report service health
// @Description Returns the service status, a short message and the API version.
// @Tags Health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (handler *healthHandler) Status(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, HealthResponse{
		Status:  "healthy",
		Message: "Swiss Ephemeris API is running",
		Version: Version,
	})
}
