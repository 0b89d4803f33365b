package main

import (
	"errors"
	"net/http"

	"iss-tracker/internal/geodesy"
	"iss-tracker/internal/tracker"
	_ "iss-tracker/internal/types" // imported for swagger type definitions

	"github.com/gin-gonic/gin"
)

// ListEpochsInput defines the query parameters for the epoch listing endpoint
type ListEpochsInput struct {
	Limit  int `form:"limit"`  // Maximum number of records to return; 0 returns all
	Offset int `form:"offset"` // Number of records to skip
}

// handleListEpochs godoc
// @Summary List ephemeris state vectors
// @Description Retrieve the current ephemeris set, optionally windowed by limit and offset
// @Tags epochs
// @Produce json
// @Param limit query int false "Maximum number of records to return" example(5)
// @Param offset query int false "Number of records to skip" example(10)
// @Success 200 {array} types.StateVector
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /epochs [get]
func (app *App) handleListEpochs(c *gin.Context) {
	var input ListEpochsInput

	// Bind and validate query parameters
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	records, err := app.trackerService.ListEpochs(c.Request.Context(), input.Limit, input.Offset)
	if err != nil {
		app.writeServiceError(c, err, "failed to list epochs")
		return
	}

	c.JSON(http.StatusOK, records)
}

// handleGetStateVector godoc
// @Summary Get the state vector for an epoch
// @Description Retrieve the position and velocity recorded for an exact epoch string
// @Tags epochs
// @Produce json
// @Param epoch path string true "Epoch in day-of-year format" example(2024-079T00:56:00.000Z)
// @Success 200 {object} types.StateVector
// @Failure 404 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /epochs/{epoch} [get]
func (app *App) handleGetStateVector(c *gin.Context) {
	record, err := app.trackerService.GetStateVector(c.Request.Context(), c.Param("epoch"))
	if err != nil {
		app.writeServiceError(c, err, "failed to get state vector")
		return
	}

	c.JSON(http.StatusOK, record)
}

// handleGetSpeed godoc
// @Summary Get instantaneous speed for an epoch
// @Description Compute the velocity magnitude in km/s for an exact epoch string
// @Tags epochs
// @Produce json
// @Param epoch path string true "Epoch in day-of-year format" example(2024-079T00:56:00.000Z)
// @Success 200 {object} types.Speed
// @Failure 404 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /epochs/{epoch}/speed [get]
func (app *App) handleGetSpeed(c *gin.Context) {
	speed, err := app.trackerService.GetSpeed(c.Request.Context(), c.Param("epoch"))
	if err != nil {
		app.writeServiceError(c, err, "failed to get speed")
		return
	}

	c.JSON(http.StatusOK, speed)
}

// handleGetLocation godoc
// @Summary Get the geographic location for an epoch
// @Description Derive latitude, longitude, altitude, and geoposition for an exact epoch string
// @Tags epochs
// @Produce json
// @Param epoch path string true "Epoch in day-of-year format" example(2024-079T00:56:00.000Z)
// @Success 200 {object} types.GeodeticFix
// @Failure 404 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /epochs/{epoch}/location [get]
func (app *App) handleGetLocation(c *gin.Context) {
	fix, err := app.trackerService.GetLocation(c.Request.Context(), c.Param("epoch"))
	if err != nil {
		app.writeServiceError(c, err, "failed to get location")
		return
	}

	c.JSON(http.StatusOK, fix)
}

// handleGetNow godoc
// @Summary Get the current ISS location
// @Description Locate the ephemeris record nearest to now and derive speed, latitude, longitude, altitude, and geoposition from it
// @Tags epochs
// @Produce json
// @Success 200 {object} types.NowReport
// @Failure 502 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /now [get]
func (app *App) handleGetNow(c *gin.Context) {
	report, err := app.trackerService.GetNow(c.Request.Context())
	if err != nil {
		app.writeServiceError(c, err, "failed to get current location")
		return
	}

	c.JSON(http.StatusOK, report)
}

// writeServiceError maps the tracker error kinds onto transport status codes.
func (app *App) writeServiceError(c *gin.Context, err error, msg string) {
	var parseErr *geodesy.EpochParseError

	switch {
	case errors.Is(err, tracker.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, tracker.ErrDataUnavailable),
		errors.Is(err, tracker.ErrGeopositionUnavailable):
		app.logger.Error(msg, "path", c.FullPath(), "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	case errors.Is(err, tracker.ErrEmptySet):
		app.logger.Error(msg, "path", c.FullPath(), "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	case errors.As(err, &parseErr):
		app.logger.Error(msg, "path", c.FullPath(), "epoch", parseErr.Epoch, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		app.logger.Error(msg, "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
	}
}
