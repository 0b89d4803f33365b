package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// handleGetHeader godoc
// @Summary Get the OEM document header
// @Description Retrieve the creation date and originator of the current ephemeris document
// @Tags feed
// @Produce json
// @Success 200 {object} types.FeedHeader
// @Failure 502 {object} map[string]string
// @Router /header [get]
func (app *App) handleGetHeader(c *gin.Context) {
	header, err := app.trackerService.GetFeedHeader(c.Request.Context())
	if err != nil {
		app.writeServiceError(c, err, "failed to get feed header")
		return
	}

	c.JSON(http.StatusOK, header)
}

// handleGetComment godoc
// @Summary Get the OEM document comments
// @Description Retrieve the comment lines embedded in the current ephemeris document
// @Tags feed
// @Produce json
// @Success 200 {array} string
// @Failure 502 {object} map[string]string
// @Router /comment [get]
func (app *App) handleGetComment(c *gin.Context) {
	comments, err := app.trackerService.GetFeedComments(c.Request.Context())
	if err != nil {
		app.writeServiceError(c, err, "failed to get feed comments")
		return
	}

	c.JSON(http.StatusOK, comments)
}

// handleGetMetadata godoc
// @Summary Get the OEM segment metadata
// @Description Retrieve object, frame, and coverage metadata of the current ephemeris document
// @Tags feed
// @Produce json
// @Success 200 {object} types.FeedMetadata
// @Failure 502 {object} map[string]string
// @Router /metadata [get]
func (app *App) handleGetMetadata(c *gin.Context) {
	metadata, err := app.trackerService.GetFeedMetadata(c.Request.Context())
	if err != nil {
		app.writeServiceError(c, err, "failed to get feed metadata")
		return
	}

	c.JSON(http.StatusOK, metadata)
}
