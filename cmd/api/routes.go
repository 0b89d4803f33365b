package main

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// registerRoutes sets up all API endpoints
func (app *App) registerRoutes() {
	// Health check endpoint
	app.router.GET("/ping", app.handlePing)

	// Ephemeris endpoints
	app.router.GET("/epochs", app.handleListEpochs)
	app.router.GET("/epochs/:epoch", app.handleGetStateVector)
	app.router.GET("/epochs/:epoch/speed", app.handleGetSpeed)
	app.router.GET("/epochs/:epoch/location", app.handleGetLocation)
	app.router.GET("/now", app.handleGetNow)

	// Feed document endpoints
	app.router.GET("/header", app.handleGetHeader)
	app.router.GET("/comment", app.handleGetComment)
	app.router.GET("/metadata", app.handleGetMetadata)

	// Prometheus exposition
	app.router.GET("/metrics", gin.WrapH(app.metrics.Handler()))

	// Swagger documentation
	app.router.GET("/swagger/*any", func(c *gin.Context) {
		path := c.Param("any")
		if path == "/" {
			c.Redirect(301, "/swagger/index.html")
			return
		}
		ginSwagger.WrapHandler(swaggerFiles.Handler)(c)
	})
}
