// Package server exposes the FEN codec over HTTP.
package server

import (
	"github.com/gin-gonic/gin"
)

// SetupRoutes registers the request-ID middleware and all handlers on engine.
func SetupRoutes(engine *gin.Engine) {
	engine.Use(RequestID())

	healthHandler := &HealthHandler{}
	positionHandler := &PositionHandler{}

	engine.GET("/health", healthHandler.health)

	positions := engine.Group("/positions")
	positions.GET("/start", positionHandler.start)
	positions.POST("/parse", positionHandler.parse)
	positions.POST("/format", positionHandler.format)
}

// NewEngine returns a gin engine with logging, recovery and all routes.
func NewEngine() *gin.Engine {
	engine := gin.Default()
	SetupRoutes(engine)
	return engine
}
