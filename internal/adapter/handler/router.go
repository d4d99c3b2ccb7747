package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/johnquangdev/meeting-analyzer/internal/adapter/dto"
)

// Router holds all handlers
type Router struct {
	analysisController *AnalysisController
}

// NewRouter creates a new router with all handlers
func NewRouter(analysisController *AnalysisController) *Router {
	return &Router{
		analysisController: analysisController,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoints
	e.GET("/", rt.healthCheck)
	e.GET("/health", rt.healthCheck)

	if rt.analysisController != nil {
		e.POST("/analyze", rt.analysisController.Analyze)
	} else {
		// Placeholder route when handler is not initialized
		e.POST("/analyze", rt.notImplemented)
	}
}

// notImplemented returns 501 Not Implemented response
func (rt *Router) notImplemented(c echo.Context) error {
	return c.JSON(http.StatusNotImplemented, dto.ErrorResponse{
		Error: "This endpoint is not yet implemented",
	})
}

// healthCheck returns a static status; it never touches the model
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.StatusResponse{
		Message: "Server is running!",
		Status:  "ok",
	})
}
