package api

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/alertharvest/ah-mcp-gateway/pkg/services"
)

// APIHandler handles HTTP API requests
type APIHandler struct {
	toolService *services.ToolService
}

// NewAPIHandler creates a new API handler
func NewAPIHandler(toolService *services.ToolService) *APIHandler {
	return &APIHandler{
		toolService: toolService,
	}
}

// InvokeToolRequest is the request payload for invoking a tool
type InvokeToolRequest struct {
	Arguments map[string]interface{} `json:"arguments"`
}

// ListTools returns the definitions of all callable tools
func (h *APIHandler) ListTools(c echo.Context) error {
	return c.JSON(http.StatusOK, h.toolService.Tools())
}

// InvokeTool dispatches a tool invocation and returns its outcome.
// Operation failures are reported inside the outcome with HTTP 200; only
// an unknown tool name or an unreadable body is an HTTP-level error.
func (h *APIHandler) InvokeTool(c echo.Context) error {
	name := c.Param("name")
	if _, ok := h.toolService.Tool(name); !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": fmt.Sprintf("Tool %s not found", name)})
	}

	var req InvokeToolRequest
	if err := c.Bind(&req); err != nil {
		logrus.Errorf("Error binding invoke request for tool %s: %v", name, err)
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}
	if req.Arguments == nil {
		req.Arguments = map[string]interface{}{}
	}

	outcome := h.toolService.Dispatch(c.Request().Context(), name, req.Arguments)
	return c.JSON(http.StatusOK, outcome)
}

// Health reports service liveness
func (h *APIHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// SetupRoutes sets up the API routes
func (h *APIHandler) SetupRoutes(e *echo.Echo) {
	// Tool endpoints
	e.GET("/api/tools", h.ListTools)
	e.POST("/api/tools/:name", h.InvokeTool)

	// Health endpoint
	e.GET("/health", h.Health)
}
