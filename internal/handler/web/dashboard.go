package web

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"CryptoMonitor/internal/usecase"
	xhttp "CryptoMonitor/pkg/http"
	xlogger "CryptoMonitor/pkg/logger"
)

// DashboardHandler serves the single HTML page.
type DashboardHandler struct {
	logger   *xlogger.Logger
	uc       *usecase.Dashboard
	renderer *Renderer
}

func NewDashboardHandler(logger *xlogger.Logger, uc *usecase.Dashboard, renderer *Renderer) *DashboardHandler {
	return &DashboardHandler{logger: logger, uc: uc, renderer: renderer}
}

func (h *DashboardHandler) RegisterRoutes(e *echo.Echo) {
	e.Renderer = h.renderer
	e.GET("/", h.Index)
}

// Index rebuilds the dashboard from both upstreams on every request.
func (h *DashboardHandler) Index(c echo.Context) error {
	page, err := h.uc.Build(c.Request().Context())
	if err != nil {
		h.logger.Error("dashboard build failed", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.InternalError("failed to build dashboard").WithError(err))
	}
	if err := c.Render(http.StatusOK, DashboardTemplate, page); err != nil {
		h.logger.Error("dashboard render failed", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.InternalError("failed to render dashboard").WithError(err))
	}
	return nil
}
