package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/egzamapp/internal/service"
)

type DiagnosticsController struct {
	diagnosticsService service.DiagnosticsService
}

func NewDiagnosticsController(diagnosticsService service.DiagnosticsService) *DiagnosticsController {
	return &DiagnosticsController{diagnosticsService: diagnosticsService}
}

// Ping godoc
// @Summary Liveness check
// @Tags Diagnostics
// @Produce json
// @Success 200 {object} dto.PingResponse
// @Router /test [get]
func (c *DiagnosticsController) Ping(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.diagnosticsService.Ping(ctx.Request.Context()))
}

// DatabaseStatus godoc
// @Summary Database status
// @Description Connectivity, provider, tables and row counts. Only mounted when diagnostics are enabled.
// @Tags Diagnostics
// @Produce json
// @Success 200 {object} dto.DatabaseStatusDTO
// @Router /diagnostics/db-status [get]
func (c *DiagnosticsController) DatabaseStatus(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.diagnosticsService.DatabaseStatus(ctx.Request.Context()))
}
