package api

import (
	"bluedock/config"
	"bluedock/models"
	"bluedock/store"

	"github.com/gin-gonic/gin"
)

// DashboardHandler dashboard aggregates
type DashboardHandler struct {
	store store.Store
	cfg   *config.Config
}

// NewDashboardHandler creates the dashboard handler
func NewDashboardHandler(st store.Store, cfg *config.Config) *DashboardHandler {
	return &DashboardHandler{store: st, cfg: cfg}
}

// Productivity services per creation day since the configured cutoff
// @Summary Daily productivity
// @Description Services created per calendar day since productivity.since, with the Concluído and Pronto counts. Days without services are omitted.
// @Tags dashboard
// @Produce json
// @Success 200 {object} Response{data=[]models.ProductivityDay}
// @Failure 500 {object} ErrorResponse
// @Router /api/dashboard/productivity [get]
func (h *DashboardHandler) Productivity(c *gin.Context) {
	days, err := h.store.Productivity(c.Request.Context(), h.cfg.Productivity.SinceTime)
	if err != nil {
		storageError(c, "productivity", err, "Erro ao calcular produtividade")
		return
	}
	if days == nil {
		days = []models.ProductivityDay{}
	}
	Success(c, days)
}

// Summary store-wide counters
// @Summary Dashboard summary
// @Description Totals per status; revenue sums the price of Concluído services
// @Tags dashboard
// @Produce json
// @Success 200 {object} Response{data=models.DashboardSummary}
// @Failure 500 {object} ErrorResponse
// @Router /api/dashboard/summary [get]
func (h *DashboardHandler) Summary(c *gin.Context) {
	sum, err := h.store.Summary(c.Request.Context())
	if err != nil {
		storageError(c, "summary", err, "Erro ao calcular resumo")
		return
	}
	Success(c, sum)
}
