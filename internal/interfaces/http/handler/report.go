package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/smartretail/backend/internal/application/report"
)

// DashboardHandler exposes the derived metrics over HTTP
type DashboardHandler struct {
	BaseHandler
	metrics *report.MetricsService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(metrics *report.MetricsService) *DashboardHandler {
	return &DashboardHandler{metrics: metrics}
}

// RegisterRoutes registers the dashboard routes
func (h *DashboardHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/dashboard/metrics", h.Metrics)
}

// Metrics handles GET /dashboard/metrics
func (h *DashboardHandler) Metrics(c *gin.Context) {
	dashboard, err := h.metrics.Dashboard(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dashboard)
}

// AnalysisHandler exposes the business health assessment over HTTP
type AnalysisHandler struct {
	BaseHandler
	analysis *report.AnalysisService
}

// NewAnalysisHandler creates a new AnalysisHandler
func NewAnalysisHandler(analysis *report.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{analysis: analysis}
}

// RegisterRoutes registers the analysis routes
func (h *AnalysisHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/analysis", h.Analyze)
}

// Analyze handles GET /analysis
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	analysis, err := h.analysis.Analyze(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, analysis)
}
