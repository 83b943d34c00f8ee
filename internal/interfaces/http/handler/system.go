package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/smartretail/backend/internal/infrastructure/persistence"
)

// SystemHandler exposes health and runtime information
type SystemHandler struct {
	BaseHandler
	db      *persistence.Database
	appName string
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(db *persistence.Database, appName string) *SystemHandler {
	return &SystemHandler{db: db, appName: appName}
}

// RegisterRoutes registers the system routes
func (h *SystemHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", h.Health)
}

// Health handles GET /health
func (h *SystemHandler) Health(c *gin.Context) {
	status := "ok"
	if err := h.db.Ping(); err != nil {
		status = "degraded"
	}
	h.Success(c, gin.H{
		"service": h.appName,
		"status":  status,
	})
}
