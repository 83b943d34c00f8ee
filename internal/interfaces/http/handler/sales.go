package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/smartretail/backend/internal/application/sales"
)

// SalesHandler exposes the sales ledger over HTTP
type SalesHandler struct {
	BaseHandler
	sales *sales.SalesService
}

// NewSalesHandler creates a new SalesHandler
func NewSalesHandler(salesService *sales.SalesService) *SalesHandler {
	return &SalesHandler{sales: salesService}
}

// RegisterRoutes registers the sales routes
func (h *SalesHandler) RegisterRoutes(rg *gin.RouterGroup) {
	group := rg.Group("/sales")
	{
		group.POST("", h.Record)
		group.GET("", h.List)
		group.GET("/summary", h.Summary)
	}
}

// Record handles POST /sales
func (h *SalesHandler) Record(c *gin.Context) {
	var req sales.RecordSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	sale, err := h.sales.RecordSale(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, sale)
}

// List handles GET /sales?date=YYYY-MM-DD
func (h *SalesHandler) List(c *gin.Context) {
	var date *string
	if d := c.Query("date"); d != "" {
		date = &d
	}

	records, err := h.sales.ListSales(c.Request.Context(), date)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, records)
}

// Summary handles GET /sales/summary?date=YYYY-MM-DD
func (h *SalesHandler) Summary(c *gin.Context) {
	var date *string
	if d := c.Query("date"); d != "" {
		date = &d
	}

	summary, err := h.sales.DailySummary(c.Request.Context(), date)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, summary)
}
