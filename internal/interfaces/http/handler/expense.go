package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/smartretail/backend/internal/application/finance"
)

// ExpenseHandler exposes the expense budget over HTTP
type ExpenseHandler struct {
	BaseHandler
	expenses *finance.ExpenseService
}

// NewExpenseHandler creates a new ExpenseHandler
func NewExpenseHandler(expenses *finance.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenses: expenses}
}

// RegisterRoutes registers the expense routes
func (h *ExpenseHandler) RegisterRoutes(rg *gin.RouterGroup) {
	group := rg.Group("/expenses")
	{
		group.GET("", h.GetBudget)
		group.PUT("/categories/:category", h.SetCategory)
	}
}

// GetBudget handles GET /expenses
func (h *ExpenseHandler) GetBudget(c *gin.Context) {
	budget, err := h.expenses.GetBudget(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, budget)
}

// SetCategory handles PUT /expenses/categories/:category
func (h *ExpenseHandler) SetCategory(c *gin.Context) {
	var req finance.SetExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	line, err := h.expenses.SetCategory(c.Request.Context(), c.Param("category"), req.MonthlyAmount)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, line)
}
