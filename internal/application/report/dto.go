package report

import "github.com/shopspring/decimal"

// DashboardResponse carries the derived metrics over the current ledgers.
// Every figure is recomputed from the stores on each request.
type DashboardResponse struct {
	StockValue       decimal.Decimal `json:"stock_value"`
	RevenuePotential decimal.Decimal `json:"revenue_potential"`
	ProfitPotential  decimal.Decimal `json:"profit_potential"`
	ExpenseTotal     decimal.Decimal `json:"expense_total"`
	NetProfit        decimal.Decimal `json:"net_profit"`
	ROI              decimal.Decimal `json:"roi"`
	DailyBreakEven   decimal.Decimal `json:"daily_break_even"`
	ItemCount        int64           `json:"item_count"`
	CategoryCount    int64           `json:"category_count"`
}

// GrowthStrategy describes one investment option
type GrowthStrategy struct {
	Name        string          `json:"name"`
	Investment  decimal.Decimal `json:"investment"`
	ExpectedROI decimal.Decimal `json:"expected_roi"`
	Timeline    string          `json:"timeline"`
}

// AnalysisResponse carries the business health assessment
type AnalysisResponse struct {
	NetProfit       decimal.Decimal  `json:"net_profit"`
	ROI             decimal.Decimal  `json:"roi"`
	SurvivalScore   int              `json:"survival_score"`
	RiskLevel       string           `json:"risk_level"`
	HealthStatus    string           `json:"health_status"`
	DailyTarget     decimal.Decimal  `json:"daily_target"`
	MonthlyTarget   decimal.Decimal  `json:"monthly_target"`
	Strategies      []GrowthStrategy `json:"strategies"`
	Recommendations []string         `json:"recommendations"`
}
