package report

import (
	"context"

	"github.com/shopspring/decimal"
)

// Risk level labels
const (
	RiskLow    = "Low"
	RiskMedium = "Medium"
	RiskHigh   = "High"
)

// Health status labels
const (
	HealthProfitable = "Profitable"
	HealthLossMaking = "Loss Making"
)

var (
	roiTierHigh = decimal.NewFromInt(15)
	roiTierMid  = decimal.NewFromInt(5)
)

// growthStrategies is the fixed investment option catalog
var growthStrategies = []GrowthStrategy{
	{Name: "Digital Marketing", Investment: decimal.NewFromInt(15000), ExpectedROI: decimal.NewFromInt(200), Timeline: "3 months"},
	{Name: "Loyalty Program", Investment: decimal.NewFromInt(5000), ExpectedROI: decimal.NewFromInt(300), Timeline: "1 month"},
	{Name: "Home Delivery", Investment: decimal.NewFromInt(12000), ExpectedROI: decimal.NewFromInt(220), Timeline: "2 months"},
	{Name: "POS System", Investment: decimal.NewFromInt(20000), ExpectedROI: decimal.NewFromInt(400), Timeline: "1 month"},
	{Name: "Fresh Produce Section", Investment: decimal.NewFromInt(25000), ExpectedROI: decimal.NewFromInt(180), Timeline: "1 month"},
}

var recommendations = []string{
	"Focus on high-margin items (Appliances, Furniture)",
	"Implement inventory turnover tracking",
	"Develop customer loyalty programs",
	"Consider online sales channels",
	"Optimize supplier relationships for better margins",
}

// AnalysisService assesses business health from the derived metrics
type AnalysisService struct {
	metrics *MetricsService
}

// NewAnalysisService creates a new AnalysisService
func NewAnalysisService(metrics *MetricsService) *AnalysisService {
	return &AnalysisService{metrics: metrics}
}

// SurvivalScore maps ROI to a five-year survival estimate. Tiers use
// strict greater-than; an ROI of exactly 15 lands in the 65 tier.
func SurvivalScore(roi decimal.Decimal) int {
	switch {
	case roi.GreaterThan(roiTierHigh):
		return 85
	case roi.GreaterThan(roiTierMid):
		return 65
	case roi.IsPositive():
		return 45
	default:
		return 25
	}
}

// RiskLevel maps a survival score to a risk label
func RiskLevel(score int) string {
	switch {
	case score > 70:
		return RiskLow
	case score > 50:
		return RiskMedium
	default:
		return RiskHigh
	}
}

// GrowthStrategies returns the fixed investment option catalog
func (s *AnalysisService) GrowthStrategies() []GrowthStrategy {
	strategies := make([]GrowthStrategy, len(growthStrategies))
	copy(strategies, growthStrategies)
	return strategies
}

// Analyze assembles the full business health assessment
func (s *AnalysisService) Analyze(ctx context.Context) (*AnalysisResponse, error) {
	dashboard, err := s.metrics.Dashboard(ctx)
	if err != nil {
		return nil, err
	}

	score := SurvivalScore(dashboard.ROI)

	health := HealthLossMaking
	if dashboard.NetProfit.IsPositive() {
		health = HealthProfitable
	}

	return &AnalysisResponse{
		NetProfit:       dashboard.NetProfit,
		ROI:             dashboard.ROI,
		SurvivalScore:   score,
		RiskLevel:       RiskLevel(score),
		HealthStatus:    health,
		DailyTarget:     dashboard.DailyBreakEven,
		MonthlyTarget:   dashboard.ExpenseTotal,
		Strategies:      s.GrowthStrategies(),
		Recommendations: append([]string(nil), recommendations...),
	}, nil
}
