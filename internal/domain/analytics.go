package domain

// AnalyticsSummary aggregates storefront totals for the admin dashboard
type AnalyticsSummary struct {
	Users        int64   `json:"users"`
	Products     int64   `json:"products"`
	TotalSales   int64   `json:"totalSales"`
	TotalRevenue float64 `json:"totalRevenue"`
}
