package domain

// PlatformStats is a derived view over stores and orders. It is computed
// on demand and never stored; there is no invalidation mechanism.
type PlatformStats struct {
	TotalGMV        float64 `json:"total_gmv"`
	PlatformRevenue float64 `json:"platform_revenue"`
	ActiveSellers   int     `json:"active_sellers"`
	TotalOrders     int     `json:"total_orders"`
	TotalCustomers  int     `json:"total_customers"`
}
