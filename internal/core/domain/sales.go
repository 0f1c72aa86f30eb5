package domain

// BreakdownEntry is one labelled slice of a monthly report. Order is
// significant and preserved as stored.
type BreakdownEntry struct {
	Label string  `json:"label" bson:"label"`
	Value float64 `json:"value" bson:"value"`
}

// SalesReport is a monthly reporting document. Reports are bulk-seeded and
// read-only from the API's perspective.
type SalesReport struct {
	ID           string           `json:"id" bson:"_id,omitempty"`
	Month        string           `json:"month" bson:"month"`
	TotalUsers   int              `json:"totalUsers" bson:"total_users"`
	TotalSales   float64          `json:"totalSales" bson:"total_sales"`
	TotalOrders  int              `json:"totalOrders" bson:"total_orders"`
	TotalPending int              `json:"totalPending" bson:"total_pending"`
	Breakdown    []BreakdownEntry `json:"breakdown,omitempty" bson:"breakdown,omitempty"`
}
