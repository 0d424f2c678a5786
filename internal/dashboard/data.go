package dashboard

import (
	"storefront/internal/model"

	"github.com/shopspring/decimal"
)

func quantities(shirt, blazer, sneakers int, order ...string) []model.ProductQuantity {
	byID := map[string]model.ProductQuantity{
		"1": {ProductID: "1", ProductName: "Casual Shirt", Quantity: shirt},
		"2": {ProductID: "2", ProductName: "Formal Blazer", Quantity: blazer},
		"3": {ProductID: "3", ProductName: "Sneakers", Quantity: sneakers},
	}
	out := make([]model.ProductQuantity, 0, len(order))
	for _, id := range order {
		out = append(out, byID[id])
	}
	return out
}

func report(date, total string, sold int, top []model.ProductQuantity) model.SalesReport {
	return model.SalesReport{
		Date:               date,
		TotalSales:         decimal.RequireFromString(total),
		ProductsSold:       sold,
		TopSellingProducts: top,
	}
}

// MockReports returns the seven days of demo sales data, oldest first.
func MockReports() []model.SalesReport {
	return []model.SalesReport{
		report("2023-07-16", "1250.75", 18, quantities(5, 3, 4, "1", "2", "3")),
		report("2023-07-17", "980.50", 15, quantities(4, 2, 6, "3", "1", "2")),
		report("2023-07-18", "1350.25", 22, quantities(8, 4, 7, "1", "3", "2")),
		report("2023-07-19", "875.60", 14, quantities(3, 4, 5, "3", "2", "1")),
		report("2023-07-20", "1420.30", 24, quantities(9, 5, 8, "1", "3", "2")),
		report("2023-07-21", "1050.75", 17, quantities(6, 3, 7, "3", "1", "2")),
		report("2023-07-22", "1680.90", 28, quantities(11, 6, 10, "1", "3", "2")),
	}
}

// MockUsers returns the demo user table.
func MockUsers() []model.DashboardUser {
	return []model.DashboardUser{
		{ID: "1", Name: "John Doe", Email: "john@example.com", Orders: 5, LastActive: "2023-07-15"},
		{ID: "2", Name: "Jane Smith", Email: "jane@example.com", Orders: 12, LastActive: "2023-07-20"},
		{ID: "3", Name: "Admin User", Email: "admin@example.com", IsAdmin: true, LastActive: "2023-07-22"},
	}
}
