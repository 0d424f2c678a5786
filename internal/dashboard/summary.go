package dashboard

import (
	"sort"

	"storefront/internal/model"

	"github.com/shopspring/decimal"
)

// PriceLookup resolves a product's list price.
type PriceLookup interface {
	Get(id string) (model.Product, error)
}

// Summarize aggregates reports. Top products are merged by name and sorted by
// quantity, highest first; ties keep first-seen order. Revenue uses the list
// price from prices, or zero for unknown products.
func Summarize(reports []model.SalesReport, prices PriceLookup) model.SalesSummary {
	summary := model.SalesSummary{
		TotalRevenue:  decimal.Zero,
		RevenueChange: decimal.Zero,
		TopProducts:   []model.TopProduct{},
	}

	index := make(map[string]int)
	for _, r := range reports {
		summary.TotalRevenue = summary.TotalRevenue.Add(r.TotalSales)
		summary.TotalUnits += r.ProductsSold

		for _, q := range r.TopSellingProducts {
			i, ok := index[q.ProductName]
			if !ok {
				i = len(summary.TopProducts)
				index[q.ProductName] = i
				summary.TopProducts = append(summary.TopProducts, model.TopProduct{
					ProductID:   q.ProductID,
					ProductName: q.ProductName,
					Revenue:     decimal.Zero,
				})
			}

			top := &summary.TopProducts[i]
			top.Quantity += q.Quantity
			if p, err := prices.Get(q.ProductID); err == nil {
				top.Revenue = top.Revenue.Add(p.Price.Mul(decimal.NewFromInt(int64(q.Quantity))))
			}
		}
	}

	sort.SliceStable(summary.TopProducts, func(i, j int) bool {
		return summary.TopProducts[i].Quantity > summary.TopProducts[j].Quantity
	})

	summary.RevenueChange = revenueChange(reports)
	return summary
}

// revenueChange is the percent change from the first to the last report,
// rounded to two places.
func revenueChange(reports []model.SalesReport) decimal.Decimal {
	if len(reports) < 2 {
		return decimal.Zero
	}

	first := reports[0].TotalSales
	last := reports[len(reports)-1].TotalSales
	if first.IsZero() {
		return decimal.Zero
	}
	return last.Sub(first).Div(first).Mul(decimal.NewFromInt(100)).Round(2)
}
