package model

import "github.com/shopspring/decimal"

// SalesReport is static dashboard data for a single day.
type SalesReport struct {
	Date               string            `json:"date"`
	TotalSales         decimal.Decimal   `json:"totalSales"`
	ProductsSold       int               `json:"productsSold"`
	TopSellingProducts []ProductQuantity `json:"topSellingProducts"`
}

// ProductQuantity is a product and how many units of it sold.
type ProductQuantity struct {
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
}

// TopProduct is a product aggregated across reports.
type TopProduct struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	Revenue     decimal.Decimal `json:"revenue"`
}

// SalesSummary aggregates a set of sales reports.
type SalesSummary struct {
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	TotalUnits    int             `json:"totalUnits"`
	RevenueChange decimal.Decimal `json:"revenueChangePercent"`
	TopProducts   []TopProduct    `json:"topProducts"`
}

// DashboardUser is a row of the admin user table.
type DashboardUser struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	IsAdmin    bool   `json:"isAdmin"`
	Orders     int    `json:"orders"`
	LastActive string `json:"lastActive"`
}

// ProductInput represents the admin form for adding a product.
// Price is kept as text so that invalid numeric input can be reported.
type ProductInput struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       string   `json:"price"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	InStock     bool     `json:"inStock"`
	Discount    int      `json:"discount"`
	ImageURL    string   `json:"imageUrl"`
}
