package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ChartData is a header row followed by one [label, price] row per sale.
type ChartData [][]any

// NewChartData builds the sales series used by the dashboards.
func NewChartData(sales []Sale) ChartData {
	rows := make(ChartData, 0, len(sales)+1)
	rows = append(rows, []any{"Day", "Sales"})
	for _, s := range sales {
		label := fmt.Sprintf("%d/%d", s.Date.Day(), int(s.Date.Month()))
		rows = append(rows, []any{label, s.Price})
	}
	return rows
}

// TotalSales sums the sale prices.
func TotalSales(sales []Sale) decimal.Decimal {
	total := decimal.Zero
	for _, s := range sales {
		total = total.Add(s.Price)
	}
	return total
}

// AdminStats is the platform wide dashboard.
type AdminStats struct {
	TotalUsers    int64           `json:"totalUsers"`
	TotalRooms    int64           `json:"totalRooms"`
	TotalBookings int             `json:"totalBookings"`
	TotalSales    decimal.Decimal `json:"totalSales"`
	ChartData     ChartData       `json:"chartData"`
}

// HostStats is the dashboard of a single host.
type HostStats struct {
	TotalRooms    int64           `json:"totalRooms"`
	TotalBookings int             `json:"totalBookings"`
	TotalSales    decimal.Decimal `json:"totalSales"`
	ChartData     ChartData       `json:"chartData"`
	HostSince     int64           `json:"hostSince"`
}

// GuestStats is the dashboard of a single guest.
type GuestStats struct {
	TotalBookings int             `json:"totalBookings"`
	TotalSpent    decimal.Decimal `json:"totalSpent"`
	ChartData     ChartData       `json:"chartData"`
	GuestSince    int64           `json:"guestSince"`
}
