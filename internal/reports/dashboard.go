package reports

import (
	"time"

	"github.com/shopspring/decimal"

	"bus_ledger/internal/models"
)

// DashboardTotals are the headline figures of the dashboard.
// Achats is the driver side of the remittances, Production the controller side.
type DashboardTotals struct {
	TotalAchats       decimal.Decimal `json:"total_achats"`
	TotalProduction   decimal.Decimal `json:"total_production"`
	TotalDepot        decimal.Decimal `json:"total_depot"`
	CurrentMonth      Period          `json:"current_month"`
	CurrentMonthTotal decimal.Decimal `json:"current_month_total"`
}

func Dashboard(rems []models.Remittance, now time.Time) DashboardTotals {
	out := DashboardTotals{
		TotalAchats:       decimal.Zero,
		TotalProduction:   decimal.Zero,
		CurrentMonth:      PeriodOf(now),
		CurrentMonthTotal: decimal.Zero,
	}
	for _, r := range rems {
		out.TotalAchats = out.TotalAchats.Add(r.DriverAmount)
		out.TotalProduction = out.TotalProduction.Add(r.ControllerAmount)
	}
	out.TotalDepot = out.TotalAchats.Add(out.TotalProduction)
	out.CurrentMonthTotal = MonthTotal(rems, out.CurrentMonth)
	return out
}

// MonthTotal sums the total amount of the remittances dated in p.
func MonthTotal(rems []models.Remittance, p Period) decimal.Decimal {
	sum := decimal.Zero
	for _, r := range inPeriod(rems, p) {
		sum = sum.Add(r.TotalAmount)
	}
	return sum
}

func (d DashboardTotals) Display() map[string]string {
	return map[string]string{
		"total_achats":        FormatCurrency(d.TotalAchats),
		"total_production":    FormatCurrency(d.TotalProduction),
		"total_depot":         FormatCurrency(d.TotalDepot),
		"current_month_total": FormatCurrency(d.CurrentMonthTotal),
	}
}

func inPeriod(rems []models.Remittance, p Period) []models.Remittance {
	var out []models.Remittance
	for _, r := range rems {
		if r.In(p.Year, p.Month) {
			out = append(out, r)
		}
	}
	return out
}
