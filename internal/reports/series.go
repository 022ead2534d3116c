package reports

import (
	"sort"

	"github.com/shopspring/decimal"

	"bus_ledger/internal/models"
)

// SeriesPoint is one bar or point of a chart.
type SeriesPoint struct {
	Label string          `json:"label"`
	Total decimal.Decimal `json:"total"`
}

// MonthlySeries sums total amounts per "YYYY-MM", in ascending order.
// Remittances without a valid date are left out.
func MonthlySeries(rems []models.Remittance) []SeriesPoint {
	return series(rems, func(r models.Remittance) (string, bool) {
		day, ok := r.Day()
		if !ok {
			return "", false
		}
		return PeriodOf(day).Label(), true
	})
}

// DailySeries sums total amounts per day, in ascending order.
func DailySeries(rems []models.Remittance) []SeriesPoint {
	return series(rems, func(r models.Remittance) (string, bool) {
		day, ok := r.Day()
		if !ok {
			return "", false
		}
		return day.Format(models.DateLayout), true
	})
}

func series(rems []models.Remittance, key func(models.Remittance) (string, bool)) []SeriesPoint {
	sums := map[string]decimal.Decimal{}
	for _, r := range rems {
		k, ok := key(r)
		if !ok {
			continue
		}
		if cur, seen := sums[k]; seen {
			sums[k] = cur.Add(r.TotalAmount)
		} else {
			sums[k] = r.TotalAmount
		}
	}

	out := make([]SeriesPoint, 0, len(sums))
	for k, v := range sums {
		out = append(out, SeriesPoint{Label: k, Total: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out
}
