package reports

import (
	"github.com/shopspring/decimal"

	"bus_ledger/internal/models"
)

// Bilan is the monthly balance, optionally restricted to one bus type.
// An empty selection is a valid report with Empty set.
type Bilan struct {
	Period          Period              `json:"period"`
	BusType         string              `json:"bus_type,omitempty"`
	Rows            []models.Remittance `json:"rows"`
	DriverTotal     decimal.Decimal     `json:"driver_total"`
	ControllerTotal decimal.Decimal     `json:"controller_total"`
	GrandTotal      decimal.Decimal     `json:"grand_total"`
	Daily           []SeriesPoint       `json:"daily"`
	Empty           bool                `json:"empty"`
}

// MonthlyBalance selects the remittances of p whose bus type is busType
// (any type when busType is empty) and sums them.
func MonthlyBalance(rems []models.Remittance, p Period, busType string) Bilan {
	b := Bilan{
		Period:          p,
		BusType:         busType,
		Rows:            []models.Remittance{},
		DriverTotal:     decimal.Zero,
		ControllerTotal: decimal.Zero,
		GrandTotal:      decimal.Zero,
	}
	for _, r := range inPeriod(rems, p) {
		if busType != "" && r.BusType != busType {
			continue
		}
		b.Rows = append(b.Rows, r)
		b.DriverTotal = b.DriverTotal.Add(r.DriverAmount)
		b.ControllerTotal = b.ControllerTotal.Add(r.ControllerAmount)
		b.GrandTotal = b.GrandTotal.Add(r.TotalAmount)
	}
	b.Daily = DailySeries(b.Rows)
	b.Empty = len(b.Rows) == 0
	return b
}

func (b Bilan) Display() map[string]string {
	return map[string]string{
		"driver_total":     FormatCurrency(b.DriverTotal),
		"controller_total": FormatCurrency(b.ControllerTotal),
		"grand_total":      FormatCurrency(b.GrandTotal),
	}
}
