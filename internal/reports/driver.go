package reports

import (
	"github.com/shopspring/decimal"

	"bus_ledger/internal/models"
)

// Placeholder is shown in place of details of a bus that no longer exists.
const Placeholder = "N/A"

// DriverSummary lists what the driver of one bus paid in during a month.
type DriverSummary struct {
	BusID             int                 `json:"bus_id"`
	Period            Period              `json:"period"`
	DriverName        string              `json:"driver_name"`
	ControllerName    string              `json:"controller_name"`
	Rows              []models.Remittance `json:"rows"`
	TotalPaidByDriver decimal.Decimal     `json:"total_paid_by_driver"`
}

func Driver(buses []models.Bus, rems []models.Remittance, busID int, p Period) DriverSummary {
	s := DriverSummary{
		BusID:             busID,
		Period:            p,
		DriverName:        Placeholder,
		ControllerName:    Placeholder,
		Rows:              []models.Remittance{},
		TotalPaidByDriver: decimal.Zero,
	}
	for _, b := range buses {
		if b.ID == busID {
			s.DriverName, s.ControllerName = b.DriverName, b.ControllerName
			break
		}
	}
	for _, r := range inPeriod(rems, p) {
		if r.BusID != busID {
			continue
		}
		s.Rows = append(s.Rows, r)
		s.TotalPaidByDriver = s.TotalPaidByDriver.Add(r.DriverAmount)
	}
	return s
}

func (s DriverSummary) Display() map[string]string {
	return map[string]string{"total_paid_by_driver": FormatCurrency(s.TotalPaidByDriver)}
}
