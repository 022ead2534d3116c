// internal/models/remittance.go
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the layout of Remittance.Date, as sent by the date input of the dashboard.
const DateLayout = "2006-01-02"

// Remittance is a dated cash deposit ("versement") split between the driver
// and the controller of a bus. BusType, DriverName, ControllerName and
// PlateNumber are copied from the bus when the remittance is written and are
// not refreshed afterwards.
type Remittance struct {
	ID               int             `json:"id"`
	BusID            int             `json:"bus_id"`
	BusType          string          `json:"bus_type"`
	DriverName       string          `json:"driver_name"`
	ControllerName   string          `json:"controller_name"`
	PlateNumber      string          `json:"plate_number"`
	Date             string          `json:"date"`
	DriverAmount     decimal.Decimal `json:"driver_amount"`
	ControllerAmount decimal.Decimal `json:"controller_amount"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	AccountantName   string          `json:"accountant_name"`
}

func (r Remittance) Key() int { return r.ID }

// Day parses Date. ok is false when the stored date is not a valid calendar day.
func (r Remittance) Day() (day time.Time, ok bool) {
	t, err := time.Parse(DateLayout, r.Date)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// In reports whether the remittance date falls in the given month of year.
func (r Remittance) In(year int, month time.Month) bool {
	day, ok := r.Day()
	return ok && day.Year() == year && day.Month() == month
}
