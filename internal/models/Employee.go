// internal/models/employee.go
package models

import "github.com/shopspring/decimal"

// Employee holds the payroll entry of the crew of one bus.
// Photos are data URLs and may be empty.
type Employee struct {
	ID               int             `json:"id"`
	BusID            int             `json:"bus_id"`
	DriverName       string          `json:"driver_name"`
	ControllerName   string          `json:"controller_name"`
	DriverSalary     decimal.Decimal `json:"driver_salary"`
	ControllerSalary decimal.Decimal `json:"controller_salary"`
	DriverPhoto      string          `json:"driver_photo,omitempty"`
	ControllerPhoto  string          `json:"controller_photo,omitempty"`
}

func (e Employee) Key() int { return e.ID }

// Payroll is the monthly salary cost of the employee entry.
func (e Employee) Payroll() decimal.Decimal {
	return e.DriverSalary.Add(e.ControllerSalary)
}
