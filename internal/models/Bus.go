// internal/models/bus.go
package models

// Bus is a registered vehicle with the driver and controller working it.
type Bus struct {
	ID               int    `json:"id"`
	Type             string `json:"type"`
	DriverName       string `json:"driver_name"`
	ControllerName   string `json:"controller_name"`
	PlateNumber      string `json:"plate_number"`
	RegistrationDate string `json:"registration_date"`
	AccountantName   string `json:"accountant_name"`
}

func (b Bus) Key() int { return b.ID }
