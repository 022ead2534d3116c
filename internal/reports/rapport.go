package reports

import (
	"github.com/shopspring/decimal"

	"bus_ledger/internal/models"
)

// Fixed deduction rates of the global report, in percent of the gross deposit.
const (
	InsuranceRate   = 10
	MaintenanceRate = 3
	IncidentRate    = 7
)

// GlobalReport ("rapport global") applies the fixed deductions to the gross
// deposit of a month.
type GlobalReport struct {
	Number        string          `json:"number"`
	Period        Period          `json:"period"`
	GrossDeposit  decimal.Decimal `json:"gross_deposit"`
	Insurance     decimal.Decimal `json:"insurance"`
	Maintenance   decimal.Decimal `json:"maintenance"`
	Incident      decimal.Decimal `json:"incident"`
	TotalDeducted decimal.Decimal `json:"total_deducted"`
	NetRemaining  decimal.Decimal `json:"net_remaining"`
}

func Global(rems []models.Remittance, p Period) GlobalReport {
	gross := MonthTotal(rems, p)
	r := GlobalReport{
		Number:       p.Number(),
		Period:       p,
		GrossDeposit: gross,
		Insurance:    percent(gross, InsuranceRate),
		Maintenance:  percent(gross, MaintenanceRate),
		Incident:     percent(gross, IncidentRate),
	}
	r.TotalDeducted = r.Insurance.Add(r.Maintenance).Add(r.Incident)
	r.NetRemaining = gross.Sub(r.TotalDeducted)
	return r
}

func (r GlobalReport) Display() map[string]string {
	return map[string]string{
		"gross_deposit":  FormatCurrency(r.GrossDeposit),
		"insurance":      FormatCurrency(r.Insurance),
		"maintenance":    FormatCurrency(r.Maintenance),
		"incident":       FormatCurrency(r.Incident),
		"total_deducted": FormatCurrency(r.TotalDeducted),
		"net_remaining":  FormatCurrency(r.NetRemaining),
	}
}
