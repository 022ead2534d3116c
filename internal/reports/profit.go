package reports

import (
	"github.com/shopspring/decimal"

	"bus_ledger/internal/models"
)

// SavingsRate is the share of the net profit suggested for savings, in percent.
const SavingsRate = 20

// PayrollTotal sums the salaries of every employee. It is not scoped to a month.
func PayrollTotal(emps []models.Employee) decimal.Decimal {
	sum := decimal.Zero
	for _, e := range emps {
		sum = sum.Add(e.Payroll())
	}
	return sum
}

// Profit ("bénéfice") of a month: what remains after the global report
// deductions, minus the whole payroll.
type Profit struct {
	Period       Period          `json:"period"`
	NetRemaining decimal.Decimal `json:"net_remaining"`
	Payroll      decimal.Decimal `json:"payroll"`
	NetProfit    decimal.Decimal `json:"net_profit"`
	Savings      decimal.Decimal `json:"savings"`
}

func MonthProfit(rems []models.Remittance, emps []models.Employee, p Period) Profit {
	net := Global(rems, p).NetRemaining
	payroll := PayrollTotal(emps)
	profit := net.Sub(payroll)
	return Profit{
		Period:       p,
		NetRemaining: net,
		Payroll:      payroll,
		NetProfit:    profit,
		Savings:      percent(profit, SavingsRate),
	}
}

func (p Profit) Display() map[string]string {
	return map[string]string{
		"net_remaining": FormatCurrency(p.NetRemaining),
		"payroll":       FormatCurrency(p.Payroll),
		"net_profit":    FormatCurrency(p.NetProfit),
		"savings":       FormatCurrency(p.Savings),
	}
}
