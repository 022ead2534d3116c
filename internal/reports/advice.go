package reports

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"bus_ledger/internal/models"
)

// Advice thresholds, in XAF and percent.
var (
	StrongMonthThreshold = decimal.NewFromInt(500000)
	WeakMonthThreshold   = decimal.NewFromInt(200000)
	ThinMarginThreshold  = decimal.NewFromInt(10)
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelInfo    Level = "info"
	LevelTip     Level = "tip"
	LevelDanger  Level = "danger"
)

type Message struct {
	Level Level  `json:"level"`
	Text  string `json:"text"`
}

// Advice is the performance reading of the current month.
type Advice struct {
	Period            Period           `json:"period"`
	CurrentMonthTotal decimal.Decimal  `json:"current_month_total"`
	Payroll           decimal.Decimal  `json:"payroll"`
	ProfitMargin      *decimal.Decimal `json:"profit_margin,omitempty"`
	Messages          []Message        `json:"messages"`
}

// Advise classifies the month of now from its remittance total and the payroll.
func Advise(rems []models.Remittance, emps []models.Employee, now time.Time) Advice {
	p := PeriodOf(now)
	total := MonthTotal(rems, p)
	payroll := PayrollTotal(emps)
	a := Advice{Period: p, CurrentMonthTotal: total, Payroll: payroll}

	switch {
	case total.GreaterThan(StrongMonthThreshold):
		a.add(LevelSuccess, "Excellente performance ce mois-ci avec %s de versements.", FormatCurrency(total))
	case total.IsPositive() && total.LessThan(WeakMonthThreshold):
		a.add(LevelWarning, "Les versements du mois (%s) sont faibles. Revoyez les trajets ou la motivation des chauffeurs.", FormatCurrency(total))
	default:
		a.add(LevelInfo, "Pas assez de versements ce mois-ci pour un conseil précis. Enregistrez les versements régulièrement.")
	}

	switch {
	case payroll.IsPositive() && total.IsPositive():
		margin := total.Sub(payroll).Div(total).Mul(decimal.NewFromInt(100))
		rounded := margin.Round(2)
		a.ProfitMargin = &rounded
		if margin.IsPositive() && margin.LessThan(ThinMarginThreshold) {
			a.add(LevelTip, "Marge bénéficiaire de %s%%. Cherchez à réduire les coûts ou à augmenter les recettes par bus.", margin.StringFixed(2))
		} else if !margin.IsPositive() {
			a.add(LevelDanger, "Le mois est en perte. Analysez immédiatement les dépenses et les recettes.")
		}
	case payroll.IsPositive() && total.IsZero():
		a.add(LevelDanger, "Aucun versement ce mois-ci alors que des salaires sont dus : perte directe. Vérifiez l'activité.")
	}
	return a
}

func (a *Advice) add(level Level, format string, args ...any) {
	a.Messages = append(a.Messages, Message{Level: level, Text: fmt.Sprintf(format, args...)})
}
