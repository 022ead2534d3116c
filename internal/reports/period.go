package reports

import (
	"fmt"
	"time"
)

// Period is a calendar month.
type Period struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

func PeriodOf(t time.Time) Period {
	return Period{Year: t.Year(), Month: t.Month()}
}

// Number is the report number shown on the global report, "3/2024".
func (p Period) Number() string {
	return fmt.Sprintf("%d/%d", int(p.Month), p.Year)
}

// Label is the chart key of the month, "2024-03".
func (p Period) Label() string {
	return fmt.Sprintf("%04d-%02d", p.Year, int(p.Month))
}
