package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bus_ledger/internal/ledger"
	"bus_ledger/internal/reports"
)

// BilanPrintTemplate is the name of the printable bilan template.
const BilanPrintTemplate = "bilan_print.tmpl"

func Dashboard(l *ledger.Ledger, now Clock) gin.HandlerFunc {
	return func(c *gin.Context) {
		d := reports.Dashboard(l.Remittances(), now())
		c.JSON(http.StatusOK, gin.H{"data": d, "display": d.Display()})
	}
}

// Bilan is the monthly balance, ?month=&year=&type=.
func Bilan(l *ledger.Ledger, now Clock) gin.HandlerFunc {
	return func(c *gin.Context) {
		b := reports.MonthlyBalance(l.Remittances(), period(c, now()), c.Query("type"))
		c.JSON(http.StatusOK, gin.H{"data": b, "display": b.Display()})
	}
}

// PrintBilan renders the same bilan as a standalone printable page.
func PrintBilan(l *ledger.Ledger, now Clock) gin.HandlerFunc {
	return func(c *gin.Context) {
		b := reports.MonthlyBalance(l.Remittances(), period(c, now()), c.Query("type"))
		c.HTML(http.StatusOK, BilanPrintTemplate, gin.H{"Bilan": b, "Display": b.Display()})
	}
}

func Rapport(l *ledger.Ledger, now Clock) gin.HandlerFunc {
	return func(c *gin.Context) {
		r := reports.Global(l.Remittances(), period(c, now()))
		c.JSON(http.StatusOK, gin.H{"data": r, "display": r.Display()})
	}
}

func Benefice(l *ledger.Ledger, now Clock) gin.HandlerFunc {
	return func(c *gin.Context) {
		snap := l.Snapshot()
		p := reports.MonthProfit(snap.Remittances, snap.Employees, period(c, now()))
		c.JSON(http.StatusOK, gin.H{"data": p, "display": p.Display()})
	}
}

// DriverReport summarises one bus for a month, ?bus_id=&month=&year=.
func DriverReport(l *ledger.Ledger, now Clock) gin.HandlerFunc {
	return func(c *gin.Context) {
		busID := parseRef(c.Query("bus_id"))
		if busID < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Veuillez sélectionner un bus valide."})
			return
		}
		snap := l.Snapshot()
		s := reports.Driver(snap.Buses, snap.Remittances, busID, period(c, now()))
		c.JSON(http.StatusOK, gin.H{"data": s, "display": s.Display()})
	}
}

func Advice(l *ledger.Ledger, now Clock) gin.HandlerFunc {
	return func(c *gin.Context) {
		snap := l.Snapshot()
		c.JSON(http.StatusOK, gin.H{"data": reports.Advise(snap.Remittances, snap.Employees, now())})
	}
}

// Series is the per-month chart of remittance totals.
func Series(l *ledger.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"data": reports.MonthlySeries(l.Remittances())})
	}
}
