package controllers

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"bus_ledger/internal/ledger"
	"bus_ledger/internal/middleware"
	"bus_ledger/internal/reports"
)

// Clock returns the reference time of the month-based reports.
type Clock func() time.Time

// Amount accepts a JSON number or string and coerces it the way the
// dashboard's inputs do: malformed or missing values are zero.
type Amount struct {
	decimal.Decimal
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	raw := string(bytes.Trim(bytes.TrimSpace(data), `"`))
	if raw == "null" {
		a.Decimal = decimal.Zero
		return nil
	}
	a.Decimal = ledger.ParseAmount(raw)
	return nil
}

// BusRef is a bus id sent as a number or a string, as select inputs do.
// Anything unparsable is 0, which never names a bus.
type BusRef int

func (b *BusRef) UnmarshalJSON(data []byte) error {
	*b = BusRef(parseRef(string(bytes.Trim(bytes.TrimSpace(data), `"`))))
	return nil
}

// parseRef reads a whole-number id; anything else is 0.
func parseRef(s string) int {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return id
}

func parseID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return id, true
}

// period reads month and year from the query, falling back to the month of now.
func period(c *gin.Context, now time.Time) reports.Period {
	p := reports.PeriodOf(now)
	if m, err := strconv.Atoi(c.Query("month")); err == nil && m >= 1 && m <= 12 {
		p.Month = time.Month(m)
	}
	if y, err := strconv.Atoi(c.Query("year")); err == nil && y > 0 {
		p.Year = y
	}
	return p
}

// respondError maps ledger errors to HTTP statuses.
func respondError(c *gin.Context, what string, err error) {
	switch {
	case errors.Is(err, ledger.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": what + " not found"})
	case errors.Is(err, ledger.ErrDuplicateAssignment):
		c.JSON(http.StatusConflict, gin.H{"error": "Un employé est déjà enregistré pour ce bus."})
	case errors.Is(err, ledger.ErrInvalidSelection):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Veuillez sélectionner un bus valide."})
	case errors.Is(err, ErrPhotoRead):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Erreur lors de la lecture des photos."})
	default:
		middleware.Log(c).WithError(err).Errorf("failed to save %s", what)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save " + what})
	}
}
