package ledger

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Request is the single input of a collection's save operation: either a
// creation or the replacement of an existing record's fields.
type Request[F any] struct {
	id     int
	update bool
	Fields F
}

func Create[F any](fields F) Request[F] {
	return Request[F]{Fields: fields}
}

func Update[F any](id int, fields F) Request[F] {
	return Request[F]{id: id, update: true, Fields: fields}
}

// Target returns the id being edited; ok is false for a creation.
func (r Request[F]) Target() (id int, ok bool) {
	return r.id, r.update
}

// BusFields are the editable fields of a bus.
type BusFields struct {
	Type             string
	DriverName       string
	ControllerName   string
	PlateNumber      string
	RegistrationDate string
	AccountantName   string
}

// RemittanceFields are the editable fields of a remittance. The bus
// snapshot and the total are derived by the ledger.
type RemittanceFields struct {
	BusID            int
	Date             string
	DriverAmount     decimal.Decimal
	ControllerAmount decimal.Decimal
	AccountantName   string
}

// EmployeeFields are the editable fields of an employee entry.
type EmployeeFields struct {
	BusID            int
	DriverSalary     decimal.Decimal
	ControllerSalary decimal.Decimal
	DriverPhoto      string
	ControllerPhoto  string
}

var numericPrefix = regexp.MustCompile(`^([+-]?)(\d+(?:\.\d+)?|\.\d+)([eE][+-]?\d+)?`)

// Bounds on what ParseAmount accepts as an amount. Anything outside them is
// zero, which also keeps every later sum cheap.
const (
	maxAmountDigits   = 32
	maxAmountExponent = 2 // digits
)

// MaxAmount is the largest absolute amount ParseAmount returns.
var MaxAmount = decimal.New(1, 15)

// ParseAmount reads the leading decimal number of s ("12.5 XAF" is 12.5).
// Anything without a numeric prefix, or too large to be a real amount, is zero.
func ParseAmount(s string) decimal.Decimal {
	m := numericPrefix.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return decimal.Zero
	}
	sign, mantissa, exp := m[1], m[2], m[3]
	if sign == "+" {
		sign = ""
	}
	if strings.HasPrefix(mantissa, ".") {
		mantissa = "0" + mantissa
	}
	if len(strings.Replace(mantissa, ".", "", 1)) > maxAmountDigits {
		return decimal.Zero
	}
	if exp != "" && len(strings.TrimLeft(exp[1:], "+-0")) > maxAmountExponent {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(sign + mantissa + exp)
	if err != nil || d.Abs().GreaterThan(MaxAmount) {
		return decimal.Zero
	}
	return d
}
