package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bus_ledger/internal/ledger"
)

type remittanceInput struct {
	BusID            BusRef `json:"bus_id"`
	Date             string `json:"date"`
	DriverAmount     Amount `json:"driver_amount"`
	ControllerAmount Amount `json:"controller_amount"`
	AccountantName   string `json:"accountant_name"`
}

func (in remittanceInput) fields() ledger.RemittanceFields {
	return ledger.RemittanceFields{
		BusID:            int(in.BusID),
		Date:             in.Date,
		DriverAmount:     in.DriverAmount.Decimal,
		ControllerAmount: in.ControllerAmount.Decimal,
		AccountantName:   in.AccountantName,
	}
}

func ListRemittances(l *ledger.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"data": l.Remittances()})
	}
}

// CreateRemittance records a versement for an existing bus.
func CreateRemittance(l *ledger.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input remittanceInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid remittance input: " + err.Error()})
			return
		}

		rem, err := l.SaveRemittance(c.Request.Context(), ledger.Create(input.fields()))
		if err != nil {
			respondError(c, "remittance", err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"remittance": rem})
	}
}

func UpdateRemittance(l *ledger.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		var input remittanceInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid update"})
			return
		}

		rem, err := l.SaveRemittance(c.Request.Context(), ledger.Update(id, input.fields()))
		if err != nil {
			respondError(c, "remittance", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"remittance": rem})
	}
}

func DeleteRemittance(l *ledger.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		removed, err := l.RemoveRemittance(c.Request.Context(), id)
		if err != nil {
			respondError(c, "remittance", err)
			return
		}
		if !removed {
			c.JSON(http.StatusNotFound, gin.H{"error": "remittance not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Remittance deleted"})
	}
}
