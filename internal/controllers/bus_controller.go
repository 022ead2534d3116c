package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bus_ledger/internal/ledger"
	"bus_ledger/internal/reports"
)

type busInput struct {
	Type             string `json:"type"`
	DriverName       string `json:"driver_name"`
	ControllerName   string `json:"controller_name"`
	PlateNumber      string `json:"plate_number"`
	RegistrationDate string `json:"registration_date"`
	AccountantName   string `json:"accountant_name"`
}

func (in busInput) fields() ledger.BusFields {
	return ledger.BusFields{
		Type:             in.Type,
		DriverName:       in.DriverName,
		ControllerName:   in.ControllerName,
		PlateNumber:      in.PlateNumber,
		RegistrationDate: in.RegistrationDate,
		AccountantName:   in.AccountantName,
	}
}

func ListBuses(l *ledger.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"data": l.Buses()})
	}
}

// CreateBus registers a new bus.
func CreateBus(l *ledger.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input busInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid bus input: " + err.Error()})
			return
		}

		bus, err := l.SaveBus(c.Request.Context(), ledger.Create(input.fields()))
		if err != nil {
			respondError(c, "bus", err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"bus": bus})
	}
}

// UpdateBus replaces the fields of a bus. Remittances keep the details they
// were recorded with.
func UpdateBus(l *ledger.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		var input busInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid update"})
			return
		}

		bus, err := l.SaveBus(c.Request.Context(), ledger.Update(id, input.fields()))
		if err != nil {
			respondError(c, "bus", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"bus": bus})
	}
}

// DeleteBus removes a bus with its employee entry and remittances.
func DeleteBus(l *ledger.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		removed, err := l.RemoveBus(c.Request.Context(), id)
		if err != nil {
			respondError(c, "bus", err)
			return
		}
		if !removed {
			c.JSON(http.StatusNotFound, gin.H{"error": "bus not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Bus deleted"})
	}
}

// ListBusTypes feeds the type filter of the bilan.
func ListBusTypes(l *ledger.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"data": reports.BusTypes(l.Buses())})
	}
}

// ListAvailableBuses lists the buses an employee entry can be assigned to.
// ?editing=<employee id> keeps that employee's own bus in the list.
func ListAvailableBuses(l *ledger.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		snap := l.Snapshot()
		editing := parseRef(c.Query("editing"))
		c.JSON(http.StatusOK, gin.H{"data": reports.AvailableBuses(snap.Buses, snap.Employees, editing)})
	}
}
