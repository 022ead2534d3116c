package controllers

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"

	"bus_ledger/internal/ledger"
	"bus_ledger/internal/middleware"
	"bus_ledger/internal/models"
)

// MaxPhotoBytes bounds a single uploaded photo.
const MaxPhotoBytes = 5 << 20

// ErrPhotoRead aborts an employee save when an uploaded photo cannot be read.
var ErrPhotoRead = errors.New("photo could not be read")

// photoDataURL reads the named multipart file into a data URL. ok is false
// when no file was sent under that name.
func photoDataURL(c *gin.Context, field string) (url string, ok bool, err error) {
	fh, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%w: %s: %v", ErrPhotoRead, field, err)
	}
	data, err := readPhoto(fh)
	if err != nil {
		return "", false, fmt.Errorf("%w: %s: %v", ErrPhotoRead, field, err)
	}
	mime := mimetype.Detect(data).String()
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), true, nil
}

func readPhoto(fh *multipart.FileHeader) ([]byte, error) {
	if fh.Size > MaxPhotoBytes {
		return nil, fmt.Errorf("file of %d bytes exceeds %d", fh.Size, MaxPhotoBytes)
	}
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(io.LimitReader(f, MaxPhotoBytes+1))
}

// employeeFields reads the employee form. Photos not sent fall back to
// those of current.
func employeeFields(c *gin.Context, current models.Employee) (ledger.EmployeeFields, error) {
	f := ledger.EmployeeFields{
		BusID:            parseRef(c.PostForm("bus_id")),
		DriverSalary:     ledger.ParseAmount(c.PostForm("driver_salary")),
		ControllerSalary: ledger.ParseAmount(c.PostForm("controller_salary")),
		DriverPhoto:      current.DriverPhoto,
		ControllerPhoto:  current.ControllerPhoto,
	}

	photos := []struct {
		field string
		dst   *string
	}{
		{"driver_photo", &f.DriverPhoto},
		{"controller_photo", &f.ControllerPhoto},
	}
	for _, p := range photos {
		url, ok, err := photoDataURL(c, p.field)
		if err != nil {
			return ledger.EmployeeFields{}, err
		}
		if ok {
			*p.dst = url
		}
	}
	return f, nil
}

func ListEmployees(l *ledger.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"data": l.Employees()})
	}
}

// CreateEmployee adds the payroll entry of a bus from a multipart form.
func CreateEmployee(l *ledger.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		fields, err := employeeFields(c, models.Employee{})
		if err != nil {
			middleware.Log(c).WithError(err).Warn("employee photo rejected")
			respondError(c, "employee", err)
			return
		}

		emp, err := l.SaveEmployee(c.Request.Context(), ledger.Create(fields))
		if err != nil {
			respondError(c, "employee", err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"employee": emp})
	}
}

// UpdateEmployee replaces an employee entry; a photo left empty in the form
// keeps the stored one.
func UpdateEmployee(l *ledger.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		current, exists := l.Employee(id)
		if !exists {
			c.JSON(http.StatusNotFound, gin.H{"error": "employee not found"})
			return
		}

		fields, err := employeeFields(c, current)
		if err != nil {
			middleware.Log(c).WithError(err).Warn("employee photo rejected")
			respondError(c, "employee", err)
			return
		}

		emp, err := l.SaveEmployee(c.Request.Context(), ledger.Update(id, fields))
		if err != nil {
			respondError(c, "employee", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"employee": emp})
	}
}

func DeleteEmployee(l *ledger.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		removed, err := l.RemoveEmployee(c.Request.Context(), id)
		if err != nil {
			respondError(c, "employee", err)
			return
		}
		if !removed {
			c.JSON(http.StatusNotFound, gin.H{"error": "employee not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Employee deleted"})
	}
}
