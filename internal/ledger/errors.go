package ledger

import "errors"

var (
	// ErrNotFound is returned when an update targets an id that does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateAssignment is returned when a bus already has an employee entry.
	ErrDuplicateAssignment = errors.New("bus already has an employee")
	// ErrInvalidSelection is returned when the referenced bus does not exist.
	ErrInvalidSelection = errors.New("no valid bus selected")
)
