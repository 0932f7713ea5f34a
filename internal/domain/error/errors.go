package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidRequest          = 4000
	CodeInvalidUnit             = 4001
	CodeInvalidInstant          = 4002
	CodeInvalidCalendarName     = 4003
	CodeInvalidTimeZone         = 4004
	CodeConstraintViolation     = 4005
	CodeCalendarNotFound        = 4040 // also used for unknown routes
	CodeDuplicateCalendar       = 4090
	CodeInvalidFieldCombination = 4220
	CodeUnsupportedUnit         = 4221

	// 5xxx - Server errors
	CodeInternalServer     = 5000
	CodeDatabaseConnection = 5030
)

// Base error types
var (
	// ErrInvalidFieldCombination is returned by a calendar service asked to build an
	// instant from an inconsistent or out-of-range set of fields
	ErrInvalidFieldCombination = errors.New("invalid calendar field combination")

	// ErrUnsupportedUnit is returned when an operation has no result for the requested unit
	ErrUnsupportedUnit = errors.New("operation not supported for this unit")

	// ErrInvalidUnit is returned when a unit name cannot be parsed
	ErrInvalidUnit = errors.New("invalid calendar unit")

	// ErrInvalidInstant is returned when an instant cannot be parsed
	ErrInvalidInstant = errors.New("invalid instant")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrCalendarNotFound is returned when the requested calendar profile doesn't exist
	ErrCalendarNotFound = errors.New("calendar not found")

	// ErrDuplicateCalendar is returned when creating a calendar profile whose name is taken
	ErrDuplicateCalendar = errors.New("calendar already exists")

	// ErrInvalidCalendarName is returned when a calendar name is not a valid identifier
	ErrInvalidCalendarName = errors.New("invalid calendar name")

	// ErrInvalidTimeZone is returned when a time zone name cannot be loaded
	ErrInvalidTimeZone = errors.New("invalid time zone")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrDatabaseConnection is returned when there's a problem connecting to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidFieldCombination):
		return CodeInvalidFieldCombination
	case errors.Is(err, ErrUnsupportedUnit):
		return CodeUnsupportedUnit
	case errors.Is(err, ErrInvalidUnit):
		return CodeInvalidUnit
	case errors.Is(err, ErrInvalidInstant):
		return CodeInvalidInstant
	case errors.Is(err, ErrInvalidCalendarName):
		return CodeInvalidCalendarName
	case errors.Is(err, ErrInvalidTimeZone):
		return CodeInvalidTimeZone
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrCalendarNotFound), errors.Is(err, ErrNotFound):
		return CodeCalendarNotFound
	case errors.Is(err, ErrDuplicateCalendar):
		return CodeDuplicateCalendar
	case errors.Is(err, ErrConstraintViolation):
		return CodeConstraintViolation
	case errors.Is(err, ErrDatabaseConnection):
		return CodeDatabaseConnection
	default:
		return CodeInternalServer
	}
}

// FieldCombinationError describes a field set a calendar could not turn into an instant
type FieldCombinationError struct {
	Calendar string
	Fields   map[string]any
	Reason   string
}

// Error implements the error interface
func (e *FieldCombinationError) Error() string {
	return fmt.Sprintf("invalid calendar field combination in %s: %s (fields: %v)",
		e.Calendar, e.Reason, e.Fields)
}

// Is checks if the target error is an ErrInvalidFieldCombination
func (e *FieldCombinationError) Is(target error) bool {
	return target == ErrInvalidFieldCombination
}

// LogFields returns a map of fields for structured logging
func (e *FieldCombinationError) LogFields() map[string]any {
	fields := map[string]any{
		"error_type": "invalid_field_combination",
		"calendar":   e.Calendar,
		"reason":     e.Reason,
		"error_code": CodeInvalidFieldCombination,
	}
	for k, v := range e.Fields {
		fields["field_"+k] = v
	}
	return fields
}

// NewFieldCombinationError creates a detailed invalid field combination error
func NewFieldCombinationError(calendar string, fields map[string]any, reason string) error {
	return &FieldCombinationError{
		Calendar: calendar,
		Fields:   fields,
		Reason:   reason,
	}
}

// UnitError represents an operation that failed for a specific calendar unit
type UnitError struct {
	Operation string
	Unit      string
	Err       error
}

// Error implements the error interface for UnitError
func (e *UnitError) Error() string {
	return fmt.Sprintf("%s(%s) failed: %v", e.Operation, e.Unit, e.Err)
}

// Unwrap returns the underlying error
func (e *UnitError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *UnitError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "unit_error",
		"operation":  e.Operation,
		"unit":       e.Unit,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewUnitError wraps err with the operation and unit it happened in
func NewUnitError(operation, unit string, err error) error {
	return &UnitError{
		Operation: operation,
		Unit:      unit,
		Err:       err,
	}
}

// IsInvalidFieldCombinationError checks if the error came from building an instant from fields
func IsInvalidFieldCombinationError(err error) bool {
	return errors.Is(err, ErrInvalidFieldCombination)
}

// IsUnsupportedUnitError checks if the error is an unsupported unit error
func IsUnsupportedUnitError(err error) bool {
	return errors.Is(err, ErrUnsupportedUnit)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrCalendarNotFound)
}

// IsClientError checks if the error was caused by invalid caller input
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidRequest) ||
		errors.Is(err, ErrInvalidUnit) ||
		errors.Is(err, ErrInvalidInstant) ||
		errors.Is(err, ErrInvalidCalendarName) ||
		errors.Is(err, ErrInvalidTimeZone)
}
