package error

import (
	"errors"
	"fmt"
	"testing"
)

func TestBaseErrorTypes(t *testing.T) {
	if ErrInvalidFieldCombination.Error() != "invalid calendar field combination" {
		t.Errorf("ErrInvalidFieldCombination has unexpected message: %s", ErrInvalidFieldCombination.Error())
	}
	if ErrUnsupportedUnit.Error() != "operation not supported for this unit" {
		t.Errorf("ErrUnsupportedUnit has unexpected message: %s", ErrUnsupportedUnit.Error())
	}
}

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"InvalidFieldCombination", ErrInvalidFieldCombination, 4220},
		{"UnsupportedUnit", ErrUnsupportedUnit, 4221},
		{"InvalidUnit", ErrInvalidUnit, 4001},
		{"InvalidInstant", ErrInvalidInstant, 4002},
		{"InvalidCalendarName", ErrInvalidCalendarName, 4003},
		{"InvalidTimeZone", ErrInvalidTimeZone, 4004},
		{"CalendarNotFound", ErrCalendarNotFound, 4040},
		{"NotFound", ErrNotFound, 4040},
		{"DuplicateCalendar", ErrDuplicateCalendar, 4090},
		{"DatabaseConnection", ErrDatabaseConnection, 5030},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrInvalidUnit), 4001},
		{"FieldCombinationError", NewFieldCombinationError("UTC", nil, "day out of range"), 4220},
		{"UnitError", NewUnitError("startOf", "week", ErrInvalidFieldCombination), 4220},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestFieldCombinationError(t *testing.T) {
	err := NewFieldCombinationError("Europe/Berlin", map[string]any{"month": 2, "day": 31}, "day 31 exceeds 28 days in month")
	if err == nil {
		t.Fatal("NewFieldCombinationError returned nil")
	}

	if !errors.Is(err, ErrInvalidFieldCombination) {
		t.Errorf("errors.Is(err, ErrInvalidFieldCombination) = false, want true")
	}
	if !IsInvalidFieldCombinationError(fmt.Errorf("next month: %w", err)) {
		t.Errorf("IsInvalidFieldCombinationError(wrapped) = false, want true")
	}

	var fieldErr *FieldCombinationError
	if !errors.As(err, &fieldErr) {
		t.Fatalf("errors.As failed: not a *FieldCombinationError")
	}

	fields := fieldErr.LogFields()
	if fields["calendar"] != "Europe/Berlin" {
		t.Errorf("LogFields()[calendar] = %v, want Europe/Berlin", fields["calendar"])
	}
	if fields["field_day"] != 31 {
		t.Errorf("LogFields()[field_day] = %v, want 31", fields["field_day"])
	}
	if fields["error_code"] != CodeInvalidFieldCombination {
		t.Errorf("LogFields()[error_code] = %v, want %d", fields["error_code"], CodeInvalidFieldCombination)
	}
}

func TestUnitError(t *testing.T) {
	err := NewUnitError("next", "month", ErrInvalidFieldCombination)

	expectedErrMsg := "next(month) failed: invalid calendar field combination"
	if err.Error() != expectedErrMsg {
		t.Errorf("UnitError.Error() = %s, want %s", err.Error(), expectedErrMsg)
	}

	if !errors.Is(err, ErrInvalidFieldCombination) {
		t.Errorf("errors.Is(err, ErrInvalidFieldCombination) = false, want true")
	}
}

func TestErrorHelperFunctions(t *testing.T) {
	if IsUnsupportedUnitError(ErrInvalidUnit) {
		t.Errorf("IsUnsupportedUnitError(ErrInvalidUnit) = true, want false")
	}
	if !IsUnsupportedUnitError(fmt.Errorf("round down: %w", ErrUnsupportedUnit)) {
		t.Errorf("IsUnsupportedUnitError(wrapped) = false, want true")
	}

	if !IsNotFoundError(ErrCalendarNotFound) {
		t.Errorf("IsNotFoundError(ErrCalendarNotFound) = false, want true")
	}
	if IsNotFoundError(ErrDuplicateCalendar) {
		t.Errorf("IsNotFoundError(ErrDuplicateCalendar) = true, want false")
	}

	if !IsClientError(fmt.Errorf("%w: bogus", ErrInvalidTimeZone)) {
		t.Errorf("IsClientError(ErrInvalidTimeZone) = false, want true")
	}
	if IsClientError(ErrInternalServer) {
		t.Errorf("IsClientError(ErrInternalServer) = true, want false")
	}
}
