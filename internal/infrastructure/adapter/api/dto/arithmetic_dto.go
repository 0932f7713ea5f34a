package dto

import "github.com/amirhossein-jamali/calendar-units/internal/domain/entity"

// Instants are RFC3339 strings; an omitted "at" means the current time.

// PeriodQuery selects a unit and reference instant for start-of, end-of, next,
// previous and round-down
type PeriodQuery struct {
	Unit string `form:"unit" binding:"required"`
	At   string `form:"at"`
}

// PeriodResponse is the result of a single-instant operation
type PeriodResponse struct {
	Calendar  string `json:"calendar"`
	Operation string `json:"operation"`
	Unit      string `json:"unit"`
	Input     string `json:"input"`
	Result    string `json:"result"`
}

// CountQuery selects the unit and interval to count
type CountQuery struct {
	Unit string `form:"unit" binding:"required"`
	From string `form:"from" binding:"required"`
	To   string `form:"to" binding:"required"`
}

// CountResponse reports how many units fit in an interval
type CountResponse struct {
	Calendar     string  `json:"calendar"`
	Unit         string  `json:"unit"`
	From         string  `json:"from"`
	To           string  `json:"to"`
	Count        int     `json:"count"`
	PreciseCount float64 `json:"preciseCount"`
}

// UnitsWithinQuery selects a unit, the larger unit containing it and a reference instant
type UnitsWithinQuery struct {
	Unit   string `form:"unit" binding:"required"`
	Within string `form:"within" binding:"required"`
	At     string `form:"at"`
}

// UnitsWithinResponse reports how many units the enclosing larger unit holds
type UnitsWithinResponse struct {
	Calendar     string  `json:"calendar"`
	Unit         string  `json:"unit"`
	Within       string  `json:"within"`
	At           string  `json:"at"`
	Count        int     `json:"count"`
	PreciseCount float64 `json:"preciseCount"`
}

// FieldsQuery selects the instant to decompose
type FieldsQuery struct {
	At string `form:"at"`
}

// FieldsResponse is the calendar decomposition of an instant plus day classifiers
type FieldsResponse struct {
	Calendar    string                `json:"calendar"`
	At          string                `json:"at"`
	Fields      entity.CalendarFields `json:"fields"`
	IsToday     bool                  `json:"isToday"`
	IsTomorrow  bool                  `json:"isTomorrow"`
	IsYesterday bool                  `json:"isYesterday"`
	IsWeekend   bool                  `json:"isWeekend"`
	IsWeekday   bool                  `json:"isWeekday"`
}

// CompareQuery holds the two instants to compare
type CompareQuery struct {
	A string `form:"a" binding:"required"`
	B string `form:"b" binding:"required"`
}

// CompareResponse reports -1, 0 or 1 as a is before, equal to or after b
type CompareResponse struct {
	A          string `json:"a"`
	B          string `json:"b"`
	Comparison int    `json:"comparison"`
}
