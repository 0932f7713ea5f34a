package entity

// Weekday numbering used by CalendarFields: the week starts on weekday 1 (Sunday)
// and ends on weekday 7 (Saturday).
const (
	FirstWeekday = 1
	LastWeekday  = 7
)

// MaxNanosecond is the largest nanosecond value inside one second
const MaxNanosecond = 999999999

// CalendarFields is the decomposition of an instant in a given calendar
type CalendarFields struct {
	Era            int `json:"era"`
	Year           int `json:"year"`
	Month          int `json:"month"`
	Day            int `json:"day"`
	Hour           int `json:"hour"`
	Minute         int `json:"minute"`
	Second         int `json:"second"`
	Nanosecond     int `json:"nanosecond"`
	Weekday        int `json:"weekday"`        // 1 = Sunday ... 7 = Saturday
	WeekdayOrdinal int `json:"weekdayOrdinal"` // nth occurrence of Weekday within the month
	WeekOfMonth    int `json:"weekOfMonth"`
	WeekOfYear     int `json:"weekOfYear"`
	Quarter        int `json:"quarter"`
}

// DateFields returns fields for midnight of the given date
func DateFields(year, month, day int) CalendarFields {
	return CalendarFields{Year: year, Month: month, Day: day}
}

// DateTimeFields returns fields for the given date and time of day
func DateTimeFields(year, month, day, hour, minute, second int) CalendarFields {
	return CalendarFields{
		Year:   year,
		Month:  month,
		Day:    day,
		Hour:   hour,
		Minute: minute,
		Second: second,
	}
}

// WithTime returns a copy of f with the time of day replaced and the nanosecond cleared
func (f CalendarFields) WithTime(hour, minute, second int) CalendarFields {
	f.Hour = hour
	f.Minute = minute
	f.Second = second
	f.Nanosecond = 0
	return f
}

// LogFields returns a map of fields for structured logging
func (f CalendarFields) LogFields() map[string]any {
	return map[string]any{
		"year":        f.Year,
		"month":       f.Month,
		"day":         f.Day,
		"hour":        f.Hour,
		"minute":      f.Minute,
		"second":      f.Second,
		"nanosecond":  f.Nanosecond,
		"weekday":     f.Weekday,
		"weekOfMonth": f.WeekOfMonth,
	}
}
