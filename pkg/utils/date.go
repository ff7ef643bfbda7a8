package utils

import "time"

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse(time.DateOnly, dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// DateOnly descarta o horário e o fuso, mantendo o dia do calendário em UTC
func DateOnly(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
}

// BeforeOrEqualDate indica se date1 é o mesmo dia ou anterior a date2
func BeforeOrEqualDate(date1, date2 time.Time) bool {
	return !DateOnly(date1).After(DateOnly(date2))
}

// IsBusinessDay indica se a data não cai em sábado ou domingo
func IsBusinessDay(date time.Time) bool {
	weekday := date.Weekday()
	return weekday != time.Saturday && weekday != time.Sunday
}

// BusinessDays lista os dias úteis entre start e end, inclusive
func BusinessDays(start, end time.Time) []time.Time {
	start, end = DateOnly(start), DateOnly(end)
	if start.IsZero() || end.Before(start) {
		return []time.Time{}
	}

	days := make([]time.Time, 0, 23)
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		if IsBusinessDay(day) {
			days = append(days, day)
		}
	}

	return days
}

// SplitBusinessDays separa os dias úteis já transcorridos (<= now) dos restantes
func SplitBusinessDays(days []time.Time, now time.Time) (passed, remaining []time.Time) {
	passed = make([]time.Time, 0, len(days))
	remaining = make([]time.Time, 0, len(days))

	for _, day := range days {
		if BeforeOrEqualDate(day, now) {
			passed = append(passed, day)
			continue
		}
		remaining = append(remaining, day)
	}

	return passed, remaining
}
