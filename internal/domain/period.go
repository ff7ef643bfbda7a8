package domain

import (
	"fmt"
	"time"
)

// YearMonthLayout é o layout de um período mensal (ordenável lexicograficamente)
const YearMonthLayout = "2006-01"

// YearMonth representa um mês no formato yyyy-mm
type YearMonth string

// YearMonthOf retorna o período mensal de uma data
func YearMonthOf(date time.Time) YearMonth {
	return YearMonth(date.Format(YearMonthLayout))
}

// ParseYearMonth valida e converte uma string yyyy-mm
func ParseYearMonth(value string) (YearMonth, error) {
	parsed, err := time.Parse(YearMonthLayout, value)
	if err != nil {
		return "", fmt.Errorf("período inválido %q, use o formato yyyy-mm: %w", value, err)
	}

	return YearMonthOf(parsed), nil
}

func (ym YearMonth) String() string {
	return string(ym)
}

// FirstDay retorna o primeiro dia do mês em UTC. Períodos inválidos retornam a data zero.
func (ym YearMonth) FirstDay() time.Time {
	parsed, err := time.Parse(YearMonthLayout, string(ym))
	if err != nil {
		return time.Time{}
	}

	return parsed
}

// LastDay retorna o último dia do mês em UTC
func (ym YearMonth) LastDay() time.Time {
	first := ym.FirstDay()
	if first.IsZero() {
		return first
	}

	return first.AddDate(0, 1, -1)
}

// Days retorna a quantidade de dias corridos do mês
func (ym YearMonth) Days() int {
	last := ym.LastDay()
	if last.IsZero() {
		return 0
	}

	return last.Day()
}

// Contains indica se a data pertence ao mês
func (ym YearMonth) Contains(date time.Time) bool {
	return ym != "" && YearMonthOf(date) == ym
}
