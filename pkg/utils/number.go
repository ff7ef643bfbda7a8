package utils

import "math"

// SafeDivide divide a por b retornando zero quando o divisor é zero ou o resultado não é finito
func SafeDivide(a, b float64) float64 {
	if b == 0 {
		return 0
	}

	result := a / b
	if math.IsNaN(result) || math.IsInf(result, 0) {
		return 0
	}

	return result
}

// Percent retorna part/whole*100 com divisão protegida
func Percent(part, whole float64) float64 {
	return SafeDivide(part, whole) * 100
}
