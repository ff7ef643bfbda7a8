package dashboard

import (
	"errors"
	"fmt"
)

// Erros específicos para a montagem de indicadores
var (
	// Erros de validação
	ErrUnitRequired = errors.New("unit is required")
	ErrInvalidMonth = errors.New("invalid month, expected YYYY-MM")

	// Erros de execução
	ErrBuildCanceled = errors.New("dashboard build canceled")
	ErrEncodeInput   = errors.New("error encoding dashboard input")
	ErrGenerateID    = errors.New("error generating snapshot id")
)

// DashboardError é um erro com contexto adicional da unidade
type DashboardError struct {
	Err     error  // Erro base
	Code    string // Código do erro
	Unit    string // Unidade envolvida (quando aplicável)
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *DashboardError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *DashboardError) Unwrap() error {
	return e.Err
}

// NewDashboardError cria um novo DashboardError
func NewDashboardError(err error, code string, details string) *DashboardError {
	return &DashboardError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// NewDashboardErrorWithUnit cria um novo DashboardError com a unidade
func NewDashboardErrorWithUnit(err error, code string, unit string, details string) *DashboardError {
	return &DashboardError{
		Err:     err,
		Code:    code,
		Unit:    unit,
		Details: details,
	}
}
