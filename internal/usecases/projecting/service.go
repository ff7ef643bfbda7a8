// Package projecting estima o fechamento do mês pela média de vendas por dia útil
package projecting

import (
	"time"

	"github.com/vfg2006/sales-performance-api/internal/domain"
	"github.com/vfg2006/sales-performance-api/pkg/utils"
)

type ProjectionService interface {
	Project(sales []domain.Sale, unitTarget float64, month domain.YearMonth, now time.Time) domain.Projection
	ProjectFor(sales []domain.Sale, unitTarget float64, month domain.YearMonth, now time.Time, predicates ...utils.Predicate[domain.Sale]) domain.Projection
}

type ClosingProjectionService struct{}

func NewClosingProjectionService() ProjectionService {
	return &ClosingProjectionService{}
}

// Project calcula vendido até agora, média por dia útil já transcorrido e a projeção
// de fechamento (vendido + média × dias úteis restantes). "now" é sempre informado pelo chamador.
func (s *ClosingProjectionService) Project(
	sales []domain.Sale,
	unitTarget float64,
	month domain.YearMonth,
	now time.Time,
) domain.Projection {
	monthStart := month.FirstDay()
	if monthStart.IsZero() {
		return domain.Projection{}
	}

	businessDays := utils.BusinessDays(monthStart, month.LastDay())
	passed, remaining := utils.SplitBusinessDays(businessDays, now)

	soldToDate := domain.SumAmounts(utils.Filter(sales, func(sale domain.Sale) bool {
		return utils.BeforeOrEqualDate(monthStart, sale.Date) && utils.BeforeOrEqualDate(sale.Date, now)
	}))

	avgDaily := utils.SafeDivide(soldToDate, float64(len(passed)))
	projectedTotal := soldToDate + avgDaily*float64(len(remaining))

	return domain.Projection{
		SoldToDate:            soldToDate,
		AvgDaily:              avgDaily,
		ProjectedTotal:        projectedTotal,
		PctOfMeta:             utils.Percent(projectedTotal, domain.SanitizeAmount(unitTarget)),
		PassedBusinessDays:    len(passed),
		RemainingBusinessDays: len(remaining),
	}
}

// ProjectFor aplica a projeção apenas às vendas que atendem aos predicados (ex.: um consultor)
func (s *ClosingProjectionService) ProjectFor(
	sales []domain.Sale,
	unitTarget float64,
	month domain.YearMonth,
	now time.Time,
	predicates ...utils.Predicate[domain.Sale],
) domain.Projection {
	return s.Project(utils.Filter(sales, predicates...), unitTarget, month, now)
}

// ByResponsible seleciona as vendas de um consultor, ignorando caixa e espaços
func ByResponsible(name string) utils.Predicate[domain.Sale] {
	key := domain.NormalizeName(name)
	return func(sale domain.Sale) bool {
		return domain.NormalizeName(sale.Responsible) == key
	}
}
