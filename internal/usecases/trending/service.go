// Package trending agrega vendas e comissões por mês
package trending

import (
	"github.com/vfg2006/sales-performance-api/internal/domain"
	"github.com/vfg2006/sales-performance-api/internal/usecases/compensating"
	"github.com/vfg2006/sales-performance-api/pkg/utils"
)

type TrendService interface {
	Aggregate(sales []domain.Sale, targets []domain.Target, cfg domain.CompensationConfig) []domain.MonthlyTrendPoint
}

type MonthlyTrendService struct {
	calculator compensating.Calculator
}

func NewMonthlyTrendService(calculator compensating.Calculator) TrendService {
	return &MonthlyTrendService{
		calculator: calculator,
	}
}

// Aggregate agrupa as vendas por mês e soma a comissão de cada venda individualmente.
//
// A flag de meta da unidade é avaliada contra o total acumulado do mês até a venda
// corrente (inclusive), na ordem em que as vendas foram recebidas. O resultado
// depende portanto da ordem da entrada.
func (s *MonthlyTrendService) Aggregate(
	sales []domain.Sale,
	targets []domain.Target,
	cfg domain.CompensationConfig,
) []domain.MonthlyTrendPoint {
	book := domain.NewTargetBook(targets)

	months, salesByMonth := utils.GroupBy(sales, domain.Sale.Month)

	points := make([]domain.MonthlyTrendPoint, 0, len(months))
	for _, month := range months {
		point := domain.MonthlyTrendPoint{Month: month}

		for _, sale := range salesByMonth[month] {
			point.SalesTotal += sale.NetAmount()
			unitTargetMet := point.SalesTotal >= cfg.UnitTarget

			target, _ := book.Lookup(sale.ResponsibleName(), month)

			point.CommissionTotal += s.calculator.Compute(
				target,
				[]domain.Sale{sale},
				domain.CompensationModeCommission,
				unitTargetMet,
				cfg,
			)
		}

		points = append(points, point)
	}

	return utils.SortBy(points, func(a, b domain.MonthlyTrendPoint) bool {
		return a.Month < b.Month
	})
}
