// Package productivity monta a matriz de produção diária por consultor
package productivity

import (
	"github.com/vfg2006/sales-performance-api/internal/domain"
	"github.com/vfg2006/sales-performance-api/pkg/utils"
)

type ProductivityService interface {
	Build(sales []domain.Sale, targets []domain.Target, month domain.YearMonth) domain.ProductivityMatrix
}

type DailyProductivityService struct{}

func NewDailyProductivityService() ProductivityService {
	return &DailyProductivityService{}
}

// Build cria uma linha zerada por consultor oficial (roster das metas do mês) e soma cada
// venda do mês no dia correspondente. Vendas de consultores fora do roster são descartadas.
func (s *DailyProductivityService) Build(
	sales []domain.Sale,
	targets []domain.Target,
	month domain.YearMonth,
) domain.ProductivityMatrix {
	daysInMonth := month.Days()
	roster := domain.NewRoster(targets, month)

	matrix := domain.ProductivityMatrix{
		Month:       month,
		Days:        make([]int, daysInMonth),
		Consultants: roster.Names(),
		Series:      make(map[string][]float64, roster.Len()),
	}

	for i := range matrix.Days {
		matrix.Days[i] = i + 1
	}

	for _, name := range matrix.Consultants {
		matrix.Series[name] = make([]float64, daysInMonth)
	}

	monthSales := utils.Filter(sales, func(sale domain.Sale) bool {
		return month.Contains(sale.Date)
	})

	for _, sale := range monthSales {
		name, official := roster.Resolve(sale.ResponsibleName())
		if !official {
			continue
		}

		matrix.Series[name][sale.Date.Day()-1] += sale.NetAmount()
	}

	return matrix
}
