// Package breakdown consolida o faturamento do mês por produto
package breakdown

import (
	"github.com/vfg2006/sales-performance-api/internal/domain"
	"github.com/vfg2006/sales-performance-api/pkg/utils"
)

type BreakdownService interface {
	Breakdown(sales []domain.Sale, month domain.YearMonth) []domain.ProductBreakdown
}

type ProductBreakdownService struct{}

func NewProductBreakdownService() BreakdownService {
	return &ProductBreakdownService{}
}

// Breakdown soma as vendas do mês por produto na ordem da primeira ocorrência.
// Produto em branco é agrupado sob domain.EmptyProductLabel.
func (s *ProductBreakdownService) Breakdown(sales []domain.Sale, month domain.YearMonth) []domain.ProductBreakdown {
	monthSales := utils.Filter(sales, func(sale domain.Sale) bool {
		return month.Contains(sale.Date)
	})

	products, grouped := utils.GroupBy(monthSales, domain.Sale.ProductLabel)

	result := make([]domain.ProductBreakdown, 0, len(products))
	for _, product := range products {
		result = append(result, domain.ProductBreakdown{
			Product: product,
			Total:   domain.SumAmounts(grouped[product]),
		})
	}

	return result
}
