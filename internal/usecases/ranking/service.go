// Package ranking ordena os consultores oficiais pelo faturamento do mês
package ranking

import (
	"github.com/vfg2006/sales-performance-api/internal/domain"
	"github.com/vfg2006/sales-performance-api/pkg/utils"
)

const DefaultTopPerformersLimit = 5

type RankingService interface {
	Rank(sales []domain.Sale, targets []domain.Target, month domain.YearMonth, topN int) []domain.TopPerformer
}

type TopPerformerRankingService struct{}

func NewTopPerformerRankingService() RankingService {
	return &TopPerformerRankingService{}
}

// Rank soma as vendas do mês por consultor presente nas metas e devolve os topN maiores
// faturamentos em ordem decrescente. Empates mantêm a ordem da primeira venda.
func (s *TopPerformerRankingService) Rank(
	sales []domain.Sale,
	targets []domain.Target,
	month domain.YearMonth,
	topN int,
) []domain.TopPerformer {
	if topN <= 0 {
		topN = DefaultTopPerformersLimit
	}

	roster := domain.NewRoster(targets, month)

	monthSales := utils.Filter(sales,
		func(sale domain.Sale) bool { return month.Contains(sale.Date) },
		func(sale domain.Sale) bool { return roster.Has(sale.ResponsibleName()) },
	)

	keys, grouped := utils.GroupBy(monthSales, func(sale domain.Sale) string {
		return domain.NormalizeName(sale.Responsible)
	})

	ranking := make([]domain.TopPerformer, 0, len(keys))
	for _, key := range keys {
		consultantSales := grouped[key]
		ranking = append(ranking, domain.TopPerformer{
			Name:  consultantSales[0].ResponsibleName(),
			Total: domain.SumAmounts(consultantSales),
		})
	}

	ranking = utils.SortBy(ranking, func(a, b domain.TopPerformer) bool {
		return a.Total > b.Total
	})

	if len(ranking) > topN {
		ranking = ranking[:topN]
	}

	return ranking
}
