package ranking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-performance-api/internal/domain"
)

func saleOn(responsible string, amount float64, day int) domain.Sale {
	return domain.Sale{
		Responsible: responsible,
		Product:     "Lente",
		Amount:      amount,
		Date:        time.Date(2025, time.March, day, 0, 0, 0, 0, time.UTC),
	}
}

func TestTopPerformerRankingService_Rank(t *testing.T) {
	service := NewTopPerformerRankingService()

	targets := []domain.Target{
		{Responsible: "Ana", Amount: 10000},
		{Responsible: "Bruno", Amount: 10000},
		{Responsible: "Carla", Amount: 10000},
	}

	tests := []struct {
		name     string
		sales    []domain.Sale
		topN     int
		expected []domain.TopPerformer
	}{
		{
			name: "Ordena pelo faturamento em ordem decrescente",
			sales: []domain.Sale{
				saleOn("Ana", 100, 1),
				saleOn("Bruno", 500, 2),
				saleOn("ana", 300, 3),
				saleOn("Carla", 50, 4),
			},
			topN: 3,
			expected: []domain.TopPerformer{
				{Name: "Bruno", Total: 500},
				{Name: "Ana", Total: 400},
				{Name: "Carla", Total: 50},
			},
		},
		{
			name: "Limita ao topN",
			sales: []domain.Sale{
				saleOn("Ana", 100, 1),
				saleOn("Bruno", 500, 2),
				saleOn("Carla", 300, 3),
			},
			topN: 2,
			expected: []domain.TopPerformer{
				{Name: "Bruno", Total: 500},
				{Name: "Carla", Total: 300},
			},
		},
		{
			name: "Empate mantém a ordem de aparição",
			sales: []domain.Sale{
				saleOn("Carla", 200, 1),
				saleOn("Ana", 200, 2),
			},
			topN: 5,
			expected: []domain.TopPerformer{
				{Name: "Carla", Total: 200},
				{Name: "Ana", Total: 200},
			},
		},
		{
			name: "Ignora consultores fora das metas e vendas de outros meses",
			sales: []domain.Sale{
				saleOn("Zeca", 9000, 1),
				saleOn("Ana", 100, 1),
				{Responsible: "Bruno", Amount: 8000, Date: time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)},
			},
			topN: 5,
			expected: []domain.TopPerformer{
				{Name: "Ana", Total: 100},
			},
		},
		{
			name: "Nome exibido é o primeiro visto, sem espaços",
			sales: []domain.Sale{
				saleOn("  BRUNO ", 10, 1),
				saleOn("Bruno", 20, 2),
			},
			topN: 5,
			expected: []domain.TopPerformer{
				{Name: "BRUNO", Total: 30},
			},
		},
		{
			name:     "Sem vendas - ranking vazio",
			topN:     5,
			expected: []domain.TopPerformer{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := service.Rank(tt.sales, targets, "2025-03", tt.topN)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestTopPerformerRankingService_Rank_DefaultLimit(t *testing.T) {
	service := NewTopPerformerRankingService()

	names := []string{"A", "B", "C", "D", "E", "F", "G"}
	targets := make([]domain.Target, 0, len(names))
	sales := make([]domain.Sale, 0, len(names))
	for i, name := range names {
		targets = append(targets, domain.Target{Responsible: name, Amount: 1000})
		sales = append(sales, saleOn(name, float64(100*(i+1)), i+1))
	}

	for _, topN := range []int{0, -3} {
		result := service.Rank(sales, targets, "2025-03", topN)

		require.Len(t, result, DefaultTopPerformersLimit)
		assert.Equal(t, "G", result[0].Name)
		assert.Equal(t, "C", result[4].Name)
	}
}

func TestTopPerformerRankingService_Rank_OnlyRosterNames(t *testing.T) {
	service := NewTopPerformerRankingService()

	targets := []domain.Target{
		{Responsible: "Ana", Amount: 1000, Period: "2025-03"},
		{Responsible: "Bruno", Amount: 1000, Period: "2025-02"},
	}
	sales := []domain.Sale{
		saleOn("Bruno", 700, 5),
		saleOn("Ana", 100, 6),
		saleOn("Caio", 900, 7),
	}

	result := service.Rank(sales, targets, "2025-03", 10)

	require.LessOrEqual(t, len(result), 10)
	for i, performer := range result {
		assert.True(t, domain.NewRoster(targets, "2025-03").Has(performer.Name))
		if i > 0 {
			assert.GreaterOrEqual(t, result[i-1].Total, performer.Total)
		}
	}
	assert.Equal(t, []domain.TopPerformer{{Name: "Ana", Total: 100}}, result)
}
