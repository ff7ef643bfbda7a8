package trending

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-performance-api/internal/domain"
	"github.com/vfg2006/sales-performance-api/internal/usecases/compensating"
)

func saleOn(responsible string, amount float64, year int, month time.Month, day int) domain.Sale {
	return domain.Sale{
		Responsible: responsible,
		Product:     "Armação",
		Amount:      amount,
		Date:        time.Date(year, month, day, 0, 0, 0, 0, time.UTC),
		Unit:        "Joinville",
	}
}

func plan(unitTarget float64) domain.CompensationConfig {
	return domain.CompensationConfig{
		CommissionTiers: []domain.CommissionTier{
			{Min: 0, Max: 1000, BelowTarget: 50, AtTarget: 80, UnitMet: 100},
		},
		UnitTarget: unitTarget,
	}
}

func TestMonthlyTrendService_Aggregate(t *testing.T) {
	service := NewMonthlyTrendService(compensating.NewService())

	targets := []domain.Target{
		{Responsible: "Ana", Amount: 10000, Period: "2025-01"},
		{Responsible: "Bruno", Amount: 10000, Period: "2025-02"},
		{Responsible: "Bruno", Amount: 10000, Period: "2025-03"},
	}

	sales := []domain.Sale{
		saleOn("Bruno", 3000, 2025, 3, 5),
		saleOn("Ana", 500, 2025, 1, 10),
		saleOn("Bruno", 700, 2025, 2, 1),
		saleOn("Ana", 6000, 2025, 1, 20),
	}

	result := service.Aggregate(sales, targets, plan(100000))

	require.Len(t, result, 3)
	assert.Equal(t, domain.YearMonth("2025-01"), result[0].Month)
	assert.Equal(t, domain.YearMonth("2025-02"), result[1].Month)
	assert.Equal(t, domain.YearMonth("2025-03"), result[2].Month)

	// Janeiro: 500 na faixa (abaixo da meta) = 50; 6000 fora da faixa = 1,2% = 72
	assert.Equal(t, 6500.0, result[0].SalesTotal)
	assert.Equal(t, 122.0, result[0].CommissionTotal)

	assert.Equal(t, 700.0, result[1].SalesTotal)
	assert.Equal(t, 50.0, result[1].CommissionTotal)

	assert.Equal(t, 3000.0, result[2].SalesTotal)
	assert.Equal(t, 36.0, result[2].CommissionTotal)
}

func TestMonthlyTrendService_Aggregate_SalesTotalIsPartition(t *testing.T) {
	service := NewMonthlyTrendService(compensating.NewService())

	sales := []domain.Sale{
		saleOn("Ana", 120.5, 2024, 12, 31),
		saleOn("Ana", 99.5, 2025, 1, 1),
		saleOn("Caio", 1000, 2025, 1, 15),
		saleOn("Caio", -50, 2025, 2, 2),
		saleOn("Duda", 380, 2025, 2, 28),
	}

	result := service.Aggregate(sales, nil, plan(0))

	var total float64
	for _, point := range result {
		total += point.SalesTotal
	}

	assert.Equal(t, domain.SumAmounts(sales), total)
	assert.Equal(t, 1600.0, total)
}

func TestMonthlyTrendService_Aggregate_RunningUnitTarget(t *testing.T) {
	service := NewMonthlyTrendService(compensating.NewService())
	targets := []domain.Target{{Responsible: "Ana", Amount: 50000}}

	tests := []struct {
		name       string
		sales      []domain.Sale
		commission float64
	}{
		{
			name: "Venda na faixa antes da meta da unidade - paga valor abaixo da meta",
			sales: []domain.Sale{
				saleOn("Ana", 900, 2025, 4, 1),
				saleOn("Ana", 2000, 2025, 4, 2),
			},
			// 900 com acumulado 900 < 1000 = 50; 2000 fora da faixa = 24
			commission: 74,
		},
		{
			name: "Mesma venda após a meta da unidade - paga valor de meta da unidade",
			sales: []domain.Sale{
				saleOn("Ana", 2000, 2025, 4, 2),
				saleOn("Ana", 900, 2025, 4, 1),
			},
			// 2000 fora da faixa = 24; 900 com acumulado 2900 >= 1000 = 100
			commission: 124,
		},
		{
			name: "A venda que atinge a meta já conta como meta batida",
			sales: []domain.Sale{
				saleOn("Ana", 400, 2025, 4, 1),
				saleOn("Ana", 600, 2025, 4, 3),
			},
			// 400 com acumulado 400 = 50; 600 com acumulado 1000 = 100
			commission: 150,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := service.Aggregate(tt.sales, targets, plan(1000))

			require.Len(t, result, 1)
			assert.Equal(t, tt.commission, result[0].CommissionTotal)
		})
	}
}

func TestMonthlyTrendService_Aggregate_TargetLookupIgnoresCase(t *testing.T) {
	service := NewMonthlyTrendService(compensating.NewService())

	targets := []domain.Target{{Responsible: "  ana  ", Amount: 400, Period: "2025-05"}}
	sales := []domain.Sale{saleOn(" ANA", 500, 2025, 5, 12)}

	result := service.Aggregate(sales, targets, plan(100000))

	require.Len(t, result, 1)
	assert.Equal(t, 80.0, result[0].CommissionTotal)
}

func TestMonthlyTrendService_Aggregate_Empty(t *testing.T) {
	service := NewMonthlyTrendService(compensating.NewService())

	result := service.Aggregate(nil, nil, domain.CompensationConfig{})

	assert.NotNil(t, result)
	assert.Empty(t, result)
}
