package productivity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-performance-api/internal/domain"
)

func saleOn(responsible string, amount float64, date string) domain.Sale {
	parsed, _ := time.Parse(time.DateOnly, date)
	return domain.Sale{Responsible: responsible, Product: "Lente", Amount: amount, Date: parsed}
}

func TestDailyProductivityService_Build(t *testing.T) {
	service := NewDailyProductivityService()

	targets := []domain.Target{
		{Responsible: " Ana ", Amount: 10000, Period: "2025-02"},
		{Responsible: "Bruno", Amount: 8000, Period: "2025-02"},
		{Responsible: "Carla", Amount: 8000, Period: "2025-02"},
		{Responsible: "Diego", Amount: 8000, Period: "2025-03"},
	}

	sales := []domain.Sale{
		saleOn("Ana", 100, "2025-02-01"),
		saleOn("Ana ", 50, "2025-02-01"),
		saleOn("ana", 25, "2025-02-28"),
		saleOn("Bruno", 300, "2025-02-14"),
		saleOn("Zeca", 999, "2025-02-14"),
		saleOn("Ana", 700, "2025-03-01"),
		saleOn("Diego", 400, "2025-02-10"),
	}

	matrix := service.Build(sales, targets, "2025-02")

	require.Len(t, matrix.Days, 28)
	assert.Equal(t, 1, matrix.Days[0])
	assert.Equal(t, 28, matrix.Days[27])

	assert.Equal(t, []string{"Ana", "Bruno", "Carla"}, matrix.Consultants)
	require.Len(t, matrix.Series, 3)

	assert.Equal(t, 150.0, matrix.Series["Ana"][0])
	assert.Equal(t, 25.0, matrix.Series["Ana"][27])
	assert.Equal(t, 300.0, matrix.Series["Bruno"][13])

	// Consultor oficial sem vendas continua com a linha zerada
	require.Len(t, matrix.Series["Carla"], 28)
	assert.Equal(t, 0.0, sum(matrix.Series["Carla"]))

	// Zeca não está no roster e Diego só é oficial em março
	assert.NotContains(t, matrix.Series, "Zeca")
	assert.NotContains(t, matrix.Series, "Diego")
}

func TestDailyProductivityService_Build_RowSumMatchesConsultantSales(t *testing.T) {
	service := NewDailyProductivityService()

	targets := []domain.Target{{Responsible: "Ana", Amount: 1000}}
	sales := []domain.Sale{
		saleOn("Ana", 10.25, "2024-02-29"),
		saleOn("Ana", 20.5, "2024-02-03"),
		saleOn("Ana", 30, "2024-02-03"),
		saleOn("Ana", 45, "2024-01-31"),
	}

	matrix := service.Build(sales, targets, "2024-02")

	require.Len(t, matrix.Days, 29)
	assert.Equal(t, 60.75, sum(matrix.Series["Ana"]))
	assert.Equal(t, 10.25, matrix.Series["Ana"][28])
}

func TestDailyProductivityService_Build_Empty(t *testing.T) {
	service := NewDailyProductivityService()

	matrix := service.Build(nil, nil, "2025-04")

	assert.Len(t, matrix.Days, 30)
	assert.Empty(t, matrix.Consultants)
	assert.NotNil(t, matrix.Series)
	assert.Empty(t, matrix.Series)
}

func sum(values []float64) float64 {
	var total float64
	for _, value := range values {
		total += value
	}
	return total
}
