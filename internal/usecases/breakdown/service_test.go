package breakdown

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-performance-api/internal/domain"
)

func saleOf(product string, amount float64, month time.Month) domain.Sale {
	return domain.Sale{
		Responsible: "Ana",
		Product:     product,
		Amount:      amount,
		Date:        time.Date(2025, month, 10, 0, 0, 0, 0, time.UTC),
	}
}

func TestProductBreakdownService_Breakdown(t *testing.T) {
	service := NewProductBreakdownService()

	tests := []struct {
		name     string
		sales    []domain.Sale
		expected []domain.ProductBreakdown
	}{
		{
			name: "Soma por produto na ordem de aparição",
			sales: []domain.Sale{
				saleOf("Lente", 300, time.May),
				saleOf("Armação", 200, time.May),
				saleOf("Lente", 150, time.May),
			},
			expected: []domain.ProductBreakdown{
				{Product: "Lente", Total: 450},
				{Product: "Armação", Total: 200},
			},
		},
		{
			name: "Produto em branco agrupado no rótulo padrão",
			sales: []domain.Sale{
				saleOf("", 100, time.May),
				saleOf("   ", 50, time.May),
				saleOf(" Lente ", 10, time.May),
			},
			expected: []domain.ProductBreakdown{
				{Product: domain.EmptyProductLabel, Total: 150},
				{Product: "Lente", Total: 10},
			},
		},
		{
			name: "Ignora vendas de outros meses e valores inválidos",
			sales: []domain.Sale{
				saleOf("Lente", 100, time.April),
				saleOf("Lente", -40, time.May),
				saleOf("Armação", 80, time.May),
			},
			expected: []domain.ProductBreakdown{
				{Product: "Lente", Total: 0},
				{Product: "Armação", Total: 80},
			},
		},
		{
			name:     "Sem vendas - lista vazia",
			expected: []domain.ProductBreakdown{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, service.Breakdown(tt.sales, "2025-05"))
		})
	}
}

func TestProductBreakdownService_Breakdown_TotalMatchesMonthSales(t *testing.T) {
	service := NewProductBreakdownService()

	sales := []domain.Sale{
		saleOf("Lente", 120.5, time.May),
		saleOf("Armação", 79.5, time.May),
		saleOf("", 300, time.May),
		saleOf("Lente", 1000, time.June),
	}

	var total float64
	for _, product := range service.Breakdown(sales, "2025-05") {
		total += product.Total
	}

	assert.Equal(t, 500.0, total)
}
