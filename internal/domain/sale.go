package domain

import (
	"math"
	"strings"
	"time"
)

// EmptyProductLabel substitui o nome de produtos não informados
const EmptyProductLabel = "—"

// Sale é um registro de venda já normalizado pela ingestão externa
type Sale struct {
	Responsible string    `json:"responsible"`
	Product     string    `json:"product"`
	Amount      float64   `json:"amount"`
	Date        time.Time `json:"date"`
	Unit        string    `json:"unit"`
}

// NetAmount retorna o valor da venda já saneado
func (s Sale) NetAmount() float64 {
	return SanitizeAmount(s.Amount)
}

// ResponsibleName retorna o nome do consultor sem espaços nas bordas
func (s Sale) ResponsibleName() string {
	return strings.TrimSpace(s.Responsible)
}

// ProductLabel retorna o produto sem espaços, ou o marcador de produto vazio
func (s Sale) ProductLabel() string {
	product := strings.TrimSpace(s.Product)
	if product == "" {
		return EmptyProductLabel
	}

	return product
}

// Month retorna o período mensal da venda
func (s Sale) Month() YearMonth {
	return YearMonthOf(s.Date)
}

// SanitizeAmount converte valores inválidos (NaN, infinitos ou negativos) em zero
func SanitizeAmount(amount float64) float64 {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		return 0
	}

	return amount
}

// SumAmounts soma os valores saneados das vendas
func SumAmounts(sales []Sale) float64 {
	var total float64
	for _, sale := range sales {
		total += sale.NetAmount()
	}

	return total
}
