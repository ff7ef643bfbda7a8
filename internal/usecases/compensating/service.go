// Package compensating calcula comissões e bônus a partir do plano de remuneração da unidade
package compensating

import (
	"math"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-performance-api/internal/domain"
)

var (
	hundred = decimal.NewFromInt(100)

	// Percentuais aplicados quando o valor da venda não cai em nenhuma faixa
	fallbackRateAtTarget    = decimal.RequireFromString("0.015")
	fallbackRateBelowTarget = decimal.RequireFromString("0.012")
)

// Calculator define o cálculo de remuneração variável
type Calculator interface {
	Compute(targetAmount float64, sales []domain.Sale, mode domain.CompensationMode, unitTargetMet bool, cfg domain.CompensationConfig) float64
	Commission(targetAmount float64, sales []domain.Sale, unitTargetMet bool, cfg domain.CompensationConfig) float64
	Bonus(targetAmount float64, sales []domain.Sale, cfg domain.CompensationConfig) float64
	Statement(name string, targetAmount float64, sales []domain.Sale, unitTargetMet bool, cfg domain.CompensationConfig) domain.Payout
}

type Service struct{}

func NewService() Calculator {
	return &Service{}
}

// Compute calcula a comissão ou o bônus conforme o modo. Modos desconhecidos retornam zero.
func (s *Service) Compute(
	targetAmount float64,
	sales []domain.Sale,
	mode domain.CompensationMode,
	unitTargetMet bool,
	cfg domain.CompensationConfig,
) float64 {
	switch mode {
	case domain.CompensationModeCommission:
		return s.Commission(targetAmount, sales, unitTargetMet, cfg)
	case domain.CompensationModeBonus:
		return s.Bonus(targetAmount, sales, cfg)
	default:
		return 0
	}
}

// Commission soma a comissão de cada venda. A faixa que contém o valor da venda define
// o valor absoluto pago; sem faixa, aplica-se 1,5% (meta pessoal batida) ou 1,2%.
func (s *Service) Commission(targetAmount float64, sales []domain.Sale, unitTargetMet bool, cfg domain.CompensationConfig) float64 {
	personalTotal := domain.SumAmounts(sales)
	personalTargetMet := personalTotal >= domain.SanitizeAmount(targetAmount)

	total := decimal.Zero
	for _, sale := range sales {
		total = total.Add(saleCommission(sale.NetAmount(), personalTargetMet, unitTargetMet, cfg))
	}

	return total.InexactFloat64()
}

func saleCommission(amount float64, personalTargetMet, unitTargetMet bool, cfg domain.CompensationConfig) decimal.Decimal {
	tier, found := cfg.FindCommissionTier(amount)
	if found {
		switch {
		case unitTargetMet:
			return toDecimal(domain.SanitizeAmount(tier.UnitMet))
		case personalTargetMet:
			return toDecimal(domain.SanitizeAmount(tier.AtTarget))
		default:
			return toDecimal(domain.SanitizeAmount(tier.BelowTarget))
		}
	}

	rate := fallbackRateBelowTarget
	if personalTargetMet {
		rate = fallbackRateAtTarget
	}

	return toDecimal(amount).Mul(rate)
}

// Bonus soma todos os bônus cujo percentual mínimo foi atingido (os bônus são cumulativos)
func (s *Service) Bonus(targetAmount float64, sales []domain.Sale, cfg domain.CompensationConfig) float64 {
	percent := percentOfTarget(domain.SumAmounts(sales), targetAmount)

	total := decimal.Zero
	for _, tier := range cfg.BonusTiers {
		// +Inf nunca é atingido e NaN não é comparável
		if math.IsNaN(tier.ThresholdPercent) || math.IsInf(tier.ThresholdPercent, 1) {
			continue
		}

		if math.IsInf(tier.ThresholdPercent, -1) || toDecimal(tier.ThresholdPercent).LessThanOrEqual(percent) {
			total = total.Add(toDecimal(domain.SanitizeAmount(tier.BonusAmount)))
		}
	}

	return total.InexactFloat64()
}

// Statement monta o extrato de remuneração de um consultor
func (s *Service) Statement(
	name string,
	targetAmount float64,
	sales []domain.Sale,
	unitTargetMet bool,
	cfg domain.CompensationConfig,
) domain.Payout {
	commission := s.Commission(targetAmount, sales, unitTargetMet, cfg)
	bonus := s.Bonus(targetAmount, sales, cfg)
	salesTotal := domain.SumAmounts(sales)

	return domain.Payout{
		Name:            name,
		SalesTotal:      salesTotal,
		Target:          domain.SanitizeAmount(targetAmount),
		PercentOfTarget: percentOfTarget(salesTotal, targetAmount).InexactFloat64(),
		UnitTargetMet:   unitTargetMet,
		Commission:      commission,
		Bonus:           bonus,
		Total:           toDecimal(commission).Add(toDecimal(bonus)).InexactFloat64(),
	}
}

func percentOfTarget(total, targetAmount float64) decimal.Decimal {
	target := domain.SanitizeAmount(targetAmount)
	if target <= 0 {
		return decimal.Zero
	}

	return toDecimal(total).Div(toDecimal(target)).Mul(hundred)
}

// toDecimal converte valores não finitos em zero, já que decimal.NewFromFloat não os aceita
func toDecimal(value float64) decimal.Decimal {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return decimal.Zero
	}

	return decimal.NewFromFloat(value)
}
