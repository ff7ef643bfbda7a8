package domain

// CompensationMode define o tipo de cálculo de remuneração variável
type CompensationMode string

const (
	CompensationModeCommission CompensationMode = "commission"
	CompensationModeBonus      CompensationMode = "bonus"
)

// CommissionTier é uma faixa de comissão por valor de venda.
// Os valores BelowTarget, AtTarget e UnitMet são comissões absolutas por venda.
type CommissionTier struct {
	Min         float64 `json:"min" mapstructure:"min"`
	Max         float64 `json:"max" mapstructure:"max"`
	BelowTarget float64 `json:"belowTarget" mapstructure:"below_target"`
	AtTarget    float64 `json:"atTarget" mapstructure:"at_target"`
	UnitMet     float64 `json:"unitMet" mapstructure:"unit_met"`
}

// Contains indica se o valor está dentro da faixa (limites inclusivos)
func (t CommissionTier) Contains(amount float64) bool {
	return amount >= t.Min && amount <= t.Max
}

// BonusTier é um bônus liberado ao atingir um percentual da meta
type BonusTier struct {
	ThresholdPercent float64 `json:"thresholdPercent" mapstructure:"threshold_percent"`
	BonusAmount      float64 `json:"bonusAmount" mapstructure:"bonus_amount"`
}

// CompensationConfig é o plano de remuneração de uma unidade
type CompensationConfig struct {
	CommissionTiers []CommissionTier `json:"commissionTiers" mapstructure:"commission_tiers"`
	BonusTiers      []BonusTier      `json:"bonusTiers" mapstructure:"bonus_tiers"`
	UnitTarget      float64          `json:"unitTarget" mapstructure:"unit_target"`
}

// FindCommissionTier retorna a primeira faixa que contém o valor
func (c CompensationConfig) FindCommissionTier(amount float64) (CommissionTier, bool) {
	for _, tier := range c.CommissionTiers {
		if tier.Contains(amount) {
			return tier, true
		}
	}

	return CommissionTier{}, false
}

// Payout é o extrato de remuneração variável de um consultor no mês
type Payout struct {
	Name            string  `json:"name"`
	SalesTotal      float64 `json:"salesTotal"`
	Target          float64 `json:"target"`
	PercentOfTarget float64 `json:"percentOfTarget"`
	UnitTargetMet   bool    `json:"unitTargetMet"`
	Commission      float64 `json:"commission"`
	Bonus           float64 `json:"bonus"`
	Total           float64 `json:"total"`
}
