package domain

import "time"

// MonthlyTrendPoint é o acumulado de vendas e comissões de um mês
type MonthlyTrendPoint struct {
	Month           YearMonth `json:"month"`
	SalesTotal      float64   `json:"salesTotal"`
	CommissionTotal float64   `json:"commissionTotal"`
}

// ProductivityMatrix é a produção diária de cada consultor oficial no mês
type ProductivityMatrix struct {
	Month       YearMonth            `json:"month"`
	Days        []int                `json:"days"`
	Consultants []string             `json:"consultants"`
	Series      map[string][]float64 `json:"series"`
}

// Projection é a projeção de fechamento do mês pela média por dia útil
type Projection struct {
	SoldToDate            float64 `json:"soldToDate"`
	AvgDaily              float64 `json:"avgDaily"`
	ProjectedTotal        float64 `json:"projectedTotal"`
	PctOfMeta             float64 `json:"pctOfMeta"`
	PassedBusinessDays    int     `json:"passedBusinessDays"`
	RemainingBusinessDays int     `json:"remainingBusinessDays"`
}

// TopPerformer é uma posição do ranking de consultores
type TopPerformer struct {
	Name  string  `json:"name"`
	Total float64 `json:"total"`
}

// ProductBreakdown é o faturamento de um produto no mês
type ProductBreakdown struct {
	Product string  `json:"product"`
	Total   float64 `json:"total"`
}

// UnitKPI é o indicador consolidado da unidade no mês
type UnitKPI struct {
	SalesTotal      float64 `json:"salesTotal"`
	UnitTarget      float64 `json:"unitTarget"`
	PercentOfTarget float64 `json:"percentOfTarget"`
	UnitTargetMet   bool    `json:"unitTargetMet"`
}

// DashboardInput reúne os dados de uma unidade fornecidos pelo armazenamento externo
type DashboardInput struct {
	Unit         string             `json:"unit"`
	Month        YearMonth          `json:"month"`
	Sales        []Sale             `json:"sales"`
	Targets      []Target           `json:"targets"`
	Compensation CompensationConfig `json:"compensation"`
}

// Dashboard é o conjunto de indicadores calculados para uma unidade
type Dashboard struct {
	ID                    string                `json:"id"`
	Unit                  string                `json:"unit"`
	Month                 YearMonth             `json:"month"`
	GeneratedAt           time.Time             `json:"generatedAt"`
	KPI                   UnitKPI               `json:"kpi"`
	Trend                 []MonthlyTrendPoint   `json:"trend"`
	Productivity          ProductivityMatrix    `json:"productivity"`
	Projection            Projection            `json:"projection"`
	ConsultantProjections map[string]Projection `json:"consultantProjections"`
	TopPerformers         []TopPerformer        `json:"topPerformers"`
	Products              []ProductBreakdown    `json:"products"`
	Payouts               []Payout              `json:"payouts"`
}
