// Package dashboard compõe os indicadores de uma unidade a partir dos cálculos puros
package dashboard

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-performance-api/internal/domain"
	"github.com/vfg2006/sales-performance-api/internal/usecases/breakdown"
	"github.com/vfg2006/sales-performance-api/internal/usecases/compensating"
	"github.com/vfg2006/sales-performance-api/internal/usecases/productivity"
	"github.com/vfg2006/sales-performance-api/internal/usecases/projecting"
	"github.com/vfg2006/sales-performance-api/internal/usecases/ranking"
	"github.com/vfg2006/sales-performance-api/internal/usecases/trending"
	"github.com/vfg2006/sales-performance-api/pkg/log"
	"github.com/vfg2006/sales-performance-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

type DashboardBuilder interface {
	Build(ctx context.Context, input domain.DashboardInput) (*domain.Dashboard, error)
}

type Options struct {
	TopPerformersLimit int
	Cache              *Cache
}

type Service struct {
	clock        Clock
	options      Options
	calculator   compensating.Calculator
	trend        trending.TrendService
	productivity productivity.ProductivityService
	projection   projecting.ProjectionService
	ranking      ranking.RankingService
	breakdown    breakdown.BreakdownService
	generateID   func() (string, error)
}

func NewService(clock Clock, options Options) DashboardBuilder {
	calculator := compensating.NewService()

	return &Service{
		clock:        clock,
		options:      options,
		calculator:   calculator,
		trend:        trending.NewMonthlyTrendService(calculator),
		productivity: productivity.NewDailyProductivityService(),
		projection:   projecting.NewClosingProjectionService(),
		ranking:      ranking.NewTopPerformerRankingService(),
		breakdown:    breakdown.NewProductBreakdownService(),
		generateID:   utils.GenerateID,
	}
}

// Build calcula todos os indicadores do mês da unidade. Entradas idênticas no mesmo dia
// devolvem o mesmo snapshot quando há cache configurado.
func (s *Service) Build(ctx context.Context, input domain.DashboardInput) (*domain.Dashboard, error) {
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"unit":  input.Unit,
		"month": input.Month,
	})

	if input.Unit == "" {
		return nil, NewDashboardError(ErrUnitRequired, "UNIT_REQUIRED", "")
	}

	month, err := domain.ParseYearMonth(string(input.Month))
	if err != nil {
		return nil, NewDashboardErrorWithUnit(ErrInvalidMonth, "INVALID_MONTH", input.Unit, err.Error())
	}

	if err := ctx.Err(); err != nil {
		return nil, NewDashboardErrorWithUnit(ErrBuildCanceled, "BUILD_CANCELED", input.Unit, err.Error())
	}

	now := s.clock.Now()

	key := ""
	if s.options.Cache != nil {
		key, err = Key(input, now)
		if err != nil {
			logger.WithError(err).Warn("Dashboard: entrada não serializável, cache ignorado")
		} else if cached, found := s.options.Cache.Get(key); found {
			logger.Debug("Dashboard: snapshot encontrado no cache")
			return cached, nil
		}
	}

	id, err := s.generateID()
	if err != nil {
		return nil, NewDashboardErrorWithUnit(ErrGenerateID, "GENERATE_ID", input.Unit, errors.Cause(err).Error())
	}

	dashboard := s.compose(input, month, now)
	dashboard.ID = id

	if s.options.Cache != nil && key != "" {
		s.options.Cache.Put(key, dashboard)
	}

	logger.WithFields(log.Fields{
		"dashboard_id": id,
		"sales_total":  dashboard.KPI.SalesTotal,
	}).Info("Dashboard: indicadores calculados")

	return dashboard, nil
}

func (s *Service) compose(input domain.DashboardInput, month domain.YearMonth, now time.Time) *domain.Dashboard {
	cfg := input.Compensation
	book := domain.NewTargetBook(input.Targets)
	roster := domain.NewRoster(input.Targets, month)

	monthSales := utils.Filter(input.Sales, func(sale domain.Sale) bool {
		return month.Contains(sale.Date)
	})

	kpi := unitKPI(monthSales, cfg.UnitTarget)

	consultantProjections := make(map[string]domain.Projection, roster.Len())
	payouts := make([]domain.Payout, 0, roster.Len())
	for _, name := range roster.Names() {
		target, _ := book.Lookup(name, month)
		consultantSales := utils.Filter(monthSales, projecting.ByResponsible(name))

		consultantProjections[name] = s.projection.Project(consultantSales, target, month, now)
		payouts = append(payouts, s.calculator.Statement(name, target, consultantSales, kpi.UnitTargetMet, cfg))
	}

	return &domain.Dashboard{
		Unit:                  input.Unit,
		Month:                 month,
		GeneratedAt:           now,
		KPI:                   kpi,
		Trend:                 s.trend.Aggregate(input.Sales, input.Targets, cfg),
		Productivity:          s.productivity.Build(input.Sales, input.Targets, month),
		Projection:            s.projection.Project(input.Sales, cfg.UnitTarget, month, now),
		ConsultantProjections: consultantProjections,
		TopPerformers:         s.ranking.Rank(input.Sales, input.Targets, month, s.options.TopPerformersLimit),
		Products:              s.breakdown.Breakdown(input.Sales, month),
		Payouts:               payouts,
	}
}

// unitKPI compara o total final do mês com a meta da unidade
func unitKPI(monthSales []domain.Sale, unitTarget float64) domain.UnitKPI {
	total := domain.SumAmounts(monthSales)
	target := domain.SanitizeAmount(unitTarget)

	return domain.UnitKPI{
		SalesTotal:      total,
		UnitTarget:      target,
		PercentOfTarget: utils.Percent(total, target),
		UnitTargetMet:   total >= target,
	}
}
