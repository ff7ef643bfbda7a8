// Package scheduler contém os serviços de agendamento para atualização dos indicadores
package scheduler

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-performance-api/infrastructure/source"
	"github.com/vfg2006/sales-performance-api/internal/config"
	"github.com/vfg2006/sales-performance-api/internal/domain"
	"github.com/vfg2006/sales-performance-api/internal/usecases/dashboard"
	"github.com/vfg2006/sales-performance-api/pkg/log"
)

// DashboardRefreshConfig representa a configuração do agendador de indicadores
type DashboardRefreshConfig struct {
	CronSchedule      string
	MaxConcurrentJobs int
	SyncEnabled       bool
	Month             domain.YearMonth
}

// DashboardRefreshService recalcula periodicamente os indicadores de todas as unidades
type DashboardRefreshService struct {
	scheduler           *gocron.Scheduler
	config              DashboardRefreshConfig
	source              source.InputSource
	builder             dashboard.DashboardBuilder
	clock               dashboard.Clock
	cache               *dashboard.Cache
	defaultPlan         domain.CompensationConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	dashboards          map[string]*domain.Dashboard
}

func NewDashboardRefreshService(
	inputSource source.InputSource,
	builder dashboard.DashboardBuilder,
	clock dashboard.Clock,
	appConfig *config.Config,
) *DashboardRefreshService {
	refreshConfig := DashboardRefreshConfig{
		CronSchedule:      appConfig.DashboardRefresh.CronSchedule,
		MaxConcurrentJobs: appConfig.DashboardRefresh.MaxConcurrentJobs,
		SyncEnabled:       appConfig.DashboardRefresh.Enabled,
		Month:             domain.YearMonth(appConfig.Analytics.Month),
	}

	if refreshConfig.MaxConcurrentJobs <= 0 {
		refreshConfig.MaxConcurrentJobs = 1
	}

	scheduler := gocron.NewScheduler(appConfig.Location())

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       refreshConfig.CronSchedule,
		"max_concurrent_jobs": refreshConfig.MaxConcurrentJobs,
		"sync_enabled":        refreshConfig.SyncEnabled,
	}).Info("Configuração do agendador de indicadores carregada")

	return &DashboardRefreshService{
		scheduler:   scheduler,
		config:      refreshConfig,
		source:      inputSource,
		builder:     builder,
		clock:       clock,
		defaultPlan: appConfig.Compensation.Plan,
		dashboards:  make(map[string]*domain.Dashboard),
	}
}

// WithCache associa o cache do builder, descartado a cada recarga do snapshot
func (s *DashboardRefreshService) WithCache(cache *dashboard.Cache) *DashboardRefreshService {
	s.cache = cache
	return s
}

// Start inicia o agendador
func (s *DashboardRefreshService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Atualização agendada de indicadores desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de atualização de indicadores")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.RefreshDashboards(ctx); err != nil {
			logrus.WithError(err).Error("Erro na atualização de indicadores")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização de indicadores: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de atualização de indicadores")
		s.scheduler.Stop()
	}()

	return nil
}

// RefreshDashboards carrega o snapshot e recalcula os indicadores de cada unidade.
// Execuções sobrepostas são ignoradas e retornam nil.
func (s *DashboardRefreshService) RefreshDashboards(ctx context.Context) ([]*domain.Dashboard, error) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Atualização de indicadores já está em execução")
		return nil, nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando atualização de indicadores das unidades")

	inputs, err := s.source.Load(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao carregar snapshot das unidades")
		return nil, err
	}

	if s.cache != nil {
		s.cache.Purge()
	}

	if len(inputs) == 0 {
		logrus.Info("Nenhuma unidade encontrada no snapshot")
		return []*domain.Dashboard{}, nil
	}

	month := s.referenceMonth()
	for i := range inputs {
		if inputs[i].Month == "" {
			inputs[i].Month = month
		}
		if isEmptyPlan(inputs[i].Compensation) {
			inputs[i].Compensation = s.defaultPlan
		}
	}

	dashboards := s.processUnits(ctx, inputs)

	s.syncMutex.Lock()
	for _, built := range dashboards {
		s.dashboards[built.Unit] = built
	}
	s.syncMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"units":      len(inputs),
		"dashboards": len(dashboards),
	}).Info("Atualização de indicadores concluída")

	return dashboards, nil
}

// processUnits monta os dashboards em paralelo, limitado por MaxConcurrentJobs
func (s *DashboardRefreshService) processUnits(ctx context.Context, inputs []domain.DashboardInput) []*domain.Dashboard {
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	results := make(chan *domain.Dashboard, len(inputs))
	var wg sync.WaitGroup

	for _, input := range inputs {
		wg.Add(1)
		semaphore <- struct{}{} // Adquirir semáforo

		go func(input domain.DashboardInput) {
			defer func() {
				<-semaphore // Liberar semáforo
				wg.Done()
			}()

			unitCtx, _ := log.WithCorrelationID(ctx)
			logger := log.ForContext(unitCtx).WithField("unit", input.Unit)

			built, err := s.builder.Build(unitCtx, input)
			if err != nil {
				logger.WithError(err).Error("Erro ao montar indicadores da unidade")
				return
			}

			logger.Debug("Indicadores da unidade atualizados")
			results <- built
		}(input)
	}

	wg.Wait()
	close(results)

	dashboards := make([]*domain.Dashboard, 0, len(inputs))
	for built := range results {
		dashboards = append(dashboards, built)
	}

	sort.Slice(dashboards, func(i, j int) bool {
		return dashboards[i].Unit < dashboards[j].Unit
	})

	return dashboards
}

// referenceMonth usa o mês configurado ou o mês de ontem, como nas rotinas diárias
func (s *DashboardRefreshService) referenceMonth() domain.YearMonth {
	if s.config.Month != "" {
		return s.config.Month
	}

	return domain.YearMonthOf(s.clock.Now().AddDate(0, 0, -1))
}

// Dashboard retorna o último snapshot calculado da unidade
func (s *DashboardRefreshService) Dashboard(unit string) (*domain.Dashboard, bool) {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	built, exists := s.dashboards[unit]
	return built, exists
}

// TriggerManualSync inicia manualmente uma atualização de indicadores
func (s *DashboardRefreshService) TriggerManualSync(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Atualização de indicadores já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando atualização manual de indicadores")
	go func() {
		if _, err := s.RefreshDashboards(ctx); err != nil {
			logrus.WithError(err).Error("Erro na atualização manual de indicadores")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *DashboardRefreshService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"units":                  len(s.dashboards),
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}

func isEmptyPlan(plan domain.CompensationConfig) bool {
	return len(plan.CommissionTiers) == 0 && len(plan.BonusTiers) == 0 && plan.UnitTarget == 0
}
