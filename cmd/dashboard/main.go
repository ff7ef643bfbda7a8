package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-performance-api/infrastructure/source"
	"github.com/vfg2006/sales-performance-api/internal/config"
	"github.com/vfg2006/sales-performance-api/internal/scheduler"
	"github.com/vfg2006/sales-performance-api/internal/usecases/dashboard"
	"github.com/vfg2006/sales-performance-api/pkg/log"
	"github.com/vfg2006/sales-performance-api/pkg/utils"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel := log.Configure(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	clock := dashboard.NewSystemClock(cfg.Location())

	cache := dashboard.NewCache(cfg.Analytics.CacheSize)

	builder := dashboard.NewService(clock, dashboard.Options{
		TopPerformersLimit: cfg.Analytics.TopPerformersLimit,
		Cache:              cache,
	})

	refreshService := scheduler.NewDashboardRefreshService(
		source.NewFileSource(cfg.Source.Path),
		builder,
		clock,
		cfg,
	).WithCache(cache)

	// Primeira carga sempre executada na inicialização
	dashboards, err := refreshService.RefreshDashboards(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao calcular indicadores iniciais")
	}

	output, err := utils.PrettyJson(dashboards)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao serializar indicadores")
	}
	fmt.Println(output)

	if !cfg.DashboardRefresh.Enabled {
		return
	}

	if err := refreshService.Start(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao iniciar o agendador de atualização de indicadores")
	}
	logrus.Info("Agendador de atualização de indicadores iniciado com sucesso")

	<-ctx.Done()

	logrus.WithField("status", refreshService.GetStatus()).Info("Encerrando atualização de indicadores")
}
