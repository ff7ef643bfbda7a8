package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/vfg2006/sales-performance-api/internal/domain"
)

type Config struct {
	App              App              `mapstructure:",squash"`
	Analytics        Analytics        `mapstructure:",squash"`
	Source           Source           `mapstructure:",squash"`
	DashboardRefresh DashboardRefresh `mapstructure:",squash"`
	Compensation     Compensation     `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Timezone string `mapstructure:"app_timezone"`
}

type Analytics struct {
	TopPerformersLimit int    `mapstructure:"top_performers_limit"`
	CacheSize          int    `mapstructure:"dashboard_cache_size"`
	Month              string `mapstructure:"dashboard_month"`
}

type Source struct {
	Path string `mapstructure:"source_path"`
}

type DashboardRefresh struct {
	CronSchedule      string `mapstructure:"dashboard_refresh_cron"`
	MaxConcurrentJobs int    `mapstructure:"dashboard_refresh_max_concurrent_jobs"`
	Enabled           bool   `mapstructure:"dashboard_refresh_enabled"`
}

type Compensation struct {
	PlanFile string                    `mapstructure:"compensation_plan_file"`
	Plan     domain.CompensationConfig `mapstructure:"-"`
}

func SetDefaults() {
	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("APP_TIMEZONE", "America/Sao_Paulo")

	viper.SetDefault("TOP_PERFORMERS_LIMIT", 5)
	viper.SetDefault("DASHBOARD_CACHE_SIZE", 64)
	viper.SetDefault("DASHBOARD_MONTH", "") // Vazio: mês de ontem

	viper.SetDefault("SOURCE_PATH", "data/snapshot.json")

	viper.SetDefault("DASHBOARD_REFRESH_CRON", "0 6 * * *")      // Todos os dias às 6h da manhã
	viper.SetDefault("DASHBOARD_REFRESH_MAX_CONCURRENT_JOBS", 3) // 3 unidades em paralelo
	viper.SetDefault("DASHBOARD_REFRESH_ENABLED", false)         // Execução única por padrão

	viper.SetDefault("COMPENSATION_PLAN_FILE", "")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar configuração")
	}

	if config.Analytics.Month != "" {
		if _, err := domain.ParseYearMonth(config.Analytics.Month); err != nil {
			return nil, errors.Wrap(err, "DASHBOARD_MONTH inválido")
		}
	}

	if config.Compensation.PlanFile != "" {
		plan, err := LoadCompensationPlan(config.Compensation.PlanFile)
		if err != nil {
			return nil, err
		}
		config.Compensation.Plan = plan
	}

	return config, nil
}

// Location retorna o fuso configurado, ou time.Local quando inválido
func (c *Config) Location() *time.Location {
	if c.App.Timezone == "" {
		return time.Local
	}

	location, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		logrus.WithError(err).Warnf("Fuso horário inválido: %s, usando o local", c.App.Timezone)
		return time.Local
	}

	return location
}

// LoadCompensationPlan lê o plano padrão de remuneração de um arquivo YAML ou JSON.
// As unidades que não trazem plano próprio no snapshot usam este.
func LoadCompensationPlan(path string) (domain.CompensationConfig, error) {
	plan := domain.CompensationConfig{}

	reader := viper.New()
	reader.SetConfigFile(path)

	if err := reader.ReadInConfig(); err != nil {
		return plan, errors.Wrapf(err, "erro ao ler plano de remuneração %s", path)
	}

	if err := reader.Unmarshal(&plan); err != nil {
		return plan, errors.Wrapf(err, "erro ao decodificar plano de remuneração %s", path)
	}

	logrus.WithFields(logrus.Fields{
		"plan_file":        path,
		"commission_tiers": len(plan.CommissionTiers),
		"bonus_tiers":      len(plan.BonusTiers),
		"unit_target":      plan.UnitTarget,
	}).Info("Plano de remuneração carregado")

	return plan, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
