package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App                   App                   `mapstructure:",squash"`
	Server                Server                `mapstructure:",squash"`
	Forecast              Forecast              `mapstructure:",squash"`
	DashboardSnapshotSync DashboardSnapshotSync `mapstructure:",squash"`
	Seed                  Seed                  `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Forecast struct {
	Strategy               string  `mapstructure:"forecast_strategy"`
	StalenessThresholdDays int     `mapstructure:"forecast_staleness_threshold_days"`
	ConcentrationRatio     float64 `mapstructure:"forecast_concentration_ratio"`
}

type DashboardSnapshotSync struct {
	CronSchedule string `mapstructure:"dashboard_snapshot_sync_cron"`
	Enabled      bool   `mapstructure:"dashboard_snapshot_sync_enabled"`
}

type Seed struct {
	Path string `mapstructure:"seed_path"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("LOG_LEVEL", "debug")

	// Defaults do motor de forecast
	viper.SetDefault("FORECAST_STRATEGY", "stage-direct")
	viper.SetDefault("FORECAST_STALENESS_THRESHOLD_DAYS", 7) // Dias completos sem atividade
	viper.SetDefault("FORECAST_CONCENTRATION_RATIO", 0.30)   // Top-2 negócios sobre o total

	// Defaults do snapshot do dashboard
	viper.SetDefault("DASHBOARD_SNAPSHOT_SYNC_CRON", "0 * * * *") // A cada hora cheia
	viper.SetDefault("DASHBOARD_SNAPSHOT_SYNC_ENABLED", false)

	viper.SetDefault("SEED_PATH", "")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Permite que o Viper leia variáveis de ambiente

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
		return nil, err
	}

	return config, nil
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
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
