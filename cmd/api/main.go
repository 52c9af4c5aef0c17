package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/salesdeck/pipeline-manager-api/infrastructure/repository"
	"github.com/salesdeck/pipeline-manager-api/infrastructure/seed"
	"github.com/salesdeck/pipeline-manager-api/internal/api"
	"github.com/salesdeck/pipeline-manager-api/internal/config"
	"github.com/salesdeck/pipeline-manager-api/internal/scheduler"
	"github.com/salesdeck/pipeline-manager-api/internal/usecases/forecasting"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	accountRepo := repository.NewAccountRepository()
	dealRepo := repository.NewDealRepository()
	revenueRepo := repository.NewRevenueRepository()

	// Carrega o seed, se configurado
	if err := seed.Load(cfg.Seed.Path, accountRepo, dealRepo, revenueRepo); err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar o arquivo de seed")
	}

	forecastService := forecasting.NewService(dealRepo, revenueRepo, cfg)

	// Inicializa o agendador de snapshots do dashboard
	snapshotService := scheduler.NewDashboardSnapshotService(forecastService, cfg)

	if err := snapshotService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de snapshots do dashboard")
	} else {
		logrus.Info("Agendador de snapshots do dashboard iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		forecastService,
		dealRepo,
		accountRepo,
		revenueRepo,
		snapshotService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
