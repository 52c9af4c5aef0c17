// Package scheduler contém o serviço de agendamento do snapshot do dashboard
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/salesdeck/pipeline-manager-api/internal/config"
	"github.com/salesdeck/pipeline-manager-api/internal/domain"
	"github.com/salesdeck/pipeline-manager-api/internal/usecases/forecasting"
	"github.com/salesdeck/pipeline-manager-api/pkg/utils"
)

// DashboardSnapshotConfig representa a configuração do agendador de snapshots
type DashboardSnapshotConfig struct {
	CronSchedule string
	Enabled      bool
}

// DashboardSnapshotStatus é o estado do agendador exposto pela API
type DashboardSnapshotStatus struct {
	Enabled         bool      `json:"enabled"`
	CronSchedule    string    `json:"cron_schedule"`
	Running         bool      `json:"running"`
	HasSnapshot     bool      `json:"has_snapshot"`
	LastStartedAt   time.Time `json:"last_started_at"`
	LastCompletedAt time.Time `json:"last_completed_at"`
}

// DashboardSnapshotService recomputa periodicamente as métricas do dashboard
// do mês corrente e guarda o último snapshot gerado
type DashboardSnapshotService struct {
	scheduler *gocron.Scheduler
	config    DashboardSnapshotConfig
	service   forecasting.Forecaster

	mu              sync.Mutex
	running         bool
	snapshot        *domain.DashboardSnapshot
	lastStartedAt   time.Time
	lastCompletedAt time.Time

	clock func() time.Time
}

func NewDashboardSnapshotService(service forecasting.Forecaster, appConfig *config.Config) *DashboardSnapshotService {
	snapshotConfig := DashboardSnapshotConfig{
		CronSchedule: appConfig.DashboardSnapshotSync.CronSchedule,
		Enabled:      appConfig.DashboardSnapshotSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": snapshotConfig.CronSchedule,
		"enabled":       snapshotConfig.Enabled,
	}).Info("Configuração do agendador de snapshots do dashboard carregada")

	return &DashboardSnapshotService{
		scheduler: scheduler,
		config:    snapshotConfig,
		service:   service,
		clock:     time.Now,
	}
}

// WithClock troca a fonte de "agora", para testes com tempo injetado
func (s *DashboardSnapshotService) WithClock(clock func() time.Time) *DashboardSnapshotService {
	s.clock = clock
	return s
}

func (s *DashboardSnapshotService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de snapshot do dashboard desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de snapshot do dashboard")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.Refresh(); err != nil {
			logrus.WithError(err).Error("Erro na atualização do snapshot do dashboard")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar snapshot do dashboard: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de snapshot do dashboard")
		s.scheduler.Stop()
	}()

	return nil
}

// Refresh recomputa as métricas do mês corrente com a estratégia configurada
// e substitui o snapshot cacheado
func (s *DashboardSnapshotService) Refresh() error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		logrus.Warn("Atualização de snapshot do dashboard já está em execução")
		return nil
	}
	s.running = true
	s.lastStartedAt = s.clock()
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.running = false
		s.lastCompletedAt = s.clock()
		s.mu.Unlock()
	}()

	now := s.clock()
	targetMonth := utils.MonthStart(now)
	strategy := s.service.DefaultStrategy()

	logrus.WithFields(logrus.Fields{
		"month":    targetMonth.Format("2006-01"),
		"strategy": strategy,
	}).Info("Recomputando snapshot do dashboard")

	metrics, err := s.service.DashboardMetrics(targetMonth, strategy)
	if err != nil {
		return err
	}

	snapshot := &domain.DashboardSnapshot{
		Month:       targetMonth.Format("2006-01"),
		Strategy:    strategy,
		Metrics:     metrics,
		GeneratedAt: now,
	}

	s.mu.Lock()
	s.snapshot = snapshot
	s.mu.Unlock()

	logrus.Debug("Snapshot do dashboard atualizado: ", utils.PrettyJson(snapshot))

	return nil
}

// LastSnapshot retorna o último snapshot gerado, ou nil se nenhum existe
func (s *DashboardSnapshotService) LastSnapshot() *domain.DashboardSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshot
}

// Status retorna o estado atual do agendador
func (s *DashboardSnapshotService) Status() DashboardSnapshotStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	return DashboardSnapshotStatus{
		Enabled:         s.config.Enabled,
		CronSchedule:    s.config.CronSchedule,
		Running:         s.running,
		HasSnapshot:     s.snapshot != nil,
		LastStartedAt:   s.lastStartedAt,
		LastCompletedAt: s.lastCompletedAt,
	}
}
