package forecasting

import (
	"time"

	"github.com/pkg/errors"
	"github.com/salesdeck/pipeline-manager-api/infrastructure/repository"
	"github.com/salesdeck/pipeline-manager-api/internal/config"
	"github.com/salesdeck/pipeline-manager-api/internal/domain"
	"github.com/salesdeck/pipeline-manager-api/pkg/log"
)

// Service monta as métricas do dashboard: roda a estratégia de forecast e o
// cálculo de saúde sobre o mesmo snapshot do store e funde os resultados em um
// único registro, sem rederivar nenhum valor
type Service struct {
	dealRepo        repository.DealRepository
	revenueRepo     repository.RevenueRepository
	strategies      map[string]Strategy
	defaultStrategy string
	staleness       *StalenessClassifier
	risk            *ConcentrationDetector
	health          *HealthCalculator
	clock           func() time.Time
}

func NewService(
	dealRepo repository.DealRepository,
	revenueRepo repository.RevenueRepository,
	cfg *config.Config,
) *Service {
	staleness := NewStalenessClassifier(cfg.Forecast.StalenessThresholdDays)

	strategies := map[string]Strategy{
		StrategyStageDirect:   NewStageDirectStrategy(),
		StrategyActivityGated: NewActivityGatedStrategy(staleness),
	}

	defaultStrategy := cfg.Forecast.Strategy
	if _, ok := strategies[defaultStrategy]; !ok {
		log.L.Warnf("Estratégia de forecast desconhecida na configuração: %q, usando %q", defaultStrategy, StrategyStageDirect)
		defaultStrategy = StrategyStageDirect
	}

	return &Service{
		dealRepo:        dealRepo,
		revenueRepo:     revenueRepo,
		strategies:      strategies,
		defaultStrategy: defaultStrategy,
		staleness:       staleness,
		risk:            NewConcentrationDetector(cfg.Forecast.ConcentrationRatio),
		health:          NewHealthCalculator(staleness),
		clock:           time.Now,
	}
}

// WithClock troca a fonte de "agora", para testes com tempo injetado
func (s *Service) WithClock(clock func() time.Time) *Service {
	s.clock = clock
	return s
}

func (s *Service) DefaultStrategy() string {
	return s.defaultStrategy
}

func (s *Service) DashboardMetrics(targetMonth time.Time, strategyName string) (*domain.DashboardMetrics, error) {
	if strategyName == "" {
		strategyName = s.defaultStrategy
	}

	strategy, ok := s.strategies[strategyName]
	if !ok {
		return nil, errors.Errorf("estratégia de forecast desconhecida: %s", strategyName)
	}

	deals, err := s.dealRepo.List()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar negócios do store")
	}

	history, err := s.revenueRepo.List()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar histórico de receita do store")
	}

	now := s.clock()

	forecast, err := strategy.Forecast(deals, targetMonth, now)
	if err != nil {
		return nil, err
	}

	health, err := s.health.Compute(deals, history, now)
	if err != nil {
		return nil, err
	}

	// Risco de concentração e contagem de negócios parados são avaliados
	// sobre o pipeline aberto inteiro, não só sobre o mês alvo
	openDeals := make([]*domain.Deal, 0, len(deals))
	var openTotal float64
	var staleCount int

	for _, deal := range deals {
		if !deal.IsOpen() {
			continue
		}

		openDeals = append(openDeals, deal)
		openTotal += deal.Amount

		stale, err := s.staleness.IsStale(deal, now)
		if err != nil {
			return nil, err
		}
		if stale {
			staleCount++
		}
	}

	return &domain.DashboardMetrics{
		Conservative:     forecast.Conservative,
		Base:             forecast.Base,
		Optimistic:       forecast.Optimistic,
		PipelineValue:    forecast.PipelineValue,
		CommittedValue:   forecast.CommittedValue,
		UncommittedValue: forecast.UncommittedValue,
		LeadsValue:       forecast.LeadsValue,
		ClosedWon:        forecast.ClosedWon,

		MAPE:           health.MAPE,
		HygieneScore:   health.HygieneScore,
		FreshnessScore: health.FreshnessScore,
		WinRate:        health.WinRate,
		MoMGrowth:      health.MoMGrowth,

		ConcentrationRisk: s.risk.HasConcentrationRisk(openDeals, openTotal),
		StaleDeals:        staleCount,
	}, nil
}

// StaleDeals lista os negócios ativos sem atividade recente
func (s *Service) StaleDeals() ([]*domain.Deal, error) {
	deals, err := s.dealRepo.List()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar negócios do store")
	}

	now := s.clock()

	staleDeals := make([]*domain.Deal, 0)
	for _, deal := range deals {
		if !deal.IsOpen() {
			continue
		}

		stale, err := s.staleness.IsStale(deal, now)
		if err != nil {
			return nil, err
		}
		if stale {
			staleDeals = append(staleDeals, deal)
		}
	}

	return staleDeals, nil
}
