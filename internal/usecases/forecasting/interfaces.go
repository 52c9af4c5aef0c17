package forecasting

import (
	"time"

	"github.com/salesdeck/pipeline-manager-api/internal/domain"
)

// ForecastResult agrega os cenários de receita e a composição do pipeline de
// um mês alvo, conforme produzidos por uma estratégia de forecast
type ForecastResult struct {
	Conservative     float64
	Base             float64
	Optimistic       float64
	PipelineValue    float64
	CommittedValue   float64
	UncommittedValue float64
	LeadsValue       float64
	ClosedWon        float64
}

// Strategy define uma regra de forecast. As duas implementações existentes
// compartilham o particionamento por mês e divergem apenas em como os cenários
// conservador e otimista são compostos.
type Strategy interface {
	Name() string
	Forecast(deals []*domain.Deal, targetMonth, now time.Time) (*ForecastResult, error)
}

// Forecaster é a interface do serviço de dashboard consumida pela camada HTTP
// e pelo agendador de snapshots
type Forecaster interface {
	// DashboardMetrics computa as métricas completas do dashboard para o mês
	// alvo. strategyName vazio usa a estratégia configurada.
	DashboardMetrics(targetMonth time.Time, strategyName string) (*domain.DashboardMetrics, error)

	// StaleDeals lista os negócios ativos sem atividade recente
	StaleDeals() ([]*domain.Deal, error)

	// DefaultStrategy retorna o nome da estratégia configurada
	DefaultStrategy() string
}
