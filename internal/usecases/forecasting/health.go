package forecasting

import (
	"math"
	"time"

	"github.com/salesdeck/pipeline-manager-api/internal/domain"
)

// HealthMetrics resume a saúde geral do pipeline e a confiabilidade histórica
// do forecast, independentes do mês alvo
type HealthMetrics struct {
	WinRate        float64
	HygieneScore   float64
	FreshnessScore float64
	MAPE           float64
	MoMGrowth      float64
}

// HealthCalculator computa as métricas de saúde a partir do conjunto completo
// de negócios e da série de receita histórica
type HealthCalculator struct {
	staleness *StalenessClassifier
}

func NewHealthCalculator(staleness *StalenessClassifier) *HealthCalculator {
	if staleness == nil {
		staleness = NewStalenessClassifier(DefaultStalenessThresholdDays)
	}

	return &HealthCalculator{staleness: staleness}
}

func (c *HealthCalculator) Compute(deals []*domain.Deal, history []*domain.HistoricalRevenue, now time.Time) (*HealthMetrics, error) {
	metrics := &HealthMetrics{}

	var wonCount, lostCount int
	var activeCount, completeCount, freshCount int

	for _, deal := range deals {
		switch deal.Stage {
		case domain.StageWon:
			wonCount++
			continue
		case domain.StageLost:
			lostCount++
			continue
		}

		activeCount++

		if isComplete(deal) {
			completeCount++
		}

		stale, err := c.staleness.IsStale(deal, now)
		if err != nil {
			return nil, err
		}
		if !stale {
			freshCount++
		}
	}

	// Taxa de vitória sobre todos os negócios fechados; sem fechados é zero
	if closed := wonCount + lostCount; closed > 0 {
		metrics.WinRate = float64(wonCount) / float64(closed) * 100
	}

	// Higiene e frescor valem 100 por vacuidade quando não há negócios ativos
	if activeCount > 0 {
		metrics.HygieneScore = float64(completeCount) / float64(activeCount) * 100
		metrics.FreshnessScore = float64(freshCount) / float64(activeCount) * 100
	} else {
		metrics.HygieneScore = 100
		metrics.FreshnessScore = 100
	}

	metrics.MAPE = meanAbsolutePercentageError(history)
	metrics.MoMGrowth = monthOverMonthGrowth(history)

	return metrics, nil
}

// isComplete verifica se um negócio ativo tem todos os campos obrigatórios de
// higiene preenchidos
func isComplete(deal *domain.Deal) bool {
	return deal.Stage != "" &&
		deal.Confidence != "" &&
		deal.NextStep != "" &&
		deal.NextStepDate != "" &&
		deal.Amount > 0 &&
		deal.CloseDate != ""
}

// meanAbsolutePercentageError mede o erro percentual médio entre previsto e
// realizado. Meses com realizado zero tornam o termo indefinido e são
// ignorados na média; sem meses utilizáveis o resultado é zero.
func meanAbsolutePercentageError(history []*domain.HistoricalRevenue) float64 {
	var sum float64
	var count int

	for _, row := range history {
		if row.Actual == 0 {
			continue
		}

		sum += math.Abs((row.Actual-row.Forecasted)/row.Actual) * 100
		count++
	}

	if count == 0 {
		return 0
	}

	return sum / float64(count)
}

// monthOverMonthGrowth compara os dois últimos meses da série em ordem
// cronológica. Série curta demais ou mês anterior zerado resultam em zero.
func monthOverMonthGrowth(history []*domain.HistoricalRevenue) float64 {
	if len(history) < 2 {
		return 0
	}

	prev := history[len(history)-2]
	last := history[len(history)-1]

	if prev.Actual == 0 {
		return 0
	}

	return (last.Actual - prev.Actual) / prev.Actual * 100
}
