package forecasting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/salesdeck/pipeline-manager-api/internal/domain"
)

var (
	testNow   = time.Date(2024, 5, 16, 12, 0, 0, 0, time.UTC)
	testMonth = time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
)

func inTargetMonth(day int) string {
	return time.Date(2024, 5, day, 0, 0, 0, 0, time.UTC).Format(time.RFC3339)
}

// scenarioDeals reproduz o cenário de referência do dashboard: um negócio
// ganho e quatro abertos no mês alvo, um por combinação relevante de estágio
func scenarioDeals() []*domain.Deal {
	return []*domain.Deal{
		{ID: "D1", Stage: domain.StageWon, Amount: 50000, CloseDate: inTargetMonth(10)},
		{ID: "D2", Stage: domain.StageCommitted, Confidence: domain.ConfidenceHigh, Amount: 100000, CloseDate: inTargetMonth(20)},
		{ID: "D3", Stage: domain.StageCommitted, Confidence: domain.ConfidenceMedium, Amount: 40000, CloseDate: inTargetMonth(22)},
		{ID: "D4", Stage: domain.StageUncommitted, Confidence: domain.ConfidenceLow, Amount: 30000, CloseDate: inTargetMonth(25)},
		{ID: "D5", Stage: domain.StageLead, Amount: 20000, CloseDate: inTargetMonth(28)},
	}
}

func TestStageDirectStrategy_ReferenceScenario(t *testing.T) {
	strategy := NewStageDirectStrategy()

	result, err := strategy.Forecast(scenarioDeals(), testMonth, testNow)
	assert.NoError(t, err)

	assert.Equal(t, 50000.0, result.ClosedWon)
	assert.Equal(t, 190000.0, result.CommittedValue) // (100000+40000) + 50000 realizados
	assert.Equal(t, 30000.0, result.UncommittedValue)
	assert.Equal(t, 20000.0, result.LeadsValue)
	assert.Equal(t, 150000.0, result.Conservative) // 50000 realizados + 100000 HIGH
	assert.Equal(t, 190000.0, result.Base)         // 140000 comprometidos + 50000 realizados
	assert.Equal(t, 220000.0, result.Optimistic)   // base + 30000 uncommitted
	assert.Equal(t, 240000.0, result.PipelineValue) // 190000 abertos + 50000 realizados
}

func TestStageDirectStrategy_Partitioning(t *testing.T) {
	strategy := NewStageDirectStrategy()

	tests := []struct {
		name     string
		deal     *domain.Deal
		expected ForecastResult
	}{
		{
			name: "Negócio perdido não entra em nenhum bucket",
			deal: &domain.Deal{ID: "D1", Stage: domain.StageLost, Amount: 80000, CloseDate: inTargetMonth(10)},
		},
		{
			name: "Negócio de outro mês é ignorado",
			deal: &domain.Deal{ID: "D1", Stage: domain.StageCommitted, Confidence: domain.ConfidenceHigh, Amount: 80000, CloseDate: "2024-06-10"},
		},
		{
			name: "Negócio sem data de fechamento é ignorado",
			deal: &domain.Deal{ID: "D1", Stage: domain.StageCommitted, Amount: 80000},
		},
		{
			name: "Negócio ganho de outro mês não conta como realizado",
			deal: &domain.Deal{ID: "D1", Stage: domain.StageWon, Amount: 80000, CloseDate: "2024-04-10"},
		},
		{
			name: "COMMITTED com confiança média fica fora do conservador",
			deal: &domain.Deal{ID: "D1", Stage: domain.StageCommitted, Confidence: domain.ConfidenceMedium, Amount: 80000, CloseDate: inTargetMonth(10)},
			expected: ForecastResult{
				Base:           80000,
				Optimistic:     80000,
				CommittedValue: 80000,
				PipelineValue:  80000,
			},
		},
		{
			name: "LEAD entra só no valor de pipeline",
			deal: &domain.Deal{ID: "D1", Stage: domain.StageLead, Amount: 80000, CloseDate: inTargetMonth(10)},
			expected: ForecastResult{
				LeadsValue:    80000,
				PipelineValue: 80000,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := strategy.Forecast([]*domain.Deal{tt.deal}, testMonth, testNow)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, *result)
		})
	}
}

func TestStageDirectStrategy_MalformedCloseDate(t *testing.T) {
	strategy := NewStageDirectStrategy()

	deals := []*domain.Deal{
		{ID: "D1", Stage: domain.StageCommitted, Amount: 80000, CloseDate: "10/05/2024"},
	}

	result, err := strategy.Forecast(deals, testMonth, testNow)
	assert.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "close_date malformada")
}

func TestStageDirectStrategy_ScenarioOrdering(t *testing.T) {
	strategy := NewStageDirectStrategy()

	// Conservador ⊆ base e otimista ⊇ base devem valer para qualquer conjunto
	result, err := strategy.Forecast(scenarioDeals(), testMonth, testNow)
	assert.NoError(t, err)
	assert.LessOrEqual(t, result.Conservative, result.Base)
	assert.GreaterOrEqual(t, result.Optimistic, result.Base)
}

func TestStageDirectStrategy_DoesNotMutateInputs(t *testing.T) {
	strategy := NewStageDirectStrategy()

	deals := scenarioDeals()
	original := make([]domain.Deal, len(deals))
	for i, deal := range deals {
		original[i] = *deal
	}

	_, err := strategy.Forecast(deals, testMonth, testNow)
	assert.NoError(t, err)

	for i, deal := range deals {
		assert.Equal(t, original[i], *deal)
	}
}

func TestStageDirectStrategy_Idempotent(t *testing.T) {
	strategy := NewStageDirectStrategy()

	first, err := strategy.Forecast(scenarioDeals(), testMonth, testNow)
	assert.NoError(t, err)

	second, err := strategy.Forecast(scenarioDeals(), testMonth, testNow)
	assert.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestStageDirectStrategy_EmptyPipeline(t *testing.T) {
	strategy := NewStageDirectStrategy()

	result, err := strategy.Forecast(nil, testMonth, testNow)
	assert.NoError(t, err)
	assert.Equal(t, ForecastResult{}, *result)
}
