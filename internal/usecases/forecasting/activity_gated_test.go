package forecasting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/salesdeck/pipeline-manager-api/internal/domain"
)

func TestActivityGatedStrategy_ConservativeRequiresFreshness(t *testing.T) {
	strategy := NewActivityGatedStrategy(NewStalenessClassifier(7))

	recent := testNow.AddDate(0, 0, -2).Format(time.RFC3339)
	old := testNow.AddDate(0, 0, -20).Format(time.RFC3339)

	deals := []*domain.Deal{
		// Confiança baixa mas com atividade recente: entra no conservador
		{ID: "D1", Stage: domain.StageCommitted, Confidence: domain.ConfidenceLow, Amount: 60000, CloseDate: inTargetMonth(10), LastActivityDate: recent},
		// Confiança alta mas parado: fica fora do conservador
		{ID: "D2", Stage: domain.StageCommitted, Confidence: domain.ConfidenceHigh, Amount: 40000, CloseDate: inTargetMonth(12), LastActivityDate: old},
	}

	result, err := strategy.Forecast(deals, testMonth, testNow)
	assert.NoError(t, err)

	assert.Equal(t, 60000.0, result.Conservative)
	assert.Equal(t, 100000.0, result.Base)
	assert.Equal(t, 100000.0, result.CommittedValue)
}

func TestActivityGatedStrategy_OptimisticRequiresUpcomingNextStep(t *testing.T) {
	strategy := NewActivityGatedStrategy(NewStalenessClassifier(7))

	soon := testNow.AddDate(0, 0, 3).Format(time.RFC3339)
	farAway := testNow.AddDate(0, 0, 30).Format(time.RFC3339)
	past := testNow.AddDate(0, 0, -3).Format(time.RFC3339)

	deals := []*domain.Deal{
		{ID: "D1", Stage: domain.StageUncommitted, Amount: 30000, CloseDate: inTargetMonth(20), NextStepDate: soon},
		{ID: "D2", Stage: domain.StageUncommitted, Amount: 25000, CloseDate: inTargetMonth(21), NextStepDate: farAway},
		{ID: "D3", Stage: domain.StageUncommitted, Amount: 15000, CloseDate: inTargetMonth(22), NextStepDate: past},
		{ID: "D4", Stage: domain.StageUncommitted, Amount: 10000, CloseDate: inTargetMonth(23)},
	}

	result, err := strategy.Forecast(deals, testMonth, testNow)
	assert.NoError(t, err)

	// Todos compõem o valor uncommitted, mas só o próximo passo iminente
	// vira upside do otimista
	assert.Equal(t, 80000.0, result.UncommittedValue)
	assert.Equal(t, 0.0, result.Base)
	assert.Equal(t, 30000.0, result.Optimistic)
}

func TestActivityGatedStrategy_RealizedRevenueStillCounts(t *testing.T) {
	strategy := NewActivityGatedStrategy(NewStalenessClassifier(7))

	deals := []*domain.Deal{
		{ID: "D1", Stage: domain.StageWon, Amount: 50000, CloseDate: inTargetMonth(5)},
		{ID: "D2", Stage: domain.StageCommitted, Confidence: domain.ConfidenceMedium, Amount: 40000, CloseDate: inTargetMonth(15), LastActivityDate: testNow.AddDate(0, 0, -1).Format(time.RFC3339)},
	}

	result, err := strategy.Forecast(deals, testMonth, testNow)
	assert.NoError(t, err)

	assert.Equal(t, 50000.0, result.ClosedWon)
	assert.Equal(t, 90000.0, result.Conservative)
	assert.Equal(t, 90000.0, result.Base)
	assert.Equal(t, 90000.0, result.Optimistic)
	assert.Equal(t, 90000.0, result.CommittedValue)
	assert.Equal(t, 90000.0, result.PipelineValue)
}

func TestActivityGatedStrategy_OrderingInvariant(t *testing.T) {
	strategy := NewActivityGatedStrategy(NewStalenessClassifier(7))

	result, err := strategy.Forecast(scenarioDeals(), testMonth, testNow)
	assert.NoError(t, err)
	assert.LessOrEqual(t, result.Conservative, result.Base)
	assert.GreaterOrEqual(t, result.Optimistic, result.Base)
}

func TestActivityGatedStrategy_MalformedNextStepDate(t *testing.T) {
	strategy := NewActivityGatedStrategy(NewStalenessClassifier(7))

	deals := []*domain.Deal{
		{ID: "D1", Stage: domain.StageUncommitted, Amount: 30000, CloseDate: inTargetMonth(20), NextStepDate: "amanhã"},
	}

	_, err := strategy.Forecast(deals, testMonth, testNow)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "next_step_date malformada")
}
