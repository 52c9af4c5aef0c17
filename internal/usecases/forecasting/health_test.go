package forecasting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/salesdeck/pipeline-manager-api/internal/domain"
)

func completeActiveDeal(id string, lastActivity string) *domain.Deal {
	return &domain.Deal{
		ID:               id,
		Stage:            domain.StageCommitted,
		Confidence:       domain.ConfidenceHigh,
		Amount:           10000,
		CloseDate:        inTargetMonth(20),
		NextStep:         "Enviar proposta",
		NextStepDate:     inTargetMonth(18),
		LastActivityDate: lastActivity,
	}
}

func TestHealthCalculator_WinRate(t *testing.T) {
	calc := NewHealthCalculator(NewStalenessClassifier(7))

	tests := []struct {
		name     string
		deals    []*domain.Deal
		expected float64
	}{
		{
			name: "3 ganhos e 1 perdido dá 75",
			deals: []*domain.Deal{
				{ID: "D1", Stage: domain.StageWon},
				{ID: "D2", Stage: domain.StageWon},
				{ID: "D3", Stage: domain.StageWon},
				{ID: "D4", Stage: domain.StageLost},
			},
			expected: 75,
		},
		{
			name: "Sem negócios fechados dá 0, não NaN",
			deals: []*domain.Deal{
				completeActiveDeal("D1", testNow.Format(time.RFC3339)),
			},
			expected: 0,
		},
		{
			name:     "Pipeline vazio dá 0",
			deals:    nil,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metrics, err := calc.Compute(tt.deals, nil, testNow)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, metrics.WinRate)
		})
	}
}

func TestHealthCalculator_HygieneScore(t *testing.T) {
	calc := NewHealthCalculator(NewStalenessClassifier(7))

	recent := testNow.Format(time.RFC3339)

	incomplete := completeActiveDeal("D2", recent)
	incomplete.NextStep = ""

	noAmount := completeActiveDeal("D3", recent)
	noAmount.Amount = 0

	deals := []*domain.Deal{
		completeActiveDeal("D1", recent),
		incomplete,
		noAmount,
		// Negócios fechados não entram na higiene
		{ID: "D4", Stage: domain.StageWon},
	}

	metrics, err := calc.Compute(deals, nil, testNow)
	assert.NoError(t, err)
	assert.InDelta(t, 100.0/3, metrics.HygieneScore, 0.0001)
}

func TestHealthCalculator_FreshnessScore(t *testing.T) {
	calc := NewHealthCalculator(NewStalenessClassifier(7))

	deals := []*domain.Deal{
		completeActiveDeal("D1", testNow.AddDate(0, 0, -2).Format(time.RFC3339)),
		completeActiveDeal("D2", testNow.AddDate(0, 0, -10).Format(time.RFC3339)),
	}

	metrics, err := calc.Compute(deals, nil, testNow)
	assert.NoError(t, err)
	assert.Equal(t, 50.0, metrics.FreshnessScore)
}

func TestHealthCalculator_DefaultsWithoutActiveDeals(t *testing.T) {
	calc := NewHealthCalculator(NewStalenessClassifier(7))

	deals := []*domain.Deal{
		{ID: "D1", Stage: domain.StageWon},
		{ID: "D2", Stage: domain.StageLost},
	}

	metrics, err := calc.Compute(deals, nil, testNow)
	assert.NoError(t, err)

	// Sem negócios ativos, higiene e frescor valem 100 por vacuidade
	assert.Equal(t, 100.0, metrics.HygieneScore)
	assert.Equal(t, 100.0, metrics.FreshnessScore)
	assert.Equal(t, 50.0, metrics.WinRate)
}

func TestHealthCalculator_MAPE(t *testing.T) {
	calc := NewHealthCalculator(NewStalenessClassifier(7))

	tests := []struct {
		name     string
		history  []*domain.HistoricalRevenue
		expected float64
	}{
		{
			name: "Um mês com erro de 10%",
			history: []*domain.HistoricalRevenue{
				{Month: "2024-04", Forecasted: 90000, Actual: 100000},
			},
			expected: 10,
		},
		{
			name: "Média sobre vários meses",
			history: []*domain.HistoricalRevenue{
				{Month: "2024-03", Forecasted: 90000, Actual: 100000},  // 10%
				{Month: "2024-04", Forecasted: 120000, Actual: 100000}, // 20%
			},
			expected: 15,
		},
		{
			name: "Mês com realizado zero é ignorado na média",
			history: []*domain.HistoricalRevenue{
				{Month: "2024-03", Forecasted: 50000, Actual: 0},
				{Month: "2024-04", Forecasted: 90000, Actual: 100000},
			},
			expected: 10,
		},
		{
			name: "Todos os meses com realizado zero dá 0",
			history: []*domain.HistoricalRevenue{
				{Month: "2024-04", Forecasted: 50000, Actual: 0},
			},
			expected: 0,
		},
		{
			name:     "Histórico vazio dá 0",
			history:  nil,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metrics, err := calc.Compute(nil, tt.history, testNow)
			assert.NoError(t, err)
			assert.InDelta(t, tt.expected, metrics.MAPE, 0.0001)
		})
	}
}

func TestHealthCalculator_MoMGrowth(t *testing.T) {
	calc := NewHealthCalculator(NewStalenessClassifier(7))

	tests := []struct {
		name     string
		history  []*domain.HistoricalRevenue
		expected float64
	}{
		{
			name: "Crescimento de 100k para 120k dá 20",
			history: []*domain.HistoricalRevenue{
				{Month: "2024-03", Actual: 100000},
				{Month: "2024-04", Actual: 120000},
			},
			expected: 20,
		},
		{
			name: "Queda de receita dá percentual negativo",
			history: []*domain.HistoricalRevenue{
				{Month: "2024-03", Actual: 100000},
				{Month: "2024-04", Actual: 80000},
			},
			expected: -20,
		},
		{
			name: "Usa sempre os dois últimos meses da série",
			history: []*domain.HistoricalRevenue{
				{Month: "2024-02", Actual: 500000},
				{Month: "2024-03", Actual: 100000},
				{Month: "2024-04", Actual: 120000},
			},
			expected: 20,
		},
		{
			name: "Mês anterior zerado dá 0",
			history: []*domain.HistoricalRevenue{
				{Month: "2024-03", Actual: 0},
				{Month: "2024-04", Actual: 120000},
			},
			expected: 0,
		},
		{
			name: "Histórico com um único mês dá 0",
			history: []*domain.HistoricalRevenue{
				{Month: "2024-04", Actual: 120000},
			},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metrics, err := calc.Compute(nil, tt.history, testNow)
			assert.NoError(t, err)
			assert.InDelta(t, tt.expected, metrics.MoMGrowth, 0.0001)
		})
	}
}

func TestHealthCalculator_MalformedActivityDate(t *testing.T) {
	calc := NewHealthCalculator(NewStalenessClassifier(7))

	deals := []*domain.Deal{
		{ID: "D1", Stage: domain.StageCommitted, LastActivityDate: "ontem"},
	}

	_, err := calc.Compute(deals, nil, testNow)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "last_activity_date malformada")
}
