package forecasting

import (
	"time"

	"github.com/pkg/errors"
	"github.com/salesdeck/pipeline-manager-api/internal/domain"
	"github.com/salesdeck/pipeline-manager-api/pkg/utils"
)

const StrategyStageDirect = "stage-direct"

// StageDirectStrategy é a regra canônica de forecast: o estágio do negócio
// determina diretamente o bucket de cenário. COMMITTED entra no cenário base
// (e no conservador quando a confiança é alta), UNCOMMITTED vira upside do
// otimista e LEAD aparece só como contexto de pipeline. Receita já realizada
// no mês entra em todos os cenários.
type StageDirectStrategy struct{}

func NewStageDirectStrategy() *StageDirectStrategy {
	return &StageDirectStrategy{}
}

func (s *StageDirectStrategy) Name() string {
	return StrategyStageDirect
}

func (s *StageDirectStrategy) Forecast(deals []*domain.Deal, targetMonth, _ time.Time) (*ForecastResult, error) {
	result := &ForecastResult{}
	var optimisticDelta float64

	for _, deal := range deals {
		closeDate, err := utils.ParseDateTime(deal.CloseDate)
		if err != nil {
			return nil, errors.Wrapf(err, "negócio %s: close_date malformada %q", deal.ID, deal.CloseDate)
		}

		// Sem data de fechamento o negócio não pertence a nenhum mês
		if closeDate == nil || !utils.SameMonth(*closeDate, targetMonth) {
			continue
		}

		switch deal.Stage {
		case domain.StageWon:
			result.ClosedWon += deal.Amount
			continue
		case domain.StageLost:
			continue
		}

		result.PipelineValue += deal.Amount

		switch deal.Stage {
		case domain.StageCommitted:
			result.CommittedValue += deal.Amount
			result.Base += deal.Amount
			if deal.Confidence == domain.ConfidenceHigh {
				result.Conservative += deal.Amount
			}
		case domain.StageUncommitted:
			result.UncommittedValue += deal.Amount
			optimisticDelta += deal.Amount
		case domain.StageLead:
			result.LeadsValue += deal.Amount
		}
	}

	// Receita realizada no mês compõe os cenários e os totais de pipeline e
	// comprometido; uncommitted e leads permanecem brutos
	result.Conservative += result.ClosedWon
	result.Base += result.ClosedWon
	result.Optimistic = result.Base + optimisticDelta
	result.PipelineValue += result.ClosedWon
	result.CommittedValue += result.ClosedWon

	return result, nil
}
