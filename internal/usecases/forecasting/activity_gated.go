package forecasting

import (
	"time"

	"github.com/pkg/errors"
	"github.com/salesdeck/pipeline-manager-api/internal/domain"
	"github.com/salesdeck/pipeline-manager-api/pkg/utils"
)

const StrategyActivityGated = "activity-gated"

// ActivityGatedStrategy é a regra alternativa de forecast, derivada do modelo
// antigo baseado em datas: o cenário conservador exige atividade recente em
// vez de confiança alta, e o upside do otimista só conta negócios UNCOMMITTED
// com próximo passo agendado dentro da janela de atividade. A composição dos
// buckets de pipeline é idêntica à estratégia canônica.
type ActivityGatedStrategy struct {
	staleness *StalenessClassifier
}

func NewActivityGatedStrategy(staleness *StalenessClassifier) *ActivityGatedStrategy {
	if staleness == nil {
		staleness = NewStalenessClassifier(DefaultStalenessThresholdDays)
	}

	return &ActivityGatedStrategy{staleness: staleness}
}

func (s *ActivityGatedStrategy) Name() string {
	return StrategyActivityGated
}

func (s *ActivityGatedStrategy) Forecast(deals []*domain.Deal, targetMonth, now time.Time) (*ForecastResult, error) {
	result := &ForecastResult{}
	var optimisticDelta float64

	for _, deal := range deals {
		closeDate, err := utils.ParseDateTime(deal.CloseDate)
		if err != nil {
			return nil, errors.Wrapf(err, "negócio %s: close_date malformada %q", deal.ID, deal.CloseDate)
		}

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

			stale, err := s.staleness.IsStale(deal, now)
			if err != nil {
				return nil, err
			}
			if !stale {
				result.Conservative += deal.Amount
			}
		case domain.StageUncommitted:
			result.UncommittedValue += deal.Amount

			actionable, err := s.hasUpcomingNextStep(deal, now)
			if err != nil {
				return nil, err
			}
			if actionable {
				optimisticDelta += deal.Amount
			}
		case domain.StageLead:
			result.LeadsValue += deal.Amount
		}
	}

	result.Conservative += result.ClosedWon
	result.Base += result.ClosedWon
	result.Optimistic = result.Base + optimisticDelta
	result.PipelineValue += result.ClosedWon
	result.CommittedValue += result.ClosedWon

	return result, nil
}

// hasUpcomingNextStep verifica se o negócio tem próximo passo agendado dentro
// da janela de atividade a partir de agora
func (s *ActivityGatedStrategy) hasUpcomingNextStep(deal *domain.Deal, now time.Time) (bool, error) {
	nextStep, err := utils.ParseDateTime(deal.NextStepDate)
	if err != nil {
		return false, errors.Wrapf(err, "negócio %s: next_step_date malformada %q", deal.ID, deal.NextStepDate)
	}

	if nextStep == nil || nextStep.Before(now) {
		return false, nil
	}

	return utils.WholeDaysBetween(now, *nextStep) <= s.staleness.ThresholdDays, nil
}
