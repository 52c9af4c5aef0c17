package forecasting

import (
	"time"

	"github.com/pkg/errors"
	"github.com/salesdeck/pipeline-manager-api/internal/domain"
	"github.com/salesdeck/pipeline-manager-api/pkg/utils"
)

// DefaultStalenessThresholdDays é o limite padrão de dias completos sem
// atividade antes de um negócio ser considerado parado
const DefaultStalenessThresholdDays = 7

// StalenessClassifier decide se um negócio está parado por falta de atividade
type StalenessClassifier struct {
	ThresholdDays int
}

func NewStalenessClassifier(thresholdDays int) *StalenessClassifier {
	if thresholdDays <= 0 {
		thresholdDays = DefaultStalenessThresholdDays
	}

	return &StalenessClassifier{ThresholdDays: thresholdDays}
}

// IsStale verifica se o negócio passou mais dias completos que o limite sem
// atividade registrada. Exatamente no limite ainda não é parado. Negócio sem
// data de atividade conta como parado; data malformada é erro do chamador.
func (c *StalenessClassifier) IsStale(deal *domain.Deal, now time.Time) (bool, error) {
	lastActivity, err := utils.ParseDateTime(deal.LastActivityDate)
	if err != nil {
		return false, errors.Wrapf(err, "negócio %s: last_activity_date malformada %q", deal.ID, deal.LastActivityDate)
	}

	if lastActivity == nil {
		return true, nil
	}

	return utils.WholeDaysBetween(*lastActivity, now) > c.ThresholdDays, nil
}
