package forecasting

import (
	"github.com/salesdeck/pipeline-manager-api/internal/domain"
)

// DefaultConcentrationRatio é a fração do pipeline acima da qual os dois
// maiores negócios caracterizam risco de concentração
const DefaultConcentrationRatio = 0.30

// ConcentrationDetector verifica se o valor do pipeline depende demais de
// poucos negócios grandes
type ConcentrationDetector struct {
	Ratio float64
}

func NewConcentrationDetector(ratio float64) *ConcentrationDetector {
	if ratio <= 0 {
		ratio = DefaultConcentrationRatio
	}

	return &ConcentrationDetector{Ratio: ratio}
}

// HasConcentrationRisk reporta se a soma dos dois maiores negócios excede a
// fração configurada do valor total. Pipeline sem valor nunca é concentrado.
// Os dois maiores valores são achados em uma única varredura, sem ordenar.
func (d *ConcentrationDetector) HasConcentrationRisk(deals []*domain.Deal, totalValue float64) bool {
	if totalValue == 0 {
		return false
	}

	var first, second float64
	for _, deal := range deals {
		switch {
		case deal.Amount > first:
			second = first
			first = deal.Amount
		case deal.Amount > second:
			second = deal.Amount
		}
	}

	return (first+second)/totalValue > d.Ratio
}
