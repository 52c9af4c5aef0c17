package domain

// HistoricalRevenue representa o fechamento de um mês passado: quanto foi
// previsto versus quanto foi realizado. Usado apenas pelas métricas de saúde.
type HistoricalRevenue struct {
	Month      string  `json:"month"` // Formato YYYY-MM
	Forecasted float64 `json:"forecasted"`
	Actual     float64 `json:"actual"`
}
