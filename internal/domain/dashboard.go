package domain

import "time"

// DashboardMetrics é o resultado imutável do motor de forecast para um mês
// alvo: os cenários de receita, a composição do pipeline e as métricas de
// saúde do time. Somas em unidades da moeda; métricas de saúde em percentual.
type DashboardMetrics struct {
	Conservative     float64 `json:"conservative"`
	Base             float64 `json:"base"`
	Optimistic       float64 `json:"optimistic"`
	PipelineValue    float64 `json:"pipeline_value"`
	CommittedValue   float64 `json:"committed_value"`
	UncommittedValue float64 `json:"uncommitted_value"`
	LeadsValue       float64 `json:"leads_value"`
	ClosedWon        float64 `json:"closed_won"`

	MAPE           float64 `json:"mape"`
	HygieneScore   float64 `json:"hygiene_score"`
	FreshnessScore float64 `json:"freshness_score"`
	WinRate        float64 `json:"win_rate"`
	MoMGrowth      float64 `json:"mom_growth"`

	ConcentrationRisk bool `json:"concentration_risk"`
	StaleDeals        int  `json:"stale_deals"`
}

// DashboardSnapshot é o resultado de uma computação do dashboard junto com o
// contexto em que foi gerada, cacheável pelo agendador
type DashboardSnapshot struct {
	Month       string            `json:"month"` // Formato YYYY-MM
	Strategy    string            `json:"strategy"`
	Metrics     *DashboardMetrics `json:"metrics"`
	GeneratedAt time.Time         `json:"generated_at"`
}
