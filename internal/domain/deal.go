package domain

// Stage representa o estágio do ciclo de vida de um negócio
type Stage string

const (
	StageLead        Stage = "LEAD"
	StageUncommitted Stage = "UNCOMMITTED"
	StageCommitted   Stage = "COMMITTED"
	StageWon         Stage = "WON"
	StageLost        Stage = "LOST"
)

// Confidence representa o grau de certeza subjetiva de um negócio aberto
type Confidence string

const (
	ConfidenceHigh   Confidence = "HIGH"
	ConfidenceMedium Confidence = "MEDIUM"
	ConfidenceLow    Confidence = "LOW"
)

// Activity representa uma interação registrada em um negócio. Consumida
// apenas pela visão de detalhe da conta, nunca pelo motor de forecast.
type Activity struct {
	ID         string `json:"id"`
	Type       string `json:"type"`
	Summary    string `json:"summary"`
	OccurredAt string `json:"occurred_at"`
}

// Deal representa uma oportunidade de venda acompanhada no pipeline.
// Os campos de data são strings ISO-8601 como fornecidas pelo store;
// string vazia significa campo ausente.
type Deal struct {
	ID               string     `json:"id"`
	AccountID        string     `json:"account_id"`
	OwnerID          string     `json:"owner_id"`
	OwnerName        string     `json:"owner_name"`
	Amount           float64    `json:"amount"`
	Currency         string     `json:"currency"`
	Stage            Stage      `json:"stage"`
	Confidence       Confidence `json:"confidence"`
	CloseDate        string     `json:"close_date"`
	LastActivityDate string     `json:"last_activity_date"`
	NextStep         string     `json:"next_step"`
	NextStepDate     string     `json:"next_step_date"`
	Probability      int        `json:"probability"`
	Activities       []Activity `json:"activities,omitempty"`
	CreatedAt        string     `json:"created_at"`
	UpdatedAt        string     `json:"updated_at"`
}

// IsOpen indica se o negócio ainda está ativo no pipeline
func (d *Deal) IsOpen() bool {
	return d.Stage != StageWon && d.Stage != StageLost
}

// IsWon indica se o negócio foi fechado como ganho
func (d *Deal) IsWon() bool {
	return d.Stage == StageWon
}

// Clone retorna uma cópia profunda do negócio, incluindo as atividades
func (d *Deal) Clone() *Deal {
	clone := *d

	if d.Activities != nil {
		clone.Activities = make([]Activity, len(d.Activities))
		copy(clone.Activities, d.Activities)
	}

	return &clone
}
