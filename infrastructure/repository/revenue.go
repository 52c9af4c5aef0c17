package repository

import (
	"sort"
	"sync"

	"github.com/pkg/errors"
	"github.com/salesdeck/pipeline-manager-api/internal/domain"
)

type RevenueRepository interface {
	// List retorna o histórico em ordem cronológica (mês ascendente)
	List() ([]*domain.HistoricalRevenue, error)
	Upsert(row *domain.HistoricalRevenue) error
}

type revenueRepository struct {
	mu   sync.RWMutex
	rows map[string]*domain.HistoricalRevenue
}

func NewRevenueRepository() RevenueRepository {
	return &revenueRepository{
		rows: make(map[string]*domain.HistoricalRevenue),
	}
}

func (r *revenueRepository) List() ([]*domain.HistoricalRevenue, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rows := make([]*domain.HistoricalRevenue, 0, len(r.rows))
	for _, row := range r.rows {
		clone := *row
		rows = append(rows, &clone)
	}

	// O formato YYYY-MM ordena cronologicamente em ordem lexicográfica
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Month < rows[j].Month
	})

	return rows, nil
}

func (r *revenueRepository) Upsert(row *domain.HistoricalRevenue) error {
	if row == nil || row.Month == "" {
		return errors.New("registro de receita precisa de um mês")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	clone := *row
	r.rows[row.Month] = &clone

	return nil
}
