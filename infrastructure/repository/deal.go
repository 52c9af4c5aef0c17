// Package repository implementa o store em memória da aplicação. O protótipo
// não tem persistência real: os repositórios guardam os registros em mapas
// protegidos por mutex e sempre entregam cópias, para que cada chamada do
// motor de forecast receba um snapshot imutável.
package repository

import (
	"sort"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/salesdeck/pipeline-manager-api/internal/domain"
	"github.com/salesdeck/pipeline-manager-api/pkg/utils"
)

type DealRepository interface {
	List() ([]*domain.Deal, error)
	GetByID(id string) (*domain.Deal, error)
	Upsert(deal *domain.Deal) (*domain.Deal, error)
	Delete(id string) error
}

type dealRepository struct {
	mu    sync.RWMutex
	deals map[string]*domain.Deal
}

func NewDealRepository() DealRepository {
	return &dealRepository{
		deals: make(map[string]*domain.Deal),
	}
}

// List retorna um snapshot de todos os negócios, ordenado por ID para que
// chamadas consecutivas sejam determinísticas
func (r *dealRepository) List() ([]*domain.Deal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	deals := make([]*domain.Deal, 0, len(r.deals))
	for _, deal := range r.deals {
		deals = append(deals, deal.Clone())
	}

	sort.Slice(deals, func(i, j int) bool {
		return deals[i].ID < deals[j].ID
	})

	return deals, nil
}

func (r *dealRepository) GetByID(id string) (*domain.Deal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	deal, ok := r.deals[id]
	if !ok {
		return nil, nil
	}

	return deal.Clone(), nil
}

// Upsert insere ou atualiza um negócio. Negócios sem ID recebem um novo
// identificador; created_at é preservado em atualizações.
func (r *dealRepository) Upsert(deal *domain.Deal) (*domain.Deal, error) {
	if deal == nil {
		return nil, errors.New("deal não pode ser nulo")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored := deal.Clone()
	now := time.Now().Format(time.RFC3339)

	if stored.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return nil, errors.Wrap(err, "erro ao gerar ID para o negócio")
		}
		stored.ID = id
		stored.CreatedAt = now
	} else if existing, ok := r.deals[stored.ID]; ok {
		stored.CreatedAt = existing.CreatedAt
	} else if stored.CreatedAt == "" {
		stored.CreatedAt = now
	}

	stored.UpdatedAt = now
	r.deals[stored.ID] = stored

	return stored.Clone(), nil
}

func (r *dealRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.deals[id]; !ok {
		return errors.Errorf("negócio não encontrado: %s", id)
	}

	delete(r.deals, id)
	return nil
}
