package repository

import (
	"sort"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/salesdeck/pipeline-manager-api/internal/domain"
	"github.com/salesdeck/pipeline-manager-api/pkg/utils"
)

type AccountRepository interface {
	List() ([]*domain.Account, error)
	GetByID(id string) (*domain.Account, error)
	Upsert(account *domain.Account) (*domain.Account, error)
}

type accountRepository struct {
	mu       sync.RWMutex
	accounts map[string]*domain.Account
}

func NewAccountRepository() AccountRepository {
	return &accountRepository{
		accounts: make(map[string]*domain.Account),
	}
}

func (r *accountRepository) List() ([]*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	accounts := make([]*domain.Account, 0, len(r.accounts))
	for _, account := range r.accounts {
		clone := *account
		accounts = append(accounts, &clone)
	}

	sort.Slice(accounts, func(i, j int) bool {
		return accounts[i].Name < accounts[j].Name
	})

	return accounts, nil
}

func (r *accountRepository) GetByID(id string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.accounts[id]
	if !ok {
		return nil, nil
	}

	clone := *account
	return &clone, nil
}

func (r *accountRepository) Upsert(account *domain.Account) (*domain.Account, error) {
	if account == nil {
		return nil, errors.New("conta não pode ser nula")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	clone := *account
	now := time.Now().Format(time.RFC3339)

	if clone.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return nil, errors.Wrap(err, "erro ao gerar ID para a conta")
		}
		clone.ID = id
		clone.CreatedAt = now
	} else if existing, ok := r.accounts[clone.ID]; ok {
		clone.CreatedAt = existing.CreatedAt
	} else if clone.CreatedAt == "" {
		clone.CreatedAt = now
	}

	clone.UpdatedAt = now
	r.accounts[clone.ID] = &clone

	result := clone
	return &result, nil
}
