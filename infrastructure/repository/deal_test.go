package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/salesdeck/pipeline-manager-api/internal/domain"
)

func TestDealRepository_UpsertAndGet(t *testing.T) {
	repo := NewDealRepository()

	created, err := repo.Upsert(&domain.Deal{
		AccountID: "ACC001",
		Amount:    50000,
		Currency:  "BRL",
		Stage:     domain.StageCommitted,
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.NotEmpty(t, created.CreatedAt)
	assert.NotEmpty(t, created.UpdatedAt)

	found, err := repo.GetByID(created.ID)
	assert.NoError(t, err)
	assert.NotNil(t, found)
	assert.Equal(t, 50000.0, found.Amount)

	// Atualização preserva created_at
	found.Amount = 60000
	updated, err := repo.Upsert(found)
	assert.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Equal(t, 60000.0, updated.Amount)
}

func TestDealRepository_GetByID_NotFound(t *testing.T) {
	repo := NewDealRepository()

	found, err := repo.GetByID("nao-existe")
	assert.NoError(t, err)
	assert.Nil(t, found)
}

func TestDealRepository_List_ReturnsSnapshot(t *testing.T) {
	repo := NewDealRepository()

	created, err := repo.Upsert(&domain.Deal{
		Stage:      domain.StageLead,
		Amount:     1000,
		Activities: []domain.Activity{{ID: "A1", Type: "call"}},
	})
	assert.NoError(t, err)

	listed, err := repo.List()
	assert.NoError(t, err)
	assert.Len(t, listed, 1)

	// Mutar o snapshot não pode afetar o store
	listed[0].Amount = 999999
	listed[0].Activities[0].Type = "email"

	stored, err := repo.GetByID(created.ID)
	assert.NoError(t, err)
	assert.Equal(t, 1000.0, stored.Amount)
	assert.Equal(t, "call", stored.Activities[0].Type)
}

func TestDealRepository_List_Ordering(t *testing.T) {
	repo := NewDealRepository()

	_, err := repo.Upsert(&domain.Deal{ID: "D2", Stage: domain.StageLead})
	assert.NoError(t, err)
	_, err = repo.Upsert(&domain.Deal{ID: "D1", Stage: domain.StageLead})
	assert.NoError(t, err)

	listed, err := repo.List()
	assert.NoError(t, err)
	assert.Len(t, listed, 2)
	assert.Equal(t, "D1", listed[0].ID)
	assert.Equal(t, "D2", listed[1].ID)
}

func TestDealRepository_Delete(t *testing.T) {
	repo := NewDealRepository()

	created, err := repo.Upsert(&domain.Deal{Stage: domain.StageLead})
	assert.NoError(t, err)

	assert.NoError(t, repo.Delete(created.ID))

	found, err := repo.GetByID(created.ID)
	assert.NoError(t, err)
	assert.Nil(t, found)

	// Deletar de novo é erro
	assert.Error(t, repo.Delete(created.ID))
}

func TestRevenueRepository_ListChronological(t *testing.T) {
	repo := NewRevenueRepository()

	assert.NoError(t, repo.Upsert(&domain.HistoricalRevenue{Month: "2024-03", Forecasted: 90000, Actual: 100000}))
	assert.NoError(t, repo.Upsert(&domain.HistoricalRevenue{Month: "2024-01", Forecasted: 80000, Actual: 85000}))
	assert.NoError(t, repo.Upsert(&domain.HistoricalRevenue{Month: "2024-02", Forecasted: 85000, Actual: 95000}))

	rows, err := repo.List()
	assert.NoError(t, err)
	assert.Len(t, rows, 3)
	assert.Equal(t, "2024-01", rows[0].Month)
	assert.Equal(t, "2024-02", rows[1].Month)
	assert.Equal(t, "2024-03", rows[2].Month)

	// Upsert do mesmo mês substitui a linha
	assert.NoError(t, repo.Upsert(&domain.HistoricalRevenue{Month: "2024-03", Forecasted: 90000, Actual: 120000}))
	rows, err = repo.List()
	assert.NoError(t, err)
	assert.Len(t, rows, 3)
	assert.Equal(t, 120000.0, rows[2].Actual)
}

func TestRevenueRepository_Upsert_RequiresMonth(t *testing.T) {
	repo := NewRevenueRepository()
	assert.Error(t, repo.Upsert(&domain.HistoricalRevenue{}))
	assert.Error(t, repo.Upsert(nil))
}
