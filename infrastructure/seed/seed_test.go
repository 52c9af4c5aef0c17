package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/salesdeck/pipeline-manager-api/infrastructure/repository"
)

const seedFixture = `{
	"accounts": [
		{"id": "ACC001", "name": "Óptica Central", "industry": "Varejo"}
	],
	"deals": [
		{"id": "D1", "account_id": "ACC001", "stage": "COMMITTED", "confidence": "HIGH", "amount": 100000, "currency": "BRL", "close_date": "2024-05-20"},
		{"account_id": "ACC001", "stage": "LEAD", "amount": 20000, "currency": "BRL"}
	],
	"revenue_history": [
		{"month": "2024-03", "forecasted": 90000, "actual": 100000},
		{"month": "2024-04", "forecasted": 110000, "actual": 120000}
	]
}`

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.json")
	assert.NoError(t, os.WriteFile(path, []byte(seedFixture), 0o600))

	accountRepo := repository.NewAccountRepository()
	dealRepo := repository.NewDealRepository()
	revenueRepo := repository.NewRevenueRepository()

	assert.NoError(t, Load(path, accountRepo, dealRepo, revenueRepo))

	accounts, err := accountRepo.List()
	assert.NoError(t, err)
	assert.Len(t, accounts, 1)

	deals, err := dealRepo.List()
	assert.NoError(t, err)
	assert.Len(t, deals, 2)

	// Negócio sem ID no seed recebe um identificador no upsert
	for _, deal := range deals {
		assert.NotEmpty(t, deal.ID)
	}

	rows, err := revenueRepo.List()
	assert.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Equal(t, "2024-03", rows[0].Month)
}

func TestLoad_EmptyPathIsNoop(t *testing.T) {
	assert.NoError(t, Load("", repository.NewAccountRepository(), repository.NewDealRepository(), repository.NewRevenueRepository()))
}

func TestLoad_MissingFile(t *testing.T) {
	err := Load("/caminho/que/nao/existe.json", repository.NewAccountRepository(), repository.NewDealRepository(), repository.NewRevenueRepository())
	assert.Error(t, err)
}

func TestLoad_MalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.json")
	assert.NoError(t, os.WriteFile(path, []byte("{nope"), 0o600))

	err := Load(path, repository.NewAccountRepository(), repository.NewDealRepository(), repository.NewRevenueRepository())
	assert.Error(t, err)
}
