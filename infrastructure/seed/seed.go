// Package seed carrega um arquivo de fixture JSON para dentro do store em
// memória na subida da aplicação. Não há geração aleatória de dados; o
// protótipo parte sempre do mesmo arquivo.
package seed

import (
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/salesdeck/pipeline-manager-api/infrastructure/repository"
	"github.com/salesdeck/pipeline-manager-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Snapshot é o formato do arquivo de seed
type Snapshot struct {
	Accounts       []*domain.Account           `json:"accounts"`
	Deals          []*domain.Deal              `json:"deals"`
	RevenueHistory []*domain.HistoricalRevenue `json:"revenue_history"`
}

// Load lê o arquivo de seed e insere os registros nos repositórios. Caminho
// vazio significa subir com o store vazio.
func Load(
	path string,
	accountRepo repository.AccountRepository,
	dealRepo repository.DealRepository,
	revenueRepo repository.RevenueRepository,
) error {
	if path == "" {
		logrus.Info("Nenhum arquivo de seed configurado, store inicia vazio")
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "erro ao ler arquivo de seed %s", path)
	}

	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return errors.Wrapf(err, "erro ao interpretar arquivo de seed %s", path)
	}

	for _, account := range snapshot.Accounts {
		if _, err := accountRepo.Upsert(account); err != nil {
			return errors.Wrapf(err, "erro ao inserir conta %s do seed", account.ID)
		}
	}

	for _, deal := range snapshot.Deals {
		if _, err := dealRepo.Upsert(deal); err != nil {
			return errors.Wrapf(err, "erro ao inserir negócio %s do seed", deal.ID)
		}
	}

	for _, row := range snapshot.RevenueHistory {
		if err := revenueRepo.Upsert(row); err != nil {
			return errors.Wrapf(err, "erro ao inserir receita de %s do seed", row.Month)
		}
	}

	logrus.WithFields(logrus.Fields{
		"accounts":        len(snapshot.Accounts),
		"deals":           len(snapshot.Deals),
		"revenue_history": len(snapshot.RevenueHistory),
	}).Info("Seed carregado com sucesso")

	return nil
}
