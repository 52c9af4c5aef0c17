package handler

import (
	"net/http"

	"github.com/salesdeck/pipeline-manager-api/infrastructure/repository"
	"github.com/salesdeck/pipeline-manager-api/pkg/apiErrors"
	"github.com/salesdeck/pipeline-manager-api/pkg/log"
)

// ListAccounts lista as contas cadastradas
func ListAccounts(repo repository.AccountRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		accounts, err := repo.List()
		if err != nil {
			logger.WithError(err).Error("accounts: erro ao listar contas")
			apiErrors.WriteError(w, apiErrors.ErrStoreOperation, "Erro ao listar contas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(accounts); err != nil {
			logger.WithError(err).Error("accounts: erro ao codificar resposta")
		}
	})
}
