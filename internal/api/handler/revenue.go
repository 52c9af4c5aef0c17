package handler

import (
	"net/http"

	"github.com/salesdeck/pipeline-manager-api/infrastructure/repository"
	"github.com/salesdeck/pipeline-manager-api/internal/domain"
	"github.com/salesdeck/pipeline-manager-api/pkg/apiErrors"
	"github.com/salesdeck/pipeline-manager-api/pkg/log"
)

// ListRevenueHistory retorna a série histórica de receita em ordem cronológica
func ListRevenueHistory(repo repository.RevenueRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		rows, err := repo.List()
		if err != nil {
			logger.WithError(err).Error("revenue: erro ao listar histórico")
			apiErrors.WriteError(w, apiErrors.ErrStoreOperation, "Erro ao listar histórico de receita", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(rows); err != nil {
			logger.WithError(err).Error("revenue: erro ao codificar resposta")
		}
	})
}

// UpsertRevenueHistory insere ou substitui o fechamento de um mês
func UpsertRevenueHistory(repo repository.RevenueRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var row domain.HistoricalRevenue
		if err := json.NewDecoder(r.Body).Decode(&row); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", err.Error())
			return
		}

		if row.Month == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "É necessário informar o mês (YYYY-MM)", nil)
			return
		}

		if err := repo.Upsert(&row); err != nil {
			logger.WithError(err).WithField("month", row.Month).Error("revenue: erro ao salvar fechamento")
			apiErrors.WriteError(w, apiErrors.ErrStoreOperation, "Erro ao salvar fechamento do mês", nil)
			return
		}

		logger.WithField("month", row.Month).Info("revenue: fechamento salvo")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(row); err != nil {
			logger.WithError(err).Error("revenue: erro ao codificar resposta")
		}
	})
}
