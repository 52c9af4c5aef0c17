package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/salesdeck/pipeline-manager-api/infrastructure/repository"
	"github.com/salesdeck/pipeline-manager-api/internal/domain"
	"github.com/salesdeck/pipeline-manager-api/pkg/apiErrors"
	"github.com/salesdeck/pipeline-manager-api/pkg/log"
)

// ListDeals lista os negócios do pipeline, com filtro opcional por estágio
func ListDeals(repo repository.DealRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		deals, err := repo.List()
		if err != nil {
			logger.WithError(err).Error("deals: erro ao listar negócios")
			apiErrors.WriteError(w, apiErrors.ErrStoreOperation, "Erro ao listar negócios", nil)
			return
		}

		if stage := r.URL.Query().Get("stage"); stage != "" {
			filtered := make([]*domain.Deal, 0, len(deals))
			for _, deal := range deals {
				if deal.Stage == domain.Stage(stage) {
					filtered = append(filtered, deal)
				}
			}
			deals = filtered
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(deals); err != nil {
			logger.WithError(err).Error("deals: erro ao codificar resposta")
		}
	})
}

// GetDeal busca um negócio pelo ID
func GetDeal(repo repository.DealRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		deal, err := repo.GetByID(id)
		if err != nil {
			logger.WithError(err).WithField("deal_id", id).Error("deals: erro ao buscar negócio")
			apiErrors.WriteError(w, apiErrors.ErrStoreOperation, "Erro ao buscar negócio", nil)
			return
		}

		if deal == nil {
			apiErrors.WriteError(w, apiErrors.ErrDealNotFound, "Negócio não encontrado", id)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(deal); err != nil {
			logger.WithError(err).Error("deals: erro ao codificar resposta")
		}
	})
}

// CreateDeal insere um novo negócio no pipeline
func CreateDeal(repo repository.DealRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var deal domain.Deal
		if err := json.NewDecoder(r.Body).Decode(&deal); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", err.Error())
			return
		}

		deal.ID = "" // IDs são atribuídos pelo store

		created, err := repo.Upsert(&deal)
		if err != nil {
			logger.WithError(err).Error("deals: erro ao criar negócio")
			apiErrors.WriteError(w, apiErrors.ErrStoreOperation, "Erro ao criar negócio", nil)
			return
		}

		logger.WithFields(log.Fields{
			"deal_id": created.ID,
			"stage":   created.Stage,
		}).Info("deals: negócio criado")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(created); err != nil {
			logger.WithError(err).Error("deals: erro ao codificar resposta")
		}
	})
}

// UpdateDeal atualiza um negócio existente
func UpdateDeal(repo repository.DealRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		existing, err := repo.GetByID(id)
		if err != nil {
			logger.WithError(err).WithField("deal_id", id).Error("deals: erro ao buscar negócio")
			apiErrors.WriteError(w, apiErrors.ErrStoreOperation, "Erro ao buscar negócio", nil)
			return
		}

		if existing == nil {
			apiErrors.WriteError(w, apiErrors.ErrDealNotFound, "Negócio não encontrado", id)
			return
		}

		var deal domain.Deal
		if err := json.NewDecoder(r.Body).Decode(&deal); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", err.Error())
			return
		}

		deal.ID = id

		updated, err := repo.Upsert(&deal)
		if err != nil {
			logger.WithError(err).WithField("deal_id", id).Error("deals: erro ao atualizar negócio")
			apiErrors.WriteError(w, apiErrors.ErrStoreOperation, "Erro ao atualizar negócio", nil)
			return
		}

		logger.WithFields(log.Fields{
			"deal_id": updated.ID,
			"stage":   updated.Stage,
		}).Info("deals: negócio atualizado")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(updated); err != nil {
			logger.WithError(err).Error("deals: erro ao codificar resposta")
		}
	})
}

// DeleteDeal remove um negócio do pipeline
func DeleteDeal(repo repository.DealRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := repo.Delete(id); err != nil {
			logger.WithError(err).WithField("deal_id", id).Warn("deals: erro ao remover negócio")
			apiErrors.WriteError(w, apiErrors.ErrDealNotFound, "Negócio não encontrado", id)
			return
		}

		logger.WithField("deal_id", id).Info("deals: negócio removido")
		w.WriteHeader(http.StatusNoContent)
	})
}
