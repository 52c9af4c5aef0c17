package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/salesdeck/pipeline-manager-api/internal/domain"
	"github.com/salesdeck/pipeline-manager-api/internal/scheduler"
	"github.com/salesdeck/pipeline-manager-api/internal/usecases/forecasting"
	"github.com/salesdeck/pipeline-manager-api/pkg/apiErrors"
	"github.com/salesdeck/pipeline-manager-api/pkg/log"
	"github.com/salesdeck/pipeline-manager-api/pkg/utils"
)

// GetDashboardMetrics computa as métricas do dashboard para o mês informado.
// Com cached=true serve o último snapshot gerado pelo agendador, sem
// recomputar nada.
func GetDashboardMetrics(service forecasting.Forecaster, snapshots *scheduler.DashboardSnapshotService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		if r.URL.Query().Get("cached") == "true" {
			snapshot := snapshots.LastSnapshot()
			if snapshot == nil {
				apiErrors.WriteError(w, apiErrors.ErrSnapshotMissing, "Nenhum snapshot do dashboard foi gerado ainda", nil)
				return
			}

			logger.WithFields(log.Fields{
				"month":    snapshot.Month,
				"strategy": snapshot.Strategy,
			}).Info("dashboard: servindo snapshot cacheado")

			writeDashboardResponse(w, logger, snapshot)
			return
		}

		month := r.URL.Query().Get("month")
		year := r.URL.Query().Get("year")

		if month == "" || year == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "É necessário informar mês e ano nos parâmetros", nil)
			return
		}

		// Validar mês (entre 01 e 12)
		monthNumber, err := strconv.Atoi(month)
		if err != nil || monthNumber < 1 || monthNumber > 12 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Mês inválido. Use valores de 01 a 12", nil)
			return
		}

		// Validar ano (4 dígitos)
		yearNumber, err := strconv.Atoi(year)
		if err != nil || len(year) != 4 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Ano inválido. Use formato de quatro dígitos (ex: 2025)", nil)
			return
		}

		targetMonth := time.Date(yearNumber, time.Month(monthNumber), 1, 0, 0, 0, 0, time.UTC)
		strategy := r.URL.Query().Get("strategy")
		if strategy == "" {
			strategy = service.DefaultStrategy()
		}

		logger.WithFields(log.Fields{
			"month":    targetMonth.Format("2006-01"),
			"strategy": strategy,
		}).Info("dashboard: computando métricas")

		metrics, err := service.DashboardMetrics(targetMonth, strategy)
		if err != nil {
			logger.WithError(err).WithFields(log.Fields{
				"month":    targetMonth.Format("2006-01"),
				"strategy": strategy,
			}).Error("dashboard: erro ao computar métricas")

			apiErrors.WriteError(w, apiErrors.ErrMalformedDate, err.Error(), nil)
			return
		}

		writeDashboardResponse(w, logger, &domain.DashboardSnapshot{
			Month:       targetMonth.Format("2006-01"),
			Strategy:    strategy,
			Metrics:     roundPercentages(metrics),
			GeneratedAt: time.Now(),
		})
	})
}

// GetStaleDeals lista os negócios ativos sem atividade recente
func GetStaleDeals(service forecasting.Forecaster) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		staleDeals, err := service.StaleDeals()
		if err != nil {
			logger.WithError(err).Error("stale-deals: erro ao listar negócios parados")
			apiErrors.WriteError(w, apiErrors.ErrMalformedDate, err.Error(), nil)
			return
		}

		logger.WithField("stale_deals", len(staleDeals)).Info("stale-deals: listagem concluída")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(staleDeals); err != nil {
			logger.WithError(err).Error("stale-deals: erro ao codificar resposta")
		}
	})
}

func writeDashboardResponse(w http.ResponseWriter, logger log.Logger, snapshot *domain.DashboardSnapshot) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(snapshot); err != nil {
		logger.WithError(err).Error("dashboard: erro ao codificar resposta")
	}
}

// roundPercentages arredonda as métricas percentuais para exibição. O motor
// não arredonda nada; isso é responsabilidade da borda de apresentação.
func roundPercentages(metrics *domain.DashboardMetrics) *domain.DashboardMetrics {
	rounded := *metrics

	rounded.MAPE = utils.RoundWithTwoDecimalPlace(metrics.MAPE)
	rounded.HygieneScore = utils.RoundWithTwoDecimalPlace(metrics.HygieneScore)
	rounded.FreshnessScore = utils.RoundWithTwoDecimalPlace(metrics.FreshnessScore)
	rounded.WinRate = utils.RoundWithTwoDecimalPlace(metrics.WinRate)
	rounded.MoMGrowth = utils.RoundWithTwoDecimalPlace(metrics.MoMGrowth)

	return &rounded
}
