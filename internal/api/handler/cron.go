package handler

import (
	"net/http"

	"github.com/salesdeck/pipeline-manager-api/internal/scheduler"
	"github.com/salesdeck/pipeline-manager-api/pkg/apiErrors"
	"github.com/salesdeck/pipeline-manager-api/pkg/log"
)

// RunDashboardSnapshot dispara manualmente a atualização do snapshot
func RunDashboardSnapshot(snapshots *scheduler.DashboardSnapshotService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("cron: disparo manual do snapshot do dashboard")

		if err := snapshots.Refresh(); err != nil {
			logger.WithError(err).Error("cron: erro na atualização manual do snapshot")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(snapshots.Status()); err != nil {
			logger.WithError(err).Error("cron: erro ao codificar resposta")
		}
	})
}

// GetCronStatus retorna o estado do agendador de snapshots
func GetCronStatus(snapshots *scheduler.DashboardSnapshotService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(snapshots.Status()); err != nil {
			logger.WithError(err).Error("cron: erro ao codificar resposta")
		}
	})
}
