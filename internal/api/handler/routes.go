package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/salesdeck/pipeline-manager-api/infrastructure/repository"
	"github.com/salesdeck/pipeline-manager-api/internal/api/handler/router"
	"github.com/salesdeck/pipeline-manager-api/internal/scheduler"
	"github.com/salesdeck/pipeline-manager-api/internal/usecases/forecasting"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Dashboard(service forecasting.Forecaster, snapshots *scheduler.DashboardSnapshotService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard/metrics",
			Method:  http.MethodGet,
			Handler: GetDashboardMetrics(service, snapshots),
		},
		{
			Path:    "/v1/pipeline/stale-deals",
			Method:  http.MethodGet,
			Handler: GetStaleDeals(service),
		},
	}
}

func Deals(repo repository.DealRepository) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/deals",
			Method:  http.MethodGet,
			Handler: ListDeals(repo),
		},
		{
			Path:    "/v1/deals",
			Method:  http.MethodPost,
			Handler: CreateDeal(repo),
		},
		{
			Path:    "/v1/deals/:id",
			Method:  http.MethodGet,
			Handler: GetDeal(repo),
		},
		{
			Path:    "/v1/deals/:id",
			Method:  http.MethodPut,
			Handler: UpdateDeal(repo),
		},
		{
			Path:    "/v1/deals/:id",
			Method:  http.MethodDelete,
			Handler: DeleteDeal(repo),
		},
	}
}

func Accounts(repo repository.AccountRepository) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/accounts",
			Method:  http.MethodGet,
			Handler: ListAccounts(repo),
		},
	}
}

func RevenueHistory(repo repository.RevenueRepository) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/revenue/history",
			Method:  http.MethodGet,
			Handler: ListRevenueHistory(repo),
		},
		{
			Path:    "/v1/revenue/history",
			Method:  http.MethodPost,
			Handler: UpsertRevenueHistory(repo),
		},
	}
}

func CronJobs(snapshots *scheduler.DashboardSnapshotService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/dashboard/run",
			Method:  http.MethodPost,
			Handler: RunDashboardSnapshot(snapshots),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(snapshots),
		},
	}
}
