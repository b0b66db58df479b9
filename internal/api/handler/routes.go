package handler

import (
	"net/http"

	"github.com/vfg2006/sales-reporting-api/internal/api/handler/router"
	"github.com/vfg2006/sales-reporting-api/internal/datastore"
	"github.com/vfg2006/sales-reporting-api/internal/scheduler"
	"github.com/vfg2006/sales-reporting-api/internal/usecases/aggregating"
	"github.com/vfg2006/sales-reporting-api/internal/usecases/interpreting"
	"github.com/vfg2006/sales-reporting-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Query(interpreter interpreting.Interpreter, store *datastore.Store) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/query",
			Method:  http.MethodPost,
			Handler: ProcessQuery(interpreter, store),
		},
	}
}

func Dataset(store *datastore.Store, aggregator *aggregating.Service, reloadService *scheduler.DatasetReloadService, authSecret string) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dataset",
			Method:  http.MethodGet,
			Handler: GetDatasetInfo(store),
		},
		{
			Path:    "/v1/charts/products",
			Method:  http.MethodGet,
			Handler: GetProductTotalsChart(store, aggregator),
		},
		{
			Path:        "/v1/dataset/reload",
			Method:      http.MethodPost,
			Handler:     ReloadDataset(reloadService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminAuth(authSecret)},
		},
	}
}

func CronJobs(reloadService *scheduler.DatasetReloadService, authSecret string) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(reloadService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminAuth(authSecret)},
		},
	}
}
