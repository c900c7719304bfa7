package handler

import (
	"net/http"

	"github.com/vfg2006/ticket-reconciler-api/internal/api/handler/router"
	"github.com/vfg2006/ticket-reconciler-api/internal/config"
	"github.com/vfg2006/ticket-reconciler-api/internal/usecases/aggregating"
	"github.com/vfg2006/ticket-reconciler-api/internal/usecases/reconciling"
	"github.com/vfg2006/ticket-reconciler-api/pkg/middleware"
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

func Metrics(service aggregating.CachedAggregator, cfg *config.Config) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/owners/:id/metrics",
			Method:  http.MethodGet,
			Handler: GetOwnerMetrics(service, cfg),
		},
	}
}

func Validation(service reconciling.Reconciler) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/owners/:id/metrics/validation",
			Method:  http.MethodGet,
			Handler: GetValidationReport(service),
		},
		{
			Path:    "/v1/owners/:id/stores/:store_id/sequence-gaps",
			Method:  http.MethodGet,
			Handler: GetSequenceGaps(service),
		},
	}
}

func CronJobs(services CronJobServices, cfg *config.Config) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly(cfg.Admin.APITokens)},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly(cfg.Admin.APITokens)},
		},
	}
}
