package handler

import (
	"net/http"

	"github.com/vfg2006/parking-revenue-api/internal/api/handler/router"
	"github.com/vfg2006/parking-revenue-api/internal/usecases/authenticating"
	"github.com/vfg2006/parking-revenue-api/internal/usecases/revenue"
	"github.com/vfg2006/parking-revenue-api/pkg/middleware"
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

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Revenue(service revenue.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/revenue/locations",
			Method:      http.MethodGet,
			Handler:     GetLocations(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/revenue/details/days",
			Method:      http.MethodGet,
			Handler:     GetDailyDetails(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/revenue/details/years",
			Method:      http.MethodGet,
			Handler:     GetYearlyDetails(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/revenue/trends/months",
			Method:      http.MethodGet,
			Handler:     GetMonthlyTrends(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/revenue/trends/months/bylocations",
			Method:      http.MethodGet,
			Handler:     GetMonthlyTrendsByLocation(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/revenue/trends/years",
			Method:      http.MethodGet,
			Handler:     GetYearlyTrends(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/revenue/realtime",
			Method:      http.MethodGet,
			Handler:     GetRealtime(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/revenue/realtime/bylocations",
			Method:      http.MethodGet,
			Handler:     GetRealtimeByLocation(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/revenue/summary-cards",
			Method:      http.MethodGet,
			Handler:     GetSummaryCards(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
