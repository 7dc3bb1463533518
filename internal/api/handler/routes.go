package handler

import (
	"net/http"

	"github.com/vfg2006/food-delivery-analytics/internal/api/handler/router"
	"github.com/vfg2006/food-delivery-analytics/internal/config"
	"github.com/vfg2006/food-delivery-analytics/internal/usecases/presenting"
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

func Dashboard(refresher SnapshotRefresher, presenter presenting.Presenter, cfg config.Dashboard) []router.Route {
	return []router.Route{
		{
			Path:    "/",
			Method:  http.MethodGet,
			Handler: RedirectToTab(DefaultTab),
		},
		{
			Path:    "/tabs/:tab",
			Method:  http.MethodGet,
			Handler: DashboardTab(refresher, presenter, cfg),
		},
		{
			Path:    "/refresh",
			Method:  http.MethodPost,
			Handler: TriggerRefresh(refresher),
		},
	}
}
