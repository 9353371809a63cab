package app

import (
	"net/http"

	"github.com/voxellogic/circuitsim/internal/server/router"
)

func (a *appServer) routes() []*router.Route {
	return []*router.Route{
		{
			Name:        "health",
			Method:      http.MethodGet,
			Pattern:     "/health",
			HandlerFunc: a.HealthHandler,
		},
		{
			Name:        "api.components.create",
			Method:      http.MethodPost,
			Pattern:     "/api/components",
			HandlerFunc: a.CreateComponent,
		},
		{
			Name:        "api.components.list",
			Method:      http.MethodGet,
			Pattern:     "/api/components",
			HandlerFunc: a.ListComponents,
		},
		{
			Name:        "api.components.get",
			Method:      http.MethodGet,
			Pattern:     "/api/components/:id",
			HandlerFunc: a.GetComponent,
		},
		{
			Name:        "api.wire",
			Method:      http.MethodPost,
			Pattern:     "/api/wire",
			HandlerFunc: a.CreateWire,
		},
		{
			Name:        "api.step",
			Method:      http.MethodPost,
			Pattern:     "/api/step",
			HandlerFunc: a.Step,
		},
	}
}
