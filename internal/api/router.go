package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimid "github.com/go-chi/chi/v5/middleware"

	"github.com/HakimZ78/devhakim-api/internal/api/handlers"
	mw "github.com/HakimZ78/devhakim-api/internal/api/middleware"
)

// CRUDHandler is the per-resource handler surface mounted by the router.
type CRUDHandler interface {
	List(http.ResponseWriter, *http.Request)
	Create(http.ResponseWriter, *http.Request)
	Update(http.ResponseWriter, *http.Request)
	Delete(http.ResponseWriter, *http.Request)
	Reorder(http.ResponseWriter, *http.Request)
}

// ResourceRoute binds one collection path under /api/v1 to its handler.
type ResourceRoute struct {
	Path    string
	Handler CRUDHandler
}

type Dependencies struct {
	HMACSecret  []byte
	AuthHandler *handlers.AuthHandler
	Resources   []ResourceRoute
}

func NewRouter(dep Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Use(mw.RequestID)
	r.Use(mw.Recovery)
	r.Use(mw.Logging)
	r.Use(mw.CORS)
	r.Use(mw.RateLimit(10, 20))
	r.Use(chimid.Compress(5))

	hh := handlers.NewHealthHandler()
	r.Get("/healthz", hh.Liveness)
	r.Get("/readyz", hh.Readiness)

	r.Route("/api/v1", func(api chi.Router) {
		api.Post("/auth/login", dep.AuthHandler.Login)

		// Public reads
		for _, res := range dep.Resources {
			api.Get("/"+res.Path, res.Handler.List)
		}

		// Owner-only mutations
		api.Group(func(protected chi.Router) {
			protected.Use(mw.Auth(dep.HMACSecret))
			for _, res := range dep.Resources {
				protected.Post("/"+res.Path, res.Handler.Create)
				protected.Put("/"+res.Path, res.Handler.Update)
				protected.Delete("/"+res.Path, res.Handler.Delete)
				protected.Post("/"+res.Path+"/reorder", res.Handler.Reorder)
			}
		})
	})

	return r
}
