package frameworks

import (
	"net/http"

	"github.com/Kepler-Interactive/CompAI/internal/middleware"
	"github.com/go-chi/chi/v5"
	"golang.org/x/time/rate"
)

// RouteStore is what the router needs from persistence.
type RouteStore interface {
	Store
	VisibleLister
}

// SetupRoutes mounts under /api/frameworks. seedLimiter may be nil.
func SetupRoutes(store RouteStore, seedLimiter *rate.Limiter) http.Handler {
	r := chi.NewRouter()
	seeder := NewSeeder(store)

	r.Get("/", ListHandler(store))
	r.With(middleware.RateLimit(seedLimiter)).Get("/seed", SeedHandler(seeder))

	return r
}
