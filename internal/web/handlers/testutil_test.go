package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kozaktomas/slideshow-builder/internal/config"
)

// referenceCatalog is the small mixed-orientation catalog used across
// the handler tests.
const referenceCatalog = "4\nH 2 a b\nV 1 c\nV 1 c\nH 1 a\n"

// testConfig creates a config with embedded policy defaults.
func testConfig() *config.Config {
	cfg := config.Load()
	cfg.Engine.Ranking = cfg.Policies.Ranking.Default
	cfg.Engine.Sequencing = cfg.Policies.Sequencing.Default
	return cfg
}

// requestWithChiParams creates a request with chi URL parameters.
func requestWithChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for key, value := range params {
		rctx.URLParams.Add(key, value)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}
