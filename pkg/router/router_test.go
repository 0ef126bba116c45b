package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shashiranjanraj/laundro/pkg/router"
)

func okHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestNamedRoutePaths(t *testing.T) {
	r := router.New()
	r.Get("/ping", "ping", okHandler)

	api := r.Group("/api")
	api.Post("/login", "auth.login", okHandler)

	admin := api.Group("/admin")
	admin.Patch("/orders/{id}/status", "admin.orders.status", okHandler)

	cases := map[string]string{
		"ping":                "/ping",
		"auth.login":          "/api/login",
		"admin.orders.status": "/api/admin/orders/{id}/status",
	}
	for name, want := range cases {
		got, ok := r.Path(name)
		if !ok {
			t.Errorf("Path(%q) not registered", name)
			continue
		}
		if got != want {
			t.Errorf("Path(%q) = %q, want %q", name, got, want)
		}
	}

	if _, ok := r.Path("nope"); ok {
		t.Error("expected unknown route name to report false")
	}
}

func TestParamReadsPathValue(t *testing.T) {
	r := router.New()
	r.Get("/orders/{id}", "orders.show", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(router.Param(req, "id")))
	})

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders/ORD007", nil))

	if rec.Body.String() != "ORD007" {
		t.Errorf("param = %q, want ORD007", rec.Body.String())
	}
}

func TestGroupMiddlewareApplies(t *testing.T) {
	stamp := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			w.Header().Set("X-Stamped", "yes")
			next.ServeHTTP(w, req)
		})
	}

	r := router.New()
	g := r.Group("/api", stamp)
	g.Get("/ping", "ping", okHandler)
	r.Get("/bare", "bare", okHandler)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/ping", nil))
	if rec.Header().Get("X-Stamped") != "yes" {
		t.Error("group middleware did not run")
	}

	rec = httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/bare", nil))
	if rec.Header().Get("X-Stamped") != "" {
		t.Error("group middleware leaked onto an ungrouped route")
	}
}
