package app

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := LoadConfig()

	if cfg.HTTPAddr != "0.0.0.0:8888" {
		t.Fatalf("HTTPAddr = %q", cfg.HTTPAddr)
	}
	if cfg.SolrURL != "http://solr:8983" {
		t.Fatalf("SolrURL = %q", cfg.SolrURL)
	}
	if cfg.Customer != "default" {
		t.Fatalf("Customer = %q", cfg.Customer)
	}
	if cfg.SolrTimeout != 5*time.Second {
		t.Fatalf("SolrTimeout = %v", cfg.SolrTimeout)
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("SOLR_URL", "http://localhost:8983")
	t.Setenv("CUSTOMER_NAME", "acme")
	t.Setenv("SOLROPS_HTTP_ADDR", ":9999")
	t.Setenv("SOLROPS_SOLR_TIMEOUT", "2s")

	cfg := LoadConfig()
	if cfg.SolrURL != "http://localhost:8983" || cfg.Customer != "acme" {
		t.Fatalf("env overrides not applied: %+v", cfg)
	}
	if cfg.HTTPAddr != ":9999" || cfg.SolrTimeout != 2*time.Second {
		t.Fatalf("env overrides not applied: %+v", cfg)
	}
}

func TestEnvHelpers_BadValuesFallBack(t *testing.T) {
	t.Setenv("SOLROPS_HTTP_MAX_HEADER_BYTES", "not-a-number")
	t.Setenv("SOLROPS_SOLR_TIMEOUT", "-3s")

	cfg := LoadConfig()
	if cfg.MaxHeaderBytes != 1<<20 {
		t.Fatalf("MaxHeaderBytes = %d, want default", cfg.MaxHeaderBytes)
	}
	if cfg.SolrTimeout != 5*time.Second {
		t.Fatalf("SolrTimeout = %v, want default", cfg.SolrTimeout)
	}
}

func TestWithRequestLogging(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	h := WithRequestLogging(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}), log)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rr.Code != http.StatusTeapot {
		t.Fatalf("status = %d, want 418 passed through", rr.Code)
	}
	if id := rr.Header().Get("X-Request-Id"); len(id) != 26 {
		t.Fatalf("X-Request-Id = %q, want a 26-char ULID", id)
	}
}

func TestNewRequestID_Unique(t *testing.T) {
	a, b := newRequestID(), newRequestID()
	if a == b {
		t.Fatalf("two request IDs collided: %q", a)
	}
}
