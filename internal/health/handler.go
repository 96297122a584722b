package health

import (
	"encoding/json"
	"net/http"
)

// Handler serves /health and /ping backed by a Checker.
type Handler struct {
	checker *Checker
}

// NewHandler wires the HTTP surface.
func NewHandler(checker *Checker) *Handler {
	return &Handler{checker: checker}
}

// Register mounts the endpoints on mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/health", h.handleHealth)
	mux.HandleFunc("/ping", h.handlePing)
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	doc := h.checker.Check(r.Context())

	status := http.StatusOK
	if doc.Status != StatusHealthy {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, doc)
}

// handlePing always answers 200 with a static body; it reports that this
// service is up, not that Solr is.
func (h *Handler) handlePing(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
