package consent

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/atelierkoba/site-api/pkg/logging"
)

// Handler serves the consent read/write endpoints.
type Handler struct {
	store  *Store
	logger *logging.Logger
}

// NewHandler creates the consent endpoint handler.
func NewHandler(store *Store, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{store: store, logger: logger}
}

// Get returns the visitor's current consent record.
// GET /api/consent/{visitorID}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	visitorID := chi.URLParam(r, "visitorID")
	if visitorID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing visitor id"})
		return
	}

	rec, err := h.store.Get(r.Context(), visitorID)
	if err == ErrNotFound {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no consent recorded"})
		return
	}
	if err != nil {
		h.logger.Error("consent lookup failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "consent lookup failed"})
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// Set records the visitor's choice.
// POST /api/consent/{visitorID} with {"value": "accepted"|"declined"}
func (h *Handler) Set(w http.ResponseWriter, r *http.Request) {
	visitorID := chi.URLParam(r, "visitorID")
	if visitorID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing visitor id"})
		return
	}

	var body struct {
		Value string `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Value == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid consent value"})
		return
	}

	rec, err := h.store.Set(r.Context(), visitorID, body.Value)
	if err != nil {
		h.logger.Error("consent save failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "consent save failed"})
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
