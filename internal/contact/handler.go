package contact

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/atelierkoba/site-api/pkg/logging"
)

// Handler serves POST /api/contact.
type Handler struct {
	svc    *Service
	logger *logging.Logger
}

// NewHandler creates the contact endpoint handler.
func NewHandler(svc *Service, logger *logging.Logger) *Handler {
	if svc == nil {
		panic("contact: service required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{svc: svc, logger: logger}
}

// Submit handles one submission request. All pipeline errors are already
// converted to the two-shape contract inside the service; the recover
// here is the last line so nothing propagates to the transport layer.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	defer func() {
		if rec := recover(); rec != nil {
			h.logger.Error("contact handler panic", "panic", rec)
			writeJSON(w, http.StatusInternalServerError, failed(catalog(LangEnglish).sendFailed))
		}
	}()

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 64<<10))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, failed(catalog(LangEnglish).invalidRequest))
		return
	}

	status, res := h.svc.Process(r.Context(), body)
	writeJSON(w, status, res)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
