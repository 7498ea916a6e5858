package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/atelierkoba/site-api/internal/contact"
	"github.com/atelierkoba/site-api/pkg/logging"
)

func testRouter() http.Handler {
	logger := logging.New("error")
	svc := contact.NewService(nil, contact.ServiceConfig{
		FromEmail: "site@atelierkoba.fr",
		FromName:  "Atelier Koba",
		ToEmail:   "hello@atelierkoba.fr",
	}, nil, logger)

	return New(&Config{
		Logger:         logger,
		ContactHandler: contact.NewHandler(svc, logger),
	})
}

func TestHealthRoute(t *testing.T) {
	w := httptest.NewRecorder()
	testRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"ok"`)
}

func TestContactRouteWired(t *testing.T) {
	body := `{"name":"Alice","email":"alice@example.com","message":"Hello","language":"en"}`
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	testRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Your message has been sent successfully.")
}

func TestContactRouteRejectsGet(t *testing.T) {
	w := httptest.NewRecorder()
	testRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/contact", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestUnknownRouteIs404(t *testing.T) {
	w := httptest.NewRecorder()
	testRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}
