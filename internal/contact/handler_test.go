package contact

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelierkoba/site-api/pkg/logging"
)

func postContact(t *testing.T, h *Handler, body string) (*httptest.ResponseRecorder, Result) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	h.Submit(w, req)

	var res Result
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	return w, res
}

func TestSubmit_Success(t *testing.T) {
	h := NewHandler(devService(), logging.New("error"))

	w, res := postContact(t, h, `{"name":"Alice","email":"alice@example.com","message":"Hello","language":"en"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.True(t, res.Success)
	assert.Equal(t, "Your message has been sent successfully.", res.Message)
}

func TestSubmit_SuccessShapeOmitsError(t *testing.T) {
	h := NewHandler(devService(), logging.New("error"))

	w, _ := postContact(t, h, `{"name":"Alice","email":"alice@example.com","message":"Hello"}`)

	assert.NotContains(t, w.Body.String(), "error")
}

func TestSubmit_InvalidEmail(t *testing.T) {
	h := NewHandler(devService(), logging.New("error"))

	w, res := postContact(t, h, `{"name":"Alice","email":"bad-email","message":"Hello","language":"en"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid email format", res.Error)
	assert.False(t, res.Success)
}

func TestSubmit_NonJSONBody(t *testing.T) {
	h := NewHandler(devService(), logging.New("error"))

	w, res := postContact(t, h, "plain text, definitely not json")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid request format", res.Error)
}

func TestSubmit_BookingVariant(t *testing.T) {
	h := NewHandler(devService(), logging.New("error"))

	w, res := postContact(t, h, `{"name":"Alice","email":"alice@example.com","message":"Hello","date":"2025-03-10T00:00:00.000Z","time":"14:00"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Your booking request has been sent successfully.", res.Message)
}

func TestSubmit_FailureShapeOmitsSuccess(t *testing.T) {
	h := NewHandler(devService(), logging.New("error"))

	w, _ := postContact(t, h, `{"name":"","email":"","message":""}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NotContains(t, w.Body.String(), "success")
}

func TestSubmit_OversizedBodyRejected(t *testing.T) {
	h := NewHandler(devService(), logging.New("error"))

	big := strings.Repeat("a", 65<<10)
	w, res := postContact(t, h, `{"name":"A","email":"a@b.co","message":"`+big+`"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid request format", res.Error)
}
