package booking

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/atelierkoba/site-api/internal/contact"
)

// HTTPSubmitter posts payloads to the contact endpoint. Non-2xx responses
// are not errors at this level: the decoded Result carries the server's
// error string and the form surfaces it verbatim.
type HTTPSubmitter struct {
	client *http.Client
	url    string
}

// NewHTTPSubmitter targets the contact endpoint under baseURL. A nil
// client uses http.DefaultClient, relying on the transport's defaults for
// timeouts.
func NewHTTPSubmitter(baseURL string, client *http.Client) *HTTPSubmitter {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPSubmitter{
		client: client,
		url:    strings.TrimRight(baseURL, "/") + "/api/contact",
	}
}

// Submit sends one payload and decodes the two-shape result.
func (s *HTTPSubmitter) Submit(ctx context.Context, p contact.Payload) (contact.Result, error) {
	body, err := json.Marshal(p)
	if err != nil {
		return contact.Result{}, fmt.Errorf("booking: encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return contact.Result{}, fmt.Errorf("booking: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return contact.Result{}, fmt.Errorf("booking: post contact: %w", err)
	}
	defer resp.Body.Close()

	var res contact.Result
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return contact.Result{}, fmt.Errorf("booking: decode response: %w", err)
	}
	return res, nil
}

var _ Submitter = (*HTTPSubmitter)(nil)
