// contact-lambda serves the contact submission endpoint behind API
// Gateway, running the same pipeline as the long-lived server.
package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"

	appconfig "github.com/atelierkoba/site-api/internal/config"
	"github.com/atelierkoba/site-api/internal/contact"
	"github.com/atelierkoba/site-api/internal/notify"
	"github.com/atelierkoba/site-api/pkg/logging"
)

type app struct {
	svc    *contact.Service
	logger *logging.Logger
}

func main() {
	cfg := appconfig.Load()
	logger := logging.New(cfg.LogLevel)

	sender, err := notify.NewFromConfig(context.Background(), cfg, logger)
	if err != nil {
		logger.Error("failed to configure email provider", "error", err)
		panic(err)
	}

	a := &app{
		svc: contact.NewService(sender, contact.ServiceConfig{
			FromEmail: cfg.ContactFromEmail,
			FromName:  cfg.ContactFromName,
			ToEmail:   cfg.ContactToEmail,
		}, nil, logger),
		logger: logger,
	}

	lambda.Start(a.handle)
}

func (a *app) handle(ctx context.Context, evt events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	method := strings.ToUpper(strings.TrimSpace(evt.RequestContext.HTTP.Method))
	path := strings.TrimSpace(evt.RawPath)
	if path == "" {
		path = strings.TrimSpace(evt.RequestContext.HTTP.Path)
	}

	if path == "/health" && method == http.MethodGet {
		return jsonResponse(http.StatusOK, map[string]string{"status": "ok"}), nil
	}

	if path != "/api/contact" {
		return jsonResponse(http.StatusNotFound, map[string]string{"error": "not found"}), nil
	}
	if method != http.MethodPost {
		return jsonResponse(http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"}), nil
	}

	body := []byte(evt.Body)
	if evt.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(evt.Body)
		if err != nil {
			return jsonResponse(http.StatusBadRequest, contact.Result{Error: "Invalid request format"}), nil
		}
		body = decoded
	}

	status, res := a.svc.Process(ctx, body)
	return jsonResponse(status, res), nil
}

func jsonResponse(status int, v any) events.APIGatewayV2HTTPResponse {
	raw, _ := json.Marshal(v)
	return events.APIGatewayV2HTTPResponse{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(raw),
	}
}
