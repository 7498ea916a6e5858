package notify

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"

	appconfig "github.com/atelierkoba/site-api/internal/config"
	"github.com/atelierkoba/site-api/pkg/logging"
)

// NewFromConfig picks the email provider from configuration: SendGrid when
// an API key is present, SES when explicitly enabled, otherwise nil. A nil
// sender switches the submission pipeline into log-only development mode.
func NewFromConfig(ctx context.Context, cfg *appconfig.Config, logger *logging.Logger) (EmailSender, error) {
	if logger == nil {
		logger = logging.Default()
	}

	if cfg.SendGridAPIKey != "" {
		logger.Info("email provider: sendgrid", "from", cfg.ContactFromEmail)
		return NewSendGridSender(SendGridConfig{
			APIKey:    cfg.SendGridAPIKey,
			FromEmail: cfg.ContactFromEmail,
			FromName:  cfg.ContactFromName,
		}, logger), nil
	}

	if cfg.SESFromEnabled {
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWSRegion))
		if err != nil {
			return nil, fmt.Errorf("notify: load AWS config: %w", err)
		}
		logger.Info("email provider: ses", "region", cfg.AWSRegion, "from", cfg.ContactFromEmail)
		return NewSESSender(sesv2.NewFromConfig(awsCfg), SESConfig{
			FromEmail: cfg.ContactFromEmail,
			FromName:  cfg.ContactFromName,
		}, logger), nil
	}

	logger.Warn("no email provider configured, submissions will be logged only")
	return nil, nil
}
