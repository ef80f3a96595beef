// internal/notify/email.go

// Package notify sends workflow completion emails over SES. Notification
// failures never fail a workflow; the orchestrator logs and moves on.
package notify

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"

	"sow-engine/internal/common/errors"
	"sow-engine/internal/common/logger"
	"sow-engine/internal/models"
)

// Mailer is the email surface the orchestrator depends on. The SES client
// satisfies it in production; tests substitute a recorder.
type Mailer interface {
	SendEmail(ctx context.Context, input *ses.SendEmailInput) (*ses.SendEmailOutput, error)
}

// Notifier formats and sends generation outcome emails.
type Notifier struct {
	mailer    Mailer
	fromEmail string
	logger    logger.Logger
}

// sesMailer adapts the SDK client's variadic SendEmail to the Mailer
// interface.
type sesMailer struct {
	client *ses.Client
}

func (s *sesMailer) SendEmail(ctx context.Context, input *ses.SendEmailInput) (*ses.SendEmailOutput, error) {
	return s.client.SendEmail(ctx, input)
}

// NewSESMailer builds an SES-backed mailer for the given region.
func NewSESMailer(ctx context.Context, region string) (Mailer, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, err
	}
	return &sesMailer{client: ses.NewFromConfig(cfg)}, nil
}

func NewNotifier(mailer Mailer, fromEmail string, log logger.Logger) *Notifier {
	return &Notifier{mailer: mailer, fromEmail: fromEmail, logger: log}
}

// SendGenerationComplete emails the requester that their document is ready.
func (n *Notifier) SendGenerationComplete(ctx context.Context, to string, project *models.Project, workflowID, downloadURL string) error {
	subject := fmt.Sprintf("Scope of Work ready: %s", project.ProjectName)
	body := fmt.Sprintf(
		"The scope of work document for %s (%s) has been generated.\n\nWorkflow: %s\nDownload: %s\n",
		project.ProjectName, project.Address, workflowID, downloadURL,
	)
	return n.send(ctx, to, subject, body, workflowID)
}

// SendGenerationFailed emails the requester that generation did not finish.
func (n *Notifier) SendGenerationFailed(ctx context.Context, to string, project *models.Project, workflowID, reason string) error {
	subject := fmt.Sprintf("Scope of Work generation failed: %s", project.ProjectName)
	body := fmt.Sprintf(
		"Generation for %s did not complete.\n\nWorkflow: %s\nReason: %s\n",
		project.ProjectName, workflowID, reason,
	)
	return n.send(ctx, to, subject, body, workflowID)
}

func (n *Notifier) send(ctx context.Context, to, subject, body, workflowID string) error {
	input := &ses.SendEmailInput{
		Source: aws.String(n.fromEmail),
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(subject)},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(body)},
			},
		},
	}

	if _, err := n.mailer.SendEmail(ctx, input); err != nil {
		n.logger.WithError(err).Warn("Completion email failed to send", map[string]interface{}{
			"workflow_id": workflowID,
			"to":          to,
		})
		return errors.NewNotificationSendFailedError("email", err)
	}

	n.logger.Info("Completion email sent", map[string]interface{}{
		"workflow_id": workflowID,
		"to":          to,
	})
	return nil
}
