// internal/notify/email_test.go
package notify

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	stderrors "sow-engine/internal/common/errors"
	"sow-engine/internal/common/logger"
	"sow-engine/internal/models"
)

// Both the production adapter and the test recorder must satisfy Mailer.
var (
	_ Mailer = (*sesMailer)(nil)
	_ Mailer = (*recordingMailer)(nil)
)

type recordingMailer struct {
	inputs []*ses.SendEmailInput
	err    error
}

func (m *recordingMailer) SendEmail(ctx context.Context, input *ses.SendEmailInput) (*ses.SendEmailOutput, error) {
	m.inputs = append(m.inputs, input)
	if m.err != nil {
		return nil, m.err
	}
	return &ses.SendEmailOutput{}, nil
}

func testNotifyProject() *models.Project {
	return &models.Project{
		ID:          "p-1",
		ProjectName: "Riverside Distribution Center",
		Address:     "4200 Commerce Blvd, Orlando, FL 32810",
	}
}

func TestSendGenerationComplete(t *testing.T) {
	mailer := &recordingMailer{}
	notifier := NewNotifier(mailer, "sow@example.com", logger.NewTestLogger(t))

	err := notifier.SendGenerationComplete(context.Background(), "pm@example.com",
		testNotifyProject(), "a1b2c3d4", "/api/download/pdf/sow_a1b2c3d4.pdf")
	require.NoError(t, err)

	require.Len(t, mailer.inputs, 1)
	input := mailer.inputs[0]
	assert.Equal(t, "sow@example.com", *input.Source)
	assert.Equal(t, []string{"pm@example.com"}, input.Destination.ToAddresses)
	assert.Contains(t, *input.Message.Subject.Data, "Riverside Distribution Center")
	assert.Contains(t, *input.Message.Body.Text.Data, "/api/download/pdf/sow_a1b2c3d4.pdf")
}

func TestSendGenerationFailed(t *testing.T) {
	mailer := &recordingMailer{}
	notifier := NewNotifier(mailer, "sow@example.com", logger.NewTestLogger(t))

	err := notifier.SendGenerationFailed(context.Background(), "pm@example.com",
		testNotifyProject(), "a1b2c3d4", "takeoff validation failed")
	require.NoError(t, err)

	require.Len(t, mailer.inputs, 1)
	assert.Contains(t, *mailer.inputs[0].Message.Subject.Data, "generation failed")
	assert.Contains(t, *mailer.inputs[0].Message.Body.Text.Data, "takeoff validation failed")
}

func TestSend_MailerError(t *testing.T) {
	mailer := &recordingMailer{err: assert.AnError}
	notifier := NewNotifier(mailer, "sow@example.com", logger.NewTestLogger(t))

	err := notifier.SendGenerationComplete(context.Background(), "pm@example.com",
		testNotifyProject(), "a1b2c3d4", "/api/download/pdf/sow_a1b2c3d4.pdf")
	require.Error(t, err)

	var stdErr *stderrors.StandardError
	require.ErrorAs(t, err, &stdErr)
	assert.Equal(t, stderrors.ErrCodeNotificationSendFailed, stdErr.Code)
}
