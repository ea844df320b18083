// Package ses implements the outbound mail port on Amazon SES.
package ses

import (
	"context"
	"fmt"
	"strings"

	"travelorders/internal/core/ports"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

// sesAPI is the slice of the SES client the mailer needs. Mocked in tests.
type sesAPI interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

// Mailer sends notification emails through Amazon SES.
type Mailer struct {
	client sesAPI
	from   string
}

// NewMailer loads the default AWS configuration for the given region and
// builds a Mailer that sends from the given verified address.
func NewMailer(ctx context.Context, region string, from string) (*Mailer, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}
	return &Mailer{client: ses.NewFromConfig(cfg), from: from}, nil
}

// NewMailerWithClient wraps an existing SES client. Used by tests.
func NewMailerWithClient(client sesAPI, from string) *Mailer {
	return &Mailer{client: client, from: from}
}

// Send delivers one email. The body is the message lines joined as plain
// text; the recipient's mail client handles the rest.
func (m *Mailer) Send(ctx context.Context, email ports.Email) error {
	body := strings.Join(email.Lines, "\n")

	_, err := m.client.SendEmail(ctx, &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{email.To},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(email.Subject)},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(body)},
			},
		},
		Source: aws.String(m.from),
	})
	if err != nil {
		return fmt.Errorf("send email to %s: %w", email.To, err)
	}
	return nil
}
