package ses

import (
	"context"
	"errors"
	"testing"

	"travelorders/internal/core/ports"

	awsses "github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSESAPI struct {
	mock.Mock
}

func (m *MockSESAPI) SendEmail(
	ctx context.Context, params *awsses.SendEmailInput, optFns ...func(*awsses.Options),
) (*awsses.SendEmailOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*awsses.SendEmailOutput), args.Error(1)
}

func TestMailer_Send_BuildsSESInput(t *testing.T) {
	ctx := t.Context()
	api := new(MockSESAPI)

	var captured *awsses.SendEmailInput
	api.On("SendEmail", ctx, mock.AnythingOfType("*ses.SendEmailInput")).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(*awsses.SendEmailInput)
		}).
		Return(&awsses.SendEmailOutput{}, nil).
		Once()

	mailer := NewMailerWithClient(api, "no-reply@example.com")
	err := mailer.Send(ctx, ports.Email{
		To:      "dana@example.com",
		Subject: "Travel order approved",
		Lines: []string{
			"The status of your travel order to Lisbon changed from pending to approved.",
			"Destination: Lisbon",
		},
	})

	require.NoError(t, err)
	require.NotNil(t, captured)
	assert.Equal(t, "no-reply@example.com", *captured.Source)
	assert.Equal(t, []string{"dana@example.com"}, captured.Destination.ToAddresses)
	assert.Equal(t, "Travel order approved", *captured.Message.Subject.Data)
	assert.Contains(t, *captured.Message.Body.Text.Data, "Destination: Lisbon")
	api.AssertExpectations(t)
}

func TestMailer_Send_WrapsClientError(t *testing.T) {
	ctx := t.Context()
	api := new(MockSESAPI)
	api.On("SendEmail", ctx, mock.Anything).
		Return(nil, errors.New("throttled")).
		Once()

	mailer := NewMailerWithClient(api, "no-reply@example.com")
	err := mailer.Send(ctx, ports.Email{To: "dana@example.com", Subject: "New travel order"})

	require.ErrorContains(t, err, "dana@example.com")
	require.ErrorContains(t, err, "throttled")
}
