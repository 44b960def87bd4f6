package mailer

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

// sendTimeout bounds the outbound SES call so a slow collaborator cannot
// hold a request for the full server timeout.
const sendTimeout = 10 * time.Second

// SES sends messages through AWS SESv2. One client is constructed at
// process start and reused across requests.
type SES struct {
	client  *sesv2.Client
	timeout time.Duration
}

// NewSES builds an SES mailer using the SDK's default credential and
// region resolution chain.
func NewSES(ctx context.Context) (*SES, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	return &SES{
		client:  sesv2.NewFromConfig(cfg),
		timeout: sendTimeout,
	}, nil
}

// Send delivers a plain-text email. A single failed attempt is terminal
// for the request; retrying is the caller's decision.
func (s *SES) Send(ctx context.Context, msg *Message) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(msg.From),
		Destination: &types.Destination{
			ToAddresses: msg.To,
		},
		ReplyToAddresses: msg.ReplyTo,
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{
					Data:    aws.String(msg.Subject),
					Charset: aws.String("UTF-8"),
				},
				Body: &types.Body{
					Text: &types.Content{
						Data:    aws.String(msg.Body),
						Charset: aws.String("UTF-8"),
					},
				},
			},
		},
	}

	if _, err := s.client.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
