package push

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"giramae/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
)

var ErrMissingPlatformApplication = errors.New("missing SNS_PLATFORM_APPLICATION_ARN")

type snsAPI interface {
	CreatePlatformEndpoint(ctx context.Context, in *sns.CreatePlatformEndpointInput, optFns ...func(*sns.Options)) (*sns.CreatePlatformEndpointOutput, error)
	Publish(ctx context.Context, in *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// SNSPublisher registers browser push tokens as SNS platform endpoints and publishes
// notification payloads to them.
type SNSPublisher struct {
	client         snsAPI
	platformAppArn string
}

var _ interfaces.IPushPublisher = (*SNSPublisher)(nil)

func NewSNSPublisher(client *sns.Client, platformAppArn string) (*SNSPublisher, error) {
	if platformAppArn == "" {
		return nil, ErrMissingPlatformApplication
	}
	return &SNSPublisher{client: client, platformAppArn: platformAppArn}, nil
}

func (p *SNSPublisher) CreateEndpoint(ctx context.Context, deviceToken string) (string, error) {
	out, err := p.client.CreatePlatformEndpoint(ctx, &sns.CreatePlatformEndpointInput{
		PlatformApplicationArn: aws.String(p.platformAppArn),
		Token:                  aws.String(deviceToken),
	})
	if err != nil {
		return "", err
	}
	endpoint := aws.ToString(out.EndpointArn)
	if endpoint == "" {
		return "", errors.New("sns returned empty endpoint arn")
	}
	return endpoint, nil
}

// Publish wraps the payload for the GCM platform, which is what web push endpoints
// registered through Firebase use.
func (p *SNSPublisher) Publish(ctx context.Context, endpoint string, payload []byte) error {
	gcm, err := json.Marshal(map[string]json.RawMessage{"data": payload})
	if err != nil {
		return err
	}
	message, err := json.Marshal(map[string]string{
		"default": string(payload),
		"GCM":     string(gcm),
	})
	if err != nil {
		return err
	}

	out, err := p.client.Publish(ctx, &sns.PublishInput{
		TargetArn:        aws.String(endpoint),
		Message:          aws.String(string(message)),
		MessageStructure: aws.String("json"),
	})
	if err != nil {
		return fmt.Errorf("sns publish: %w", err)
	}
	log.Printf("[push][sns] published message_id=%s", aws.ToString(out.MessageId))
	return nil
}

// LogPublisher stands in for SNS when push is not configured. Endpoints are derived
// from the token and deliveries are only logged.
type LogPublisher struct{}

var _ interfaces.IPushPublisher = LogPublisher{}

func (LogPublisher) CreateEndpoint(_ context.Context, deviceToken string) (string, error) {
	return "log:" + deviceToken, nil
}

func (LogPublisher) Publish(_ context.Context, endpoint string, payload []byte) error {
	log.Printf("[push][log] deliver endpoint=%s payload=%s", endpoint, payload)
	return nil
}
