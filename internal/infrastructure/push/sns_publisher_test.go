package push

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/tidwall/gjson"
)

type fakeSNS struct {
	created   *sns.CreatePlatformEndpointInput
	published *sns.PublishInput
	err       error
}

func (f *fakeSNS) CreatePlatformEndpoint(_ context.Context, in *sns.CreatePlatformEndpointInput, _ ...func(*sns.Options)) (*sns.CreatePlatformEndpointOutput, error) {
	f.created = in
	if f.err != nil {
		return nil, f.err
	}
	return &sns.CreatePlatformEndpointOutput{EndpointArn: aws.String("arn:aws:sns:endpoint/1")}, nil
}

func (f *fakeSNS) Publish(_ context.Context, in *sns.PublishInput, _ ...func(*sns.Options)) (*sns.PublishOutput, error) {
	f.published = in
	if f.err != nil {
		return nil, f.err
	}
	return &sns.PublishOutput{MessageId: aws.String("m1")}, nil
}

func TestSNSPublisher_CreateEndpoint(t *testing.T) {
	fake := &fakeSNS{}
	p := &SNSPublisher{client: fake, platformAppArn: "arn:app"}

	endpoint, err := p.CreateEndpoint(context.Background(), "tok")
	if err != nil || endpoint != "arn:aws:sns:endpoint/1" {
		t.Fatalf("unexpected endpoint %q err=%v", endpoint, err)
	}
	if aws.ToString(fake.created.PlatformApplicationArn) != "arn:app" || aws.ToString(fake.created.Token) != "tok" {
		t.Fatalf("unexpected input %+v", fake.created)
	}
}

func TestSNSPublisher_Publish(t *testing.T) {
	fake := &fakeSNS{}
	p := &SNSPublisher{client: fake, platformAppArn: "arn:app"}

	if err := p.Publish(context.Background(), "arn:endpoint", []byte(`{"title":"Oi","data":{"url":"/missoes"}}`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	msg := aws.ToString(fake.published.Message)
	if aws.ToString(fake.published.MessageStructure) != "json" {
		t.Fatalf("expected json message structure")
	}
	if gjson.Get(msg, "default").String() == "" {
		t.Fatalf("missing default message: %s", msg)
	}
	if got := gjson.Get(gjson.Get(msg, "GCM").String(), "data.data.url").String(); got != "/missoes" {
		t.Fatalf("unexpected GCM payload url %q in %s", got, msg)
	}
}

func TestSNSPublisher_Errors(t *testing.T) {
	if _, err := NewSNSPublisher(nil, ""); !errors.Is(err, ErrMissingPlatformApplication) {
		t.Fatalf("expected ErrMissingPlatformApplication, got %v", err)
	}

	fake := &fakeSNS{err: errors.New("endpoint disabled")}
	p := &SNSPublisher{client: fake, platformAppArn: "arn:app"}
	if err := p.Publish(context.Background(), "arn:endpoint", []byte(`{}`)); err == nil {
		t.Fatalf("expected error")
	}
}
