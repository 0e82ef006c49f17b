package publish

import (
	"context"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// PutObjectAPI is the part of the S3 client the publisher uses.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// ClientConfig configures NewClient.
type ClientConfig struct {
	// Region is the bucket region.
	Region string

	// Endpoint overrides the S3 endpoint, e.g. "http://localhost:9000"
	// for MinIO. Path-style addressing is used when it is set.
	Endpoint string
}

// NewClient creates an S3 client whose credentials come from
// AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY and AWS_SESSION_TOKEN.
func NewClient(cfg ClientConfig) *s3.Client {
	opts := s3.Options{
		Region:      cfg.Region,
		Credentials: aws.NewCredentialsCache(EnvCredentials()),
	}
	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
		opts.UsePathStyle = true
	}
	return s3.New(opts)
}

// EnvCredentials reads static credentials from the environment on every
// retrieval.
func EnvCredentials() aws.CredentialsProvider {
	return aws.CredentialsProviderFunc(func(ctx context.Context) (aws.Credentials, error) {
		creds := aws.Credentials{
			AccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
			SecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
			SessionToken:    os.Getenv("AWS_SESSION_TOKEN"),
			Source:          "Environment",
		}
		if creds.AccessKeyID == "" || creds.SecretAccessKey == "" {
			return aws.Credentials{}, errMissingCredentials
		}
		return creds, nil
	})
}
