// Package storage generates presigned S3 upload URLs so the admin
// frontend can push images straight to the bucket without the API
// ever proxying file bytes.
package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/Austionian/fishy-edge/internal/config"
)

// Presigner hands out time-limited PUT URLs for the image bucket.
type Presigner interface {
	PresignPut(ctx context.Context, key string) (string, error)
}

type s3Presigner struct {
	client *s3.PresignClient
	bucket string
	ttl    time.Duration
}

// NewS3Presigner builds a presigner for the configured bucket. Static
// credentials from the config take precedence; otherwise the default
// AWS credential chain applies, which covers instance roles.
func NewS3Presigner(ctx context.Context, cfg config.S3Config) (Presigner, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}

	return &s3Presigner{
		client: s3.NewPresignClient(s3.NewFromConfig(awsCfg)),
		bucket: cfg.Bucket,
		ttl:    cfg.PresignTTL,
	}, nil
}

// PresignPut returns a URL that allows one PUT of the given object key
// until the TTL expires.
func (p *s3Presigner) PresignPut(ctx context.Context, key string) (string, error) {
	req, err := p.client.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(p.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(p.ttl))
	if err != nil {
		return "", fmt.Errorf("presigning put for %q: %w", key, err)
	}
	return req.URL, nil
}
