package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// s3API is the slice of the S3 client used by S3Store, kept narrow so tests
// can stub it.
type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Store writes objects to an S3-compatible bucket (MinIO in development).
type S3Store struct {
	client   s3API
	bucket   string
	endpoint string
}

// S3Options carries the settings needed to reach the bucket.
type S3Options struct {
	AccessKey    string
	SecretKey    string
	Bucket       string
	Region       string
	BaseEndpoint string
}

// loadAWSConfig is a seam for testing NewS3Store without real credentials.
var loadAWSConfig = awsconfig.LoadDefaultConfig

// NewS3Store builds a store over an S3-compatible endpoint using static
// credentials.
func NewS3Store(ctx context.Context, opts S3Options) (*S3Store, error) {
	cfg, err := loadAWSConfig(ctx,
		awsconfig.WithRegion(opts.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			opts.AccessKey,
			opts.SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("s3 config error: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(opts.BaseEndpoint)
		o.UsePathStyle = true
	})

	return &S3Store{
		client:   client,
		bucket:   opts.Bucket,
		endpoint: strings.TrimRight(opts.BaseEndpoint, "/"),
	}, nil
}

func (s *S3Store) Save(ctx context.Context, area Area, name string, r io.Reader) (string, error) {
	key := path.Join(string(area), name)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: &s.bucket,
		Key:    &key,
		Body:   r,
	})
	if err != nil {
		return "", fmt.Errorf("s3 put error: %w", err)
	}
	return key, nil
}

func (s *S3Store) URL(key string) string {
	return fmt.Sprintf("%s/%s/%s", s.endpoint, s.bucket, key)
}
