package uploader

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// putObjectAPI is the slice of *s3.Client used here; tests swap it.
type putObjectAPI interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Uploader puts images into an S3-compatible bucket.
type S3Uploader struct {
	client    putObjectAPI
	bucket    string
	publicURL string
	now       func() time.Time
}

// NewS3Uploader builds an uploader from s. Static credentials are used when
// both keys are set, the default AWS chain otherwise.
func NewS3Uploader(ctx context.Context, s Settings) (*S3Uploader, error) {
	if s.S3Bucket == "" {
		return nil, errors.New("s3 bucket is required")
	}

	opts := []func(*config.LoadOptions) error{config.WithRegion(s.S3Region)}
	if s.S3AccessKey != "" && s.S3SecretKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(s.S3AccessKey, s.S3SecretKey, ""),
		))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if s.S3BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(s.S3BaseEndpoint)
			o.UsePathStyle = true
		}
	})

	return newS3Uploader(client, s), nil
}

func newS3Uploader(client putObjectAPI, s Settings) *S3Uploader {
	public := s.S3PublicBaseURL
	if public == "" {
		public = strings.TrimRight(s.S3BaseEndpoint, "/") + "/" + s.S3Bucket
	}
	return &S3Uploader{
		client:    client,
		bucket:    s.S3Bucket,
		publicURL: strings.TrimRight(public, "/"),
		now:       time.Now,
	}
}

func (u *S3Uploader) storageKey(img Image) string {
	d := u.now().UTC()
	return fmt.Sprintf("avatars/%d/%02d/%s%s", d.Year(), d.Month(), uuid.NewString(), img.Ext())
}

func (u *S3Uploader) Upload(ctx context.Context, img Image) (string, error) {
	key := u.storageKey(img)

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(u.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(img.Data),
		ContentType:   aws.String(img.ContentType),
		ContentLength: aws.Int64(int64(len(img.Data))),
	})
	if err != nil {
		return "", wrap(fmt.Errorf("failed to upload to S3: %w", err))
	}

	return u.publicURL + "/" + key, nil
}
