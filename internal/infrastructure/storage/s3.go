package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"careergps/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

const putAttempts = 3

var ErrNotConfigured = errors.New("storage not configured")

// ObjectPutter is the part of *s3.Client the archive needs.
type ObjectPutter interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// ResumeArchive stores uploaded resume files in an S3-compatible bucket.
type ResumeArchive struct {
	client ObjectPutter
	bucket string
	prefix string
	now    func() time.Time
	wait   func(attempt int) time.Duration
}

func NewResumeArchive(ctx context.Context, cfg config.StorageConfig) (*ResumeArchive, error) {
	if !cfg.Enabled() {
		return nil, ErrNotConfigured
	}

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if ep := strings.TrimSpace(cfg.Endpoint); ep != "" {
			o.BaseEndpoint = aws.String(ep)
			o.UsePathStyle = true
		}
	})

	return NewResumeArchiveWithClient(client, cfg.Bucket, cfg.Prefix), nil
}

func NewResumeArchiveWithClient(client ObjectPutter, bucket, prefix string) *ResumeArchive {
	return &ResumeArchive{
		client: client,
		bucket: bucket,
		prefix: prefix,
		now:    time.Now,
		wait: func(attempt int) time.Duration {
			return time.Duration(500*(attempt+1)) * time.Millisecond
		},
	}
}

// Put uploads data under <prefix>/<yyyy/mm/dd>/<uuid><ext> and returns the key.
func (a *ResumeArchive) Put(ctx context.Context, filename, contentType string, data []byte) (string, error) {
	key := a.key(filename)

	_, err := retry(ctx, putAttempts, a.wait, func() (*s3.PutObjectOutput, error) {
		return a.client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:        aws.String(a.bucket),
			Key:           aws.String(key),
			Body:          bytes.NewReader(data),
			ContentType:   aws.String(contentType),
			ContentLength: aws.Int64(int64(len(data))),
		})
	})
	if err != nil {
		return "", fmt.Errorf("put %s: %w", key, err)
	}
	return key, nil
}

func (a *ResumeArchive) key(filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	day := a.now().UTC().Format("2006/01/02")
	return path.Join(a.prefix, day, uuid.NewString()+ext)
}

func retry[T any](ctx context.Context, attempts int, wait func(int) time.Duration, fn func() (T, error)) (T, error) {
	var zero T
	var lastErr error

	for i := 0; i < attempts; i++ {
		result, err := fn()
		if err == nil {
			return result, nil
		}
		lastErr = err
		if i == attempts-1 {
			break
		}

		t := time.NewTimer(wait(i))
		select {
		case <-ctx.Done():
			t.Stop()
			return zero, ctx.Err()
		case <-t.C:
		}
	}
	return zero, fmt.Errorf("after %d attempts: %w", attempts, lastErr)
}
