package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/handyman-marketplace/internal/logger"
)

var ErrMissingBucket = errors.New("missing S3_BUCKET")

type S3Options struct {
	Bucket          string
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	PublicBaseURL   string
}

type putObjectAPI interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3 stores job photos in a bucket. A custom endpoint (MinIO, R2, ...)
// switches to path-style addressing.
type S3 struct {
	client  putObjectAPI
	bucket  string
	baseURL string
	log     *zap.Logger
}

func NewS3(opts S3Options, log *zap.Logger) (*S3, error) {
	if opts.Bucket == "" {
		return nil, ErrMissingBucket
	}
	if opts.Region == "" {
		opts.Region = "us-east-1"
	}

	s3Opts := s3.Options{
		Region: opts.Region,
	}
	if opts.AccessKeyID != "" {
		s3Opts.Credentials = aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(opts.AccessKeyID, opts.SecretAccessKey, ""),
		)
	}
	if opts.Endpoint != "" {
		s3Opts.BaseEndpoint = aws.String(opts.Endpoint)
		s3Opts.UsePathStyle = true
	}

	return newS3(s3.New(s3Opts), opts, log), nil
}

func newS3(client putObjectAPI, opts S3Options, log *zap.Logger) *S3 {
	return &S3{
		client:  client,
		bucket:  opts.Bucket,
		baseURL: publicBaseURL(opts),
		log:     logger.OrNop(log).Named("storage.s3"),
	}
}

func (s *S3) Put(ctx context.Context, key string, body []byte, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		s.log.Error("put object failed", zap.String("key", key), zap.Error(err))
		return "", fmt.Errorf("s3 put %s: %w", key, err)
	}

	s.log.Debug("object stored", zap.String("key", key), zap.Int("bytes", len(body)))
	return s.baseURL + "/" + key, nil
}

func publicBaseURL(opts S3Options) string {
	switch {
	case opts.PublicBaseURL != "":
		return strings.TrimRight(opts.PublicBaseURL, "/")
	case opts.Endpoint != "":
		return strings.TrimRight(opts.Endpoint, "/") + "/" + opts.Bucket
	default:
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", opts.Bucket, opts.Region)
	}
}
