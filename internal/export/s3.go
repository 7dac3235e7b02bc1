package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/Paintersrp/noted/internal/config"
)

var ErrNoBucket = errors.New("export.bucket is not configured")

// Uploader is the part of manager.Uploader used here.
type Uploader interface {
	Upload(ctx context.Context, input *s3.PutObjectInput, opts ...func(*manager.Uploader)) (*manager.UploadOutput, error)
}

// NewS3Uploader builds an uploader from the export block. Static keys win over
// the default AWS credential chain; a custom endpoint switches to path-style
// addressing for MinIO and friends.
func NewS3Uploader(ctx context.Context, cfg config.ExportConfig) (*manager.Uploader, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if cfg.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Region))
	}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})
	return manager.NewUploader(client), nil
}

// ObjectKey joins the configured prefix and the file name.
func ObjectKey(prefix, name string) string {
	prefix = strings.Trim(prefix, "/")
	if prefix == "" {
		return name
	}
	return path.Join(prefix, name)
}

// Upload stores body under key and returns the object location.
func Upload(ctx context.Context, up Uploader, cfg config.ExportConfig, key string, body []byte, f Format) (string, error) {
	if cfg.Bucket == "" {
		return "", ErrNoBucket
	}

	out, err := up.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(cfg.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(f.ContentType()),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s to %s: %w", key, cfg.Bucket, err)
	}

	if out.Location != "" {
		return out.Location, nil
	}
	return "s3://" + cfg.Bucket + "/" + key, nil
}
