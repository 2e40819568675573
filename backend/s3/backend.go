package s3

import (
	"context"
	"fmt"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/mwantia/walker/data"
)

// S3Backend lists an S3 compatible bucket as a directory tree.
// Keys are split on "/" and common prefixes are reported as directories.
type S3Backend struct {
	client     *minio.Client
	bucketName string
}

func NewS3Backend(endpoint, bucketName, accessKey, secretKey string, useSsl bool) (*S3Backend, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSsl,
	})
	if err != nil {
		return nil, err
	}

	return &S3Backend{
		client:     client,
		bucketName: bucketName,
	}, nil
}

// Returns the identifier name defined for this backend
func (*S3Backend) Name() string {
	return "s3"
}

// Open verifies that the configured bucket exists.
func (sb *S3Backend) Open(ctx context.Context) error {
	exists, err := sb.client.BucketExists(ctx, sb.bucketName)
	if err != nil {
		return fmt.Errorf("%w: %w", data.ErrBackendOpenFailed, mapError(err))
	}

	if !exists {
		return fmt.Errorf("%w: bucket '%s' does not exist", data.ErrBackendOpenFailed, sb.bucketName)
	}

	return nil
}

// Close is part of the lifecycle behaviour; the client holds no open streams.
func (sb *S3Backend) Close(ctx context.Context) error {
	return nil
}

// toPrefix converts a walker path into the object prefix of its children.
func toPrefix(path string) (string, error) {
	key, err := data.CleanPath(path)
	if err != nil {
		return "", err
	}

	if key == "/" {
		return "", nil
	}

	return strings.TrimPrefix(key, "/") + "/", nil
}

// toPath converts an object key or common prefix into a walker path.
func toPath(key string) string {
	return "/" + strings.TrimSuffix(key, "/")
}

func mapError(err error) error {
	switch minio.ToErrorResponse(err).Code {
	case "NoSuchKey", "NoSuchBucket":
		return fmt.Errorf("%w: %w", data.ErrNotExist, err)
	case "AccessDenied":
		return fmt.Errorf("%w: %w", data.ErrPermission, err)
	default:
		return err
	}
}
