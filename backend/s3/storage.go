package s3

import (
	"context"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/mwantia/walker/data"
)

func (sb *S3Backend) ListFiles(ctx context.Context, path string) ([]string, error) {
	return sb.children(ctx, path, false)
}

func (sb *S3Backend) ListDirectories(ctx context.Context, path string) ([]string, error) {
	return sb.children(ctx, path, true)
}

func (sb *S3Backend) Attributes(ctx context.Context, path string) (data.Attributes, error) {
	info, err := sb.FileInfo(ctx, path)
	if err != nil {
		return 0, err
	}

	return info.Attributes(), nil
}

func (sb *S3Backend) FileInfo(ctx context.Context, path string) (*data.FileInfo, error) {
	prefix, err := toPrefix(path)
	if err != nil {
		return nil, err
	}

	if prefix == "" {
		return data.NewFileInfo("/", data.ModeDir|0755, 0, time.Time{}), nil
	}

	key := strings.TrimSuffix(prefix, "/")
	objInfo, err := sb.client.StatObject(ctx, sb.bucketName, key, minio.StatObjectOptions{})
	if err == nil {
		return data.NewFileInfo(toPath(key), 0644, objInfo.Size, objInfo.LastModified), nil
	}
	if minio.ToErrorResponse(err).Code != "NoSuchKey" {
		return nil, mapError(err)
	}

	isDir, err := sb.isDirectory(ctx, prefix)
	if err != nil {
		return nil, err
	}
	if !isDir {
		return nil, data.ErrNotExist
	}

	return data.NewFileInfo(toPath(key), data.ModeDir|0755, 0, time.Time{}), nil
}

// isDirectory reports whether a directory marker or any object exists below prefix.
func (sb *S3Backend) isDirectory(ctx context.Context, prefix string) (bool, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	objectsCh := sb.client.ListObjects(ctx, sb.bucketName, minio.ListObjectsOptions{
		Prefix:  prefix,
		MaxKeys: 1,
	})

	for object := range objectsCh {
		if object.Err != nil {
			return false, mapError(object.Err)
		}
		return true, nil
	}

	return false, nil
}

// children lists one level below path using the "/" delimiter.
func (sb *S3Backend) children(ctx context.Context, path string, dirs bool) ([]string, error) {
	prefix, err := toPrefix(path)
	if err != nil {
		return nil, err
	}

	objectsCh := sb.client.ListObjects(ctx, sb.bucketName, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: false,
	})

	found := false
	paths := make([]string, 0)
	for object := range objectsCh {
		if object.Err != nil {
			return nil, mapError(object.Err)
		}

		found = true

		// Skip the directory marker itself
		if object.Key == prefix {
			continue
		}

		if strings.HasSuffix(object.Key, "/") == dirs {
			paths = append(paths, toPath(object.Key))
		}
	}

	if !found && prefix != "" {
		return nil, sb.missing(ctx, prefix)
	}

	return paths, nil
}

// missing distinguishes a plain object from a path that does not exist at all.
func (sb *S3Backend) missing(ctx context.Context, prefix string) error {
	key := strings.TrimSuffix(prefix, "/")
	if _, err := sb.client.StatObject(ctx, sb.bucketName, key, minio.StatObjectOptions{}); err == nil {
		return data.ErrNotDirectory
	}

	return data.ErrNotExist
}
