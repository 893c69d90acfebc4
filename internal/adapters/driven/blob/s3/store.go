// Package s3 provides a BlobStore over S3-compatible object storage.
package s3

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/fino-labs/fino-cli/internal/core/domain"
	"github.com/fino-labs/fino-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.BlobStore = (*Store)(nil)

// Config holds the object storage connection settings.
type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Region    string
	Bucket    string

	// Prefix is prepended to every object key. May be empty.
	Prefix string
}

// Store persists blobs as objects in one bucket, keyed by the storage
// path under a fixed prefix.
type Store struct {
	client *minio.Client
	bucket string
	prefix string
}

// NewStore creates a MinIO-backed blob store from the Config.
func NewStore(cfg Config) (*Store, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("%w: bucket cannot be empty", domain.ErrInvalidInput)
	}
	prefix, err := normalizePrefix(cfg.Prefix)
	if err != nil {
		return nil, err
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("init minio: %w", err)
	}

	return &Store{client: client, bucket: cfg.Bucket, prefix: prefix}, nil
}

// EnsureBucket makes sure the bucket exists before use.
func (s *Store) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("check bucket %s: %w", s.bucket, err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("make bucket %s: %w", s.bucket, err)
		}
	}
	return nil
}

// Exists reports whether an object is stored at the path.
func (s *Store) Exists(ctx context.Context, path string) (bool, error) {
	key, err := s.resolveKey(path)
	if err != nil {
		return false, err
	}

	_, err = s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		resp := minio.ToErrorResponse(err)
		if resp.Code == "NoSuchKey" || resp.StatusCode == 404 {
			return false, nil
		}
		return false, fmt.Errorf("%w: stat object %s: %v", domain.ErrStorageIO, path, err)
	}
	return true, nil
}

// Save uploads the blob. An upload the backend does not acknowledge
// with an ETag is an error: absence of the acknowledgment means the
// write cannot be trusted.
func (s *Store) Save(ctx context.Context, path string, data []byte) error {
	key, err := s.resolveKey(path)
	if err != nil {
		return err
	}

	info, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/zip"})
	if err != nil {
		return fmt.Errorf("%w: put object %s: %v", domain.ErrStorageIO, path, err)
	}
	if info.ETag == "" {
		return fmt.Errorf("%w: put object %s: write not acknowledged", domain.ErrStorageIO, path)
	}
	return nil
}

// resolveKey validates the path and prepends the configured prefix.
func (s *Store) resolveKey(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("%w: empty path", domain.ErrInvalidInput)
	}
	if strings.HasPrefix(path, "/") {
		return "", fmt.Errorf("%w: %q", domain.ErrAbsolutePath, path)
	}

	var parts []string
	for _, part := range strings.Split(path, "/") {
		if part == ".." {
			return "", fmt.Errorf("%w: %q", domain.ErrPathTraversal, path)
		}
		if part != "" && part != "." {
			parts = append(parts, part)
		}
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("%w: empty path", domain.ErrInvalidInput)
	}

	key := strings.Join(parts, "/")
	if s.prefix != "" {
		key = s.prefix + "/" + key
	}
	return key, nil
}

// normalizePrefix strips surrounding slashes and rejects traversal in
// the configured prefix itself.
func normalizePrefix(prefix string) (string, error) {
	prefix = strings.Trim(prefix, "/")
	if strings.Contains(prefix, "..") {
		return "", fmt.Errorf("%w: prefix %q", domain.ErrPathTraversal, prefix)
	}
	if prefix != strings.TrimSpace(prefix) {
		return "", fmt.Errorf("%w: prefix %q has surrounding spaces", domain.ErrInvalidInput, prefix)
	}
	return prefix, nil
}
