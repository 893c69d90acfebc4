// Package blob selects a concrete blob storage backend.
package blob

import (
	"fmt"

	"github.com/fino-labs/fino-cli/internal/adapters/driven/blob/local"
	"github.com/fino-labs/fino-cli/internal/adapters/driven/blob/s3"
	"github.com/fino-labs/fino-cli/internal/core/domain"
	"github.com/fino-labs/fino-cli/internal/core/ports/driven"
)

// Backend names accepted in configuration.
const (
	BackendLocal = "local"
	BackendS3    = "s3"
)

// Config selects and configures a storage backend.
type Config struct {
	Backend string

	// Dir is the root directory for the local backend.
	Dir string

	// S3 settings, used when Backend is "s3".
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Region    string
	Bucket    string
	Prefix    string
}

// NewStore builds the blob store named by cfg.Backend.
func NewStore(cfg Config) (driven.BlobStore, error) {
	switch cfg.Backend {
	case BackendLocal:
		return local.NewStore(cfg.Dir)
	case BackendS3:
		return s3.NewStore(s3.Config{
			Endpoint:  cfg.Endpoint,
			AccessKey: cfg.AccessKey,
			SecretKey: cfg.SecretKey,
			UseSSL:    cfg.UseSSL,
			Region:    cfg.Region,
			Bucket:    cfg.Bucket,
			Prefix:    cfg.Prefix,
		})
	default:
		return nil, fmt.Errorf("%w: storage backend %q", domain.ErrUnsupportedType, cfg.Backend)
	}
}
