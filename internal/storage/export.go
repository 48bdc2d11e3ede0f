// Package storage uploads standalone map exports to S3-compatible storage.
package storage

import (
	"context"
	"fmt"
	"time"

	"campusmap/internal/keys"
)

// Uploader is the part of S3Service the exporter needs.
type Uploader interface {
	EnsureBucket(ctx context.Context, bucket, region string) error
	PutHTML(ctx context.Context, bucket, key string, data []byte) error
}

// UploadExport stores page twice: under a timestamped key and under the
// title's latest key. It returns the keys written.
func UploadExport(ctx context.Context, up Uploader, bucket, title string, page []byte, at time.Time) ([]string, error) {
	if err := up.EnsureBucket(ctx, bucket, ""); err != nil {
		return nil, err
	}
	written := make([]string, 0, 2)
	for _, key := range []string{keys.Export(title, at), keys.Latest(title)} {
		if err := up.PutHTML(ctx, bucket, key, page); err != nil {
			return written, fmt.Errorf("upload export: %w", err)
		}
		written = append(written, key)
	}
	return written, nil
}
