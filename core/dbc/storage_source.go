package dbc

import (
	"context"
	"fmt"
	"io"
	"strings"

	"chr-catalog/core/storage"

	"github.com/goccy/go-json"
	"github.com/minio/minio-go/v7"
)

// StorageSource reads dataset tables from JSON exports in an object storage
// bucket. Each table lives at <prefix>/<Table>.json as a flat array of rows.
type StorageSource struct {
	client storage.Client
	bucket string
	prefix string
}

// NewStorageSource creates a source reading from the given bucket and prefix.
func NewStorageSource(client storage.Client, bucket, prefix string) *StorageSource {
	return &StorageSource{
		client: client,
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
	}
}

// Name implements Source.
func (s *StorageSource) Name() string {
	return SourceStorage
}

// ObjectName returns the bucket key of a table export.
func (s *StorageSource) ObjectName(table string) string {
	if s.prefix == "" {
		return table + ".json"
	}
	return s.prefix + "/" + table + ".json"
}

// HasTable implements Source. A missing export object means the table is not
// part of this dataset.
func (s *StorageSource) HasTable(ctx context.Context, table string) (bool, error) {
	_, err := s.client.StatObject(ctx, s.bucket, s.ObjectName(table), minio.StatObjectOptions{})
	if err != nil {
		if storage.IsNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat table export %s: %w", table, err)
	}
	return true, nil
}

// Load implements Source.
func (s *StorageSource) Load(ctx context.Context, table string, out any) error {
	obj, err := s.client.GetObject(ctx, s.bucket, s.ObjectName(table), minio.GetObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to fetch table export %s: %w", table, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return fmt.Errorf("failed to read table export %s: %w", table, err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode table export %s: %w", table, err)
	}
	return nil
}
