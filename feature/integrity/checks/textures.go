package checks

import (
	"context"
	"fmt"
	"path"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"chr-catalog/core/storage"

	"github.com/minio/minio-go/v7"
	"golang.org/x/sync/errgroup"
)

// TexturePrefix is the bucket folder holding the exported texture files.
const TexturePrefix = "textures/"

// statConcurrency limits parallel stat calls during the verification pass.
const statConcurrency = 8

// TextureReport summarizes a texture presence check against storage.
type TextureReport struct {
	Prefix        string `json:"prefix"`
	TotalExpected int    `json:"total_expected"`
	TotalFound    int    `json:"total_found"`
	Missing       []int  `json:"missing"`
	DurationMs    int64  `json:"duration_ms"`
}

// CheckTextures verifies that every expected texture file exists under the
// prefix. A single recursive listing builds the presence set; candidate
// misses are then re-checked with direct stat calls because listings can
// trail recent uploads.
func CheckTextures(ctx context.Context, client storage.Client, bucket, prefix string, expected []int) (*TextureReport, error) {
	start := time.Now()

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %s does not exist", bucket)
	}

	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}

	present := make(map[int]struct{})
	opts := minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}
	for obj := range client.ListObjects(ctx, bucket, opts) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list textures: %w", obj.Err)
		}
		if id, ok := parseTextureKey(obj.Key, prefix); ok {
			present[id] = struct{}{}
		}
	}

	var candidates []int
	for _, id := range expected {
		if _, ok := present[id]; !ok {
			candidates = append(candidates, id)
		}
	}

	missing, err := verifyMissing(ctx, client, bucket, prefix, candidates)
	if err != nil {
		return nil, err
	}

	return &TextureReport{
		Prefix:        prefix,
		TotalExpected: len(expected),
		TotalFound:    len(expected) - len(missing),
		Missing:       missing,
		DurationMs:    time.Since(start).Milliseconds(),
	}, nil
}

// verifyMissing confirms candidate misses one by one. Any storage failure
// other than "not found" aborts the check.
func verifyMissing(ctx context.Context, client storage.Client, bucket, prefix string, candidates []int) ([]int, error) {
	missing := []int{}
	if len(candidates) == 0 {
		return missing, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(statConcurrency)

	var mu sync.Mutex
	for _, id := range candidates {
		g.Go(func() error {
			_, err := client.StatObject(ctx, bucket, ObjectName(prefix, id), minio.StatObjectOptions{})
			if err == nil {
				return nil
			}
			if storage.IsNotFound(err) {
				mu.Lock()
				missing = append(missing, id)
				mu.Unlock()
				return nil
			}
			return fmt.Errorf("failed to stat texture %d: %w", id, err)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Ints(missing)
	return missing, nil
}

// ObjectName builds the object key for a texture file ID.
func ObjectName(prefix string, fileDataID int) string {
	return prefix + strconv.Itoa(fileDataID) + ".blp"
}

// parseTextureKey extracts the file ID from keys like "textures/123.blp".
// Nested or unrelated objects are ignored.
func parseTextureKey(key, prefix string) (int, bool) {
	name := strings.TrimPrefix(key, prefix)
	if name == "" || strings.Contains(name, "/") {
		return 0, false
	}
	name = strings.TrimSuffix(name, path.Ext(name))
	id, err := strconv.Atoi(name)
	if err != nil {
		return 0, false
	}
	return id, true
}
