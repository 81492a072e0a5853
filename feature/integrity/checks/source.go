package checks

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"asset-ledger/core/storage"

	"github.com/minio/minio-go/v7"
)

// ObjectStatus describes one expected source object.
type ObjectStatus struct {
	Name         string `json:"name"`
	Present      bool   `json:"present"`
	Size         int64  `json:"size,omitempty"`
	LastModified string `json:"last_modified,omitempty"`
	Error        string `json:"error,omitempty"`
}

// SourceReport lists the expected source objects and what else sits under
// their prefix.
type SourceReport struct {
	Bucket    string         `json:"bucket"`
	Matched   bool           `json:"matched"`
	Objects   []ObjectStatus `json:"objects"`
	Available []string       `json:"available"`
}

// CheckSource verifies that every expected object exists in the bucket.
func CheckSource(ctx context.Context, client storage.Client, bucket string, objects []string) (*SourceReport, error) {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %s does not exist", bucket)
	}

	report := &SourceReport{
		Bucket:    bucket,
		Matched:   true,
		Objects:   make([]ObjectStatus, 0, len(objects)),
		Available: []string{},
	}

	prefixes := map[string]struct{}{}
	for _, name := range objects {
		status := ObjectStatus{Name: name}
		info, err := client.StatObject(ctx, bucket, name, minio.StatObjectOptions{})
		switch {
		case err == nil:
			status.Present = true
			status.Size = info.Size
			if !info.LastModified.IsZero() {
				status.LastModified = info.LastModified.UTC().Format(time.RFC3339)
			}
		case minio.ToErrorResponse(err).Code == "NoSuchKey":
			report.Matched = false
		default:
			status.Error = err.Error()
			report.Matched = false
		}
		report.Objects = append(report.Objects, status)

		if dir := path.Dir(name); dir != "." {
			prefixes[dir+"/"] = struct{}{}
		}
	}

	for prefix := range prefixes {
		opts := minio.ListObjectsOptions{Prefix: prefix, Recursive: false}
		for obj := range client.ListObjects(ctx, bucket, opts) {
			if obj.Err != nil {
				return nil, fmt.Errorf("failed to list %s: %w", prefix, obj.Err)
			}
			if strings.HasSuffix(obj.Key, ".csv") {
				report.Available = append(report.Available, obj.Key)
			}
		}
	}

	return report, nil
}
