package source

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"path"
	"time"

	"asset-ledger/core/storage"

	"github.com/cenkalti/backoff/v4"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Source fetches and normalizes one external sheet.
type Source interface {
	Fetch(ctx context.Context, sourceID string) (*Result, error)
}

// ObjectSource reads sheets exported as CSV objects from a bucket.
type ObjectSource struct {
	client        storage.Client
	bucket        string
	prefix        string
	schema        Schema
	opts          Options
	attempts      int
	retryInterval time.Duration
	logger        *zap.Logger
}

// NewObjectSource creates a source reading <prefix>/<id>.csv from bucket.
func NewObjectSource(client storage.Client, bucket string, cfg Config, schema Schema, logger *zap.Logger) *ObjectSource {
	attempts := cfg.FetchAttempts
	if attempts <= 0 {
		attempts = 1
	}
	return &ObjectSource{
		client:        client,
		bucket:        bucket,
		prefix:        cfg.Prefix,
		schema:        schema,
		opts:          cfg.Options(),
		attempts:      attempts,
		retryInterval: 500 * time.Millisecond,
		logger:        logger,
	}
}

// WithRetryInterval overrides the initial backoff interval.
func (s *ObjectSource) WithRetryInterval(d time.Duration) *ObjectSource {
	s.retryInterval = d
	return s
}

// ObjectName returns the object key backing sourceID.
func (s *ObjectSource) ObjectName(sourceID string) string {
	return path.Join(s.prefix, sourceID+".csv")
}

// Fetch downloads and normalizes the sheet. Transport failures are retried with
// exponential backoff until the attempts run out or ctx ends; the final failure
// wraps ErrSourceUnavailable.
func (s *ObjectSource) Fetch(ctx context.Context, sourceID string) (*Result, error) {
	name := s.ObjectName(sourceID)

	var table [][]string
	operation := func() error {
		reader, err := s.client.GetObject(ctx, s.bucket, name, minio.GetObjectOptions{})
		if err != nil {
			return err
		}
		defer reader.Close()

		r := csv.NewReader(reader)
		r.FieldsPerRecord = -1
		r.LazyQuotes = true
		rows, err := r.ReadAll()
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				return backoff.Permanent(err)
			}
			return err
		}
		table = rows
		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = s.retryInterval
	b.MaxInterval = 10 * s.retryInterval

	notify := func(err error, wait time.Duration) {
		s.logger.Warn("Source fetch failed, retrying",
			zap.String("source", sourceID),
			zap.String("object", name),
			zap.Duration("wait", wait),
			zap.Error(err))
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(b, uint64(s.attempts-1)), ctx)
	if err := backoff.RetryNotify(operation, policy, notify); err != nil {
		return nil, fmt.Errorf("%w: %s/%s: %v", ErrSourceUnavailable, s.bucket, name, err)
	}

	result, err := Normalize(ctx, table, s.schema, s.opts)
	if err != nil {
		return nil, fmt.Errorf("normalize %s: %w", sourceID, err)
	}

	s.logger.Debug("Source fetched",
		zap.String("source", sourceID),
		zap.Int("rows", result.Total),
		zap.Int("records", len(result.Records)),
		zap.Int("malformed", result.Malformed))
	return result, nil
}

// BestEffort wraps a Source whose failures must not propagate: a failed fetch is
// logged and turned into an empty result carrying a warning.
type BestEffort struct {
	inner  Source
	logger *zap.Logger
}

// NewBestEffort wraps inner.
func NewBestEffort(inner Source, logger *zap.Logger) *BestEffort {
	return &BestEffort{inner: inner, logger: logger}
}

// Fetch never returns an error.
func (b *BestEffort) Fetch(ctx context.Context, sourceID string) (*Result, error) {
	result, err := b.inner.Fetch(ctx, sourceID)
	if err != nil {
		b.logger.Warn("Best-effort source unavailable",
			zap.String("source", sourceID),
			zap.Error(err))
		return &Result{Warning: fmt.Sprintf("source %s unavailable: %v", sourceID, err)}, nil
	}
	return result, nil
}
