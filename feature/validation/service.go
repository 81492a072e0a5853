package validation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"asset-ledger/core/reconcile"
	"asset-ledger/core/source"
	"asset-ledger/feature/inventory/models"
	"asset-ledger/feature/inventory/store"

	"go.uber.org/zap"
)

// Provenance tells where a key was found.
type Provenance string

const (
	SourcePrimary   Provenance = "primary"
	SourceSecondary Provenance = "secondary"
	SourceUnknown   Provenance = "unknown"
)

// ErrNoKeys is returned when a call names no usable key.
var ErrNoKeys = errors.New("no item keys given")

// Result classifies one key.
type Result struct {
	Key        string             `json:"key"`
	Found      bool               `json:"found"`
	Source     Provenance         `json:"source"`
	Attributes *models.Attributes `json:"attributes,omitempty"`
}

// Summary counts the outcome of a lookup.
type Summary struct {
	Total    int `json:"total"`
	Found    int `json:"found"`
	NotFound int `json:"not_found"`
}

// Report is the outcome of Validate. Warning is set when the secondary
// source could not be consulted.
type Report struct {
	Results []Result `json:"results"`
	Summary Summary  `json:"summary"`
	Warning string   `json:"warning,omitempty"`
}

// ItemResult is one entry of a primary-store lookup.
type ItemResult struct {
	Key   string       `json:"key"`
	Found bool         `json:"found"`
	Item  *models.Item `json:"item,omitempty"`
}

// SearchResult is the outcome of FindByKeys.
type SearchResult struct {
	Results []ItemResult `json:"results"`
	Summary Summary      `json:"summary"`
}

// Config selects the secondary inventory.
type Config struct {
	SecondaryID string
}

// Service classifies keys against the primary store and the cached
// secondary inventory.
type Service struct {
	cfg       Config
	store     store.Store
	secondary source.Source
	cache     *reconcile.Cache
	logger    *zap.Logger
}

// NewService creates a validation service. secondary may be nil, in which
// case keys missing from the store are reported as unknown.
func NewService(cfg Config, st store.Store, secondary source.Source, cache *reconcile.Cache, logger *zap.Logger) *Service {
	return &Service{
		cfg:       cfg,
		store:     st,
		secondary: secondary,
		cache:     cache,
		logger:    logger,
	}
}

// FindByKey returns the stored item.
func (s *Service) FindByKey(ctx context.Context, key string) (*models.Item, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, ErrNoKeys
	}
	return s.store.Items().FindByKey(ctx, key)
}

// FindByKeys looks up keys in the primary store with one query.
func (s *Service) FindByKeys(ctx context.Context, keys []string) (*SearchResult, error) {
	keys = uniqueKeys(keys)
	if len(keys) == 0 {
		return nil, ErrNoKeys
	}

	items, err := s.store.Items().FindByKeys(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("failed to load items: %w", err)
	}

	out := &SearchResult{Results: make([]ItemResult, 0, len(keys))}
	for _, key := range keys {
		r := ItemResult{Key: key}
		if item, ok := items[key]; ok {
			r.Found = true
			r.Item = &item
		}
		out.Results = append(out.Results, r)
	}
	out.Summary = summarize(len(keys), len(items))
	return out, nil
}

// Validate classifies every unique key as primary, secondary or unknown, in
// first-occurrence order. A secondary failure degrades the remaining keys to
// unknown and sets the report warning.
func (s *Service) Validate(ctx context.Context, keys []string) (*Report, error) {
	keys = uniqueKeys(keys)
	if len(keys) == 0 {
		return nil, ErrNoKeys
	}

	items, err := s.store.Items().FindByKeys(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("failed to load items: %w", err)
	}

	report := &Report{Results: make([]Result, len(keys))}
	var remaining []int
	for i, key := range keys {
		if item, ok := items[key]; ok {
			attrs := item.Attributes()
			report.Results[i] = Result{Key: key, Found: true, Source: SourcePrimary, Attributes: &attrs}
			continue
		}
		report.Results[i] = Result{Key: key, Source: SourceUnknown}
		remaining = append(remaining, i)
	}

	if len(remaining) > 0 {
		secondary, err := s.secondarySnapshot(ctx)
		if err != nil {
			s.logger.Warn("Secondary inventory unavailable, reporting unknown",
				zap.Int("keys", len(remaining)),
				zap.Error(err),
			)
			report.Warning = err.Error()
		}
		for _, i := range remaining {
			record, ok := secondary[keys[i]]
			if !ok {
				continue
			}
			attrs := attributesOf(record)
			report.Results[i] = Result{Key: keys[i], Found: true, Source: SourceSecondary, Attributes: &attrs}
		}
	}

	found := 0
	for _, r := range report.Results {
		if r.Found {
			found++
		}
	}
	report.Summary = summarize(len(keys), found)
	return report, nil
}

// InvalidateSecondary drops the cached secondary inventory.
func (s *Service) InvalidateSecondary(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Invalidate(ctx, s.cacheKey())
}

func (s *Service) cacheKey() string {
	return "secondary:" + s.cfg.SecondaryID
}

// secondarySnapshot returns the secondary inventory by key, from the cache
// when live. Degraded fetches are returned as errors so they are not cached.
func (s *Service) secondarySnapshot(ctx context.Context) (map[string]source.Record, error) {
	if s.secondary == nil {
		return nil, errors.New("secondary inventory not configured")
	}

	load := func(ctx context.Context) ([]byte, error) {
		result, err := s.secondary.Fetch(ctx, s.cfg.SecondaryID)
		if err != nil {
			return nil, err
		}
		if result.Warning != "" {
			return nil, errors.New(result.Warning)
		}
		return json.Marshal(result.Records)
	}

	var (
		data []byte
		err  error
	)
	if s.cache != nil {
		data, err = s.cache.GetOrLoad(ctx, s.cacheKey(), load)
	} else {
		data, err = load(ctx)
	}
	if err != nil {
		return nil, err
	}

	var records []source.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to decode secondary inventory: %w", err)
	}

	byKey := make(map[string]source.Record, len(records))
	for _, r := range records {
		if _, ok := byKey[r.Key]; !ok {
			byKey[r.Key] = r
		}
	}
	return byKey, nil
}

func attributesOf(r source.Record) models.Attributes {
	return models.Attributes{
		Key:        r.Key,
		Model:      r.Model,
		Capacity:   r.Capacity,
		Color:      r.Color,
		SKU:        r.SKU,
		Grade:      r.Grade,
		LockStatus: r.LockStatus,
		Location:   r.Location,
	}
}

func summarize(total, found int) Summary {
	return Summary{Total: total, Found: found, NotFound: total - found}
}

// uniqueKeys trims keys and drops blanks and repeats, keeping first-seen order.
func uniqueKeys(keys []string) []string {
	seen := make(map[string]struct{}, len(keys))
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}
