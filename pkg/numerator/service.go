// Package numerator provides document auto-numbering over a pluggable sequence store.
package numerator

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	core "salesdesk/internal/core/numerator"
	"salesdesk/internal/core/tx"
	"salesdesk/pkg/logger"
)

// SequenceStore advances named counters. Advance adds delta to key and returns the
// new value; a missing key starts from zero. Release steps key back from value to
// value-1 only while value is still the last one issued, and reports whether it did.
type SequenceStore interface {
	Advance(ctx context.Context, key string, delta int64) (int64, error)
	Release(ctx context.Context, key string, value int64) (bool, error)
	Set(ctx context.Context, key string, value int64) error
}

type cachedRange struct {
	current int64
	max     int64
}

// Service provides document numbering functionality.
type Service struct {
	store SequenceStore

	cacheMu sync.Mutex
	ranges  map[string]*cachedRange
}

// New creates a numerator service backed by store.
func New(store SequenceStore) *Service {
	return &Service{
		store:  store,
		ranges: make(map[string]*cachedRange),
	}
}

var _ core.Generator = (*Service)(nil)

// GetNextNumber generates the next document number.
// Pattern: PREFIX-YEAR-XXXXX (e.g., INV-2026-00001)
func (s *Service) GetNextNumber(ctx context.Context, cfg core.Config, opts *core.Options, period time.Time) (string, error) {
	if s == nil {
		return "", fmt.Errorf("numerator service is not initialized")
	}

	if opts == nil {
		opts = core.DefaultOptions()
	}

	key := s.buildKey(cfg, period)
	var num int64
	var err error

	switch opts.Strategy {
	case core.StrategyCached:
		num, err = s.getNextCached(ctx, key, opts)
	default:
		num, err = s.getNextStrict(ctx, key)
	}

	if err != nil {
		return "", err
	}

	return s.formatNumber(cfg, period, num), nil
}

// getNextStrict draws one number from the store. A rolled back transaction hands
// its number back unless a later number has been issued meanwhile.
func (s *Service) getNextStrict(ctx context.Context, key string) (int64, error) {
	num, err := s.store.Advance(ctx, key, 1)
	if err != nil {
		return 0, fmt.Errorf("strict next: %w", err)
	}
	tx.OnRollback(ctx, func() {
		released, err := s.store.Release(context.WithoutCancel(ctx), key, num)
		if err != nil {
			logger.Warn(ctx, "release document number", "key", key, "number", num, "error", err)
			return
		}
		if !released {
			logger.Warn(ctx, "document number skipped", "key", key, "number", num)
		}
	})
	return num, nil
}

// getNextCached hands out numbers from memory, reserving a new range when exhausted.
func (s *Service) getNextCached(ctx context.Context, key string, opts *core.Options) (int64, error) {
	s.cacheMu.Lock()
	defer s.cacheMu.Unlock()

	rng, exists := s.ranges[key]
	if !exists {
		rng = &cachedRange{}
		s.ranges[key] = rng
	}

	if rng.current >= rng.max {
		size := opts.RangeSize
		if size <= 0 {
			size = 50
		}

		newMax, err := s.store.Advance(ctx, key, size)
		if err != nil {
			return 0, fmt.Errorf("reserve range: %w", err)
		}

		// reserved range is (newMax-size, newMax]
		rng.current = newMax - size
		rng.max = newMax
	}

	rng.current++
	return rng.current, nil
}

// SetNextNumber sets the last issued value (for migration purposes).
func (s *Service) SetNextNumber(ctx context.Context, cfg core.Config, period time.Time, value int64) error {
	key := s.buildKey(cfg, period)

	s.cacheMu.Lock()
	delete(s.ranges, key)
	s.cacheMu.Unlock()

	return s.store.Set(ctx, key, value)
}

// buildKey creates the sequence key based on config and period.
func (s *Service) buildKey(cfg core.Config, period time.Time) string {
	switch cfg.ResetPeriod {
	case core.ResetMonthly:
		return fmt.Sprintf("%s_%s", cfg.Prefix, period.Format("2006_01"))
	case core.ResetYearly:
		return fmt.Sprintf("%s_%s", cfg.Prefix, period.Format("2006"))
	default:
		return cfg.Prefix
	}
}

// formatNumber creates the final number string.
func (s *Service) formatNumber(cfg core.Config, period time.Time, num int64) string {
	padWidth := cfg.PadWidth
	if padWidth == 0 {
		padWidth = 5
	}

	if cfg.IncludeYear {
		// Monthly sequences restart every month, so the month joins the period part.
		layout := "2006"
		if cfg.ResetPeriod == core.ResetMonthly {
			layout = "200601"
		}
		return fmt.Sprintf("%s-%s-%0*d", cfg.Prefix, period.Format(layout), padWidth, num)
	}
	return fmt.Sprintf("%s-%0*d", cfg.Prefix, padWidth, num)
}

// ParseNumber extracts the sequence part of a formatted number.
// Returns -1 if parsing fails.
func ParseNumber(formatted string) int64 {
	idx := strings.LastIndex(formatted, "-")
	if idx < 0 || idx == len(formatted)-1 {
		return -1
	}
	num, err := strconv.ParseInt(formatted[idx+1:], 10, 64)
	if err != nil {
		return -1
	}
	return num
}

// MemoryStore is a process-local SequenceStore.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]int64
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]int64)}
}

// Advance implements SequenceStore.
func (m *MemoryStore) Advance(_ context.Context, key string, delta int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] += delta
	return m.values[key], nil
}

// Release implements SequenceStore.
func (m *MemoryStore) Release(_ context.Context, key string, value int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.values[key] != value {
		return false, nil
	}
	m.values[key] = value - 1
	return true, nil
}

// Set implements SequenceStore.
func (m *MemoryStore) Set(_ context.Context, key string, value int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}
