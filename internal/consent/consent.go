// Package consent persists the analytics consent choice a visitor made,
// with a 12-month expiry.
package consent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/atelierkoba/site-api/pkg/logging"
)

// A recorded choice stays valid for twelve months.
const ttlMonths = 12

// Record is one stored consent decision.
type Record struct {
	Value     string    `json:"value"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// NewRecord stamps a value with its expiry.
func NewRecord(value string, now time.Time) Record {
	return Record{Value: value, ExpiresAt: now.AddDate(0, ttlMonths, 0)}
}

// IsValid reports whether the record is still within its TTL.
func (r Record) IsValid(now time.Time) bool {
	return r.Value != "" && now.Before(r.ExpiresAt)
}

// ErrNotFound is returned when a visitor has no valid record.
var ErrNotFound = errors.New("consent: record not found")

// Store keeps consent records in redis, keyed per visitor, expiring with
// the record so stale keys clean themselves up.
type Store struct {
	rdb    *redis.Client
	logger *logging.Logger
	now    func() time.Time
}

// NewStore creates a redis-backed consent store.
func NewStore(rdb *redis.Client, logger *logging.Logger) *Store {
	if rdb == nil {
		panic("consent: redis client required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Store{rdb: rdb, logger: logger, now: time.Now}
}

func key(visitorID string) string {
	return "consent:" + visitorID
}

// Get returns the visitor's record, or ErrNotFound when absent or expired.
func (s *Store) Get(ctx context.Context, visitorID string) (Record, error) {
	raw, err := s.rdb.Get(ctx, key(visitorID)).Result()
	if errors.Is(err, redis.Nil) {
		return Record{}, ErrNotFound
	}
	if err != nil {
		return Record{}, fmt.Errorf("consent: get: %w", err)
	}

	var rec Record
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return Record{}, fmt.Errorf("consent: decode record: %w", err)
	}
	if !rec.IsValid(s.now()) {
		return Record{}, ErrNotFound
	}
	return rec, nil
}

// Set stores the visitor's choice with the 12-month TTL.
func (s *Store) Set(ctx context.Context, visitorID, value string) (Record, error) {
	rec := NewRecord(value, s.now())
	raw, err := json.Marshal(rec)
	if err != nil {
		return Record{}, fmt.Errorf("consent: encode record: %w", err)
	}

	ttl := rec.ExpiresAt.Sub(s.now())
	if err := s.rdb.Set(ctx, key(visitorID), raw, ttl).Err(); err != nil {
		return Record{}, fmt.Errorf("consent: set: %w", err)
	}
	s.logger.Debug("consent recorded", "visitor", visitorID, "value", value)
	return rec, nil
}
