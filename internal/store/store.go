// internal/store/store.go

// Package store persists projects and generation records in Postgres, with
// a Redis cache in front of single-project reads.
package store

import (
	"database/sql"
	"time"

	"github.com/redis/go-redis/v9"

	"sow-engine/internal/common/logger"
)

// Store wraps the Postgres and Redis handles used by the workflow. The
// Redis client may be nil, in which case reads always hit the database.
type Store struct {
	db       *sql.DB
	cache    *redis.Client
	logger   logger.Logger
	cacheTTL time.Duration
}

func New(db *sql.DB, cache *redis.Client, log logger.Logger, cacheTTL time.Duration) *Store {
	if cacheTTL <= 0 {
		cacheTTL = 5 * time.Minute
	}
	return &Store{
		db:       db,
		cache:    cache,
		logger:   log,
		cacheTTL: cacheTTL,
	}
}
