package match

import (
	"context"
	"errors"
)

// ErrNotFound is returned by repositories when a key lookup misses.
var ErrNotFound = errors.New("match not found")

// UpsertResult reports how an ingestion batch landed in storage.
type UpsertResult struct {
	Inserted int
	Updated  int
}

type ListFilter struct {
	Competition string
	Statuses    []string
	Limit       int
}

type Repository interface {
	// Upsert writes the batch keyed by each match's natural Key. Existing
	// rows keep their CreatedAt; all mutable fields are replaced.
	Upsert(ctx context.Context, matches []Match) (UpsertResult, error)
	List(ctx context.Context, filter ListFilter) ([]Match, error)
	GetByKey(ctx context.Context, key Key) (Match, error)
	Count(ctx context.Context) (int, error)
}
