package matching

import (
	"encoding/json"
	"fmt"

	"github.com/dgraph-io/ristretto/v2"
	"github.com/jonathan/jobmatch/internal/types"
)

// DefaultCacheEntries bounds the number of memoized evaluations.
const DefaultCacheEntries = 10_000

// CachedEvaluator memoizes Evaluate by the canonical JSON of the normalized requirement.
// Returned evaluations are shared between callers and must be treated as read-only.
type CachedEvaluator struct {
	cache *ristretto.Cache[string, Evaluation]
}

// NewCachedEvaluator creates an evaluator holding at most maxEntries results.
func NewCachedEvaluator(maxEntries int64) (*CachedEvaluator, error) {
	if maxEntries <= 0 {
		maxEntries = DefaultCacheEntries
	}

	cache, err := ristretto.NewCache(&ristretto.Config[string, Evaluation]{
		NumCounters: maxEntries * 10,
		MaxCost:     maxEntries,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create evaluation cache: %w", err)
	}

	return &CachedEvaluator{cache: cache}, nil
}

// Evaluate returns the memoized evaluation for req, computing it on a miss.
func (c *CachedEvaluator) Evaluate(req types.JobRequirement) Evaluation {
	normalized := req.Normalized()
	key, err := cacheKey(normalized)
	if err != nil {
		return Evaluate(normalized)
	}

	if eval, ok := c.cache.Get(key); ok {
		return eval
	}

	eval := Evaluate(normalized)
	c.cache.Set(key, eval, 1)
	return eval
}

// Wait blocks until pending cache writes are applied.
func (c *CachedEvaluator) Wait() {
	c.cache.Wait()
}

// Close releases the cache.
func (c *CachedEvaluator) Close() {
	c.cache.Close()
}

func cacheKey(req types.JobRequirement) (string, error) {
	b, err := json.Marshal(req)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
