package lang

import (
	"context"
	"log/slog"
	"strconv"
	"sync"

	"github.com/zeebo/xxh3"

	"github.com/ardnew/templet/log"
)

// globalCache stores parsed node trees keyed by source hash. Trees are
// immutable and re-entrant, so one tree may back any number of Templates.
var globalCache sync.Map

// cacheState tracks one-time parsing of a source.
type cacheState struct {
	once  sync.Once
	nodes []Node
	err   error
}

// cachedNodes returns the node tree for source, parsing it exactly once
// per cache lifetime. Subsequent calls with the same source share the
// tree.
func cachedNodes(
	ctx context.Context,
	source string,
	logger log.Logger,
) ([]Node, bool, error) {
	hash := xxh3.HashString(source)
	sourceKey := strconv.FormatUint(hash, 36)

	entry, hit := globalCache.LoadOrStore(sourceKey, new(cacheState))

	state, ok := entry.(*cacheState)
	if !ok {
		return nil, false, NewError("invalid cache entry").
			With(slog.String("source_key", sourceKey))
	}

	logger.TraceContext(ctx, "cache lookup",
		slog.String("source_hash", strconv.FormatUint(hash, 16)),
		slog.Bool("cache_hit", hit))

	state.once.Do(func() {
		p := &parser{ctx: ctx, source: source, logger: logger}

		nodes, err := p.parse()
		if err != nil {
			state.err = NewError("parse template").Wrap(err).
				With(slog.Int("source_length", len(source)))

			// A failed parse must not pin the error for later callers
			// retrying after e.g. context cancellation.
			globalCache.Delete(sourceKey)

			return
		}

		state.nodes = nodes
	})

	if state.err != nil {
		return nil, false, state.err
	}

	return state.nodes, hit, nil
}

// ClearCache removes all cached node trees. This is primarily useful for
// testing or when memory needs to be reclaimed.
func ClearCache() {
	globalCache = sync.Map{}
}
