package ports

import "context"

// ListCache caches the serialized public list responses. Implementations
// must treat every failure as a miss; callers fall back to the store.
type ListCache interface {
	// Get unmarshals the cached value for key into dest and reports
	// whether a cached value was present.
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any) error
	Invalidate(ctx context.Context, key string) error
}
