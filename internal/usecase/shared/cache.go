package shared

import "context"

//go:generate mockgen -source=cache.go -destination=../../../tests/mock/shared/cache_mock.go -package=sharedmock

// CacheGeneration is the cache epoch a read started in. Invalidate opens a new
// epoch, and a Set carrying an older one writes where no Get will look.
type CacheGeneration int64

// NoGeneration makes Set a no-op.
const NoGeneration CacheGeneration = -1

// CatalogCache stores rendered catalog reads. Implementations treat backend
// errors as misses; a cache outage never fails a request.
type CatalogCache interface {
	// Get returns the current generation with the hit flag. On a miss, pass
	// that generation to Set once the value has been loaded.
	Get(ctx context.Context, key string, dest any) (CacheGeneration, bool)
	Set(ctx context.Context, gen CacheGeneration, key string, value any)
	// Invalidate makes every entry written so far unreachable.
	Invalidate(ctx context.Context)
}
