package loader

// LoaderBuilderOption is a functional option for configuring a Loader via NewLoader.
type LoaderBuilderOption func(*loader)

// WithHierarchy is an option builder that pre-populates the cache with a hierarchy.
//
// Parameters:
//   - key: the cache key for the hierarchy
//   - h: the hierarchy to cache
//
// Returns:
//   - LoaderBuilderOption: a function that applies the hierarchy option to a loader
func WithHierarchy(key string, h Hierarchy) LoaderBuilderOption {
	return func(l *loader) {
		l.cache[key] = h
	}
}

// WithWorkers sets how many files LoadAll reads and parses at once.
// Values below 1 keep the default of one less than the CPU count.
//
// Parameters:
//   - n: the maximum number of concurrent loads
//
// Returns:
//   - LoaderBuilderOption: a function that applies the worker count option to a loader
func WithWorkers(n int) LoaderBuilderOption {
	return func(l *loader) {
		if n >= 1 {
			l.workers = n
		}
	}
}
