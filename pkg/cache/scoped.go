package cache

// ScopedKeyer wraps a Keyer with a prefix. The CLI scopes keys by release
// so that a new renderer never serves artifacts drawn by an older one:
//
//	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), "v1.2.0:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// ArtifactKey generates a prefixed key for artifact caching.
func (k *ScopedKeyer) ArtifactKey(problemHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(problemHash, opts)
}
