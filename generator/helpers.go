package generator

import (
	"sort"
	"sync"

	"github.com/rs/zerolog"
)

// NameAllocator hands out identifiers that do not clash with any other
// identifier emitted in the same pass.
type NameAllocator interface {
	DistinctName(base string) string
}

// Helper is a runtime support function emitted once into the program
// preamble.
type Helper struct {
	Key    string
	Name   string
	Source string
}

// HelperRegistry holds the helper definitions needed by one generation pass.
// Entries are insert-only: the first Ensure for a key defines the helper and
// later calls reuse it.
type HelperRegistry struct {
	mu      sync.Mutex
	names   NameAllocator
	entries map[string]Helper
	logger  zerolog.Logger
}

// NewHelperRegistry returns an empty registry that names helpers with names.
func NewHelperRegistry(names NameAllocator, logger zerolog.Logger) *HelperRegistry {
	return &HelperRegistry{
		names:   names,
		entries: map[string]Helper{},
		logger:  logger,
	}
}

// Ensure returns the name of the helper registered under key. On first use
// the helper is named by the allocator, using key as the base name, and its
// source is produced by calling source with that name.
func (r *HelperRegistry) Ensure(key string, source func(name string) string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if h, ok := r.entries[key]; ok {
		return h.Name
	}
	name := r.names.DistinctName(key)
	r.entries[key] = Helper{Key: key, Name: name, Source: source(name)}
	r.logger.Debug().Str("helper", key).Str("name", name).Msg("registered helper")
	return name
}

// Lookup returns the helper registered under key, if any.
func (r *HelperRegistry) Lookup(key string) (Helper, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	h, ok := r.entries[key]
	return h, ok
}

// Len returns the number of registered helpers.
func (r *HelperRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Definitions returns all registered helpers ordered by key.
func (r *HelperRegistry) Definitions() []Helper {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Helper, 0, len(r.entries))
	for _, h := range r.entries {
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}
