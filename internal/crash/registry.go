package crash

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
)

// ErrInvalidCallbackID is returned by UnregisterCallback when no callback
// with the given id exists.
var ErrInvalidCallbackID = errors.New("invalid callback id")

// CallbackID identifies a registered cleanup callback.
type CallbackID uint64

// Entry is a single diagnostic key/value pair.
type Entry struct {
	Key   string
	Value any
}

// Callback pairs a cleanup function with its optional user-visible message.
type Callback struct {
	ID      CallbackID
	Fn      func()
	Message string
}

// Registry holds diagnostic data and cleanup callbacks surfaced during
// crash handling. Data entries keep insertion order; callbacks keep
// registration order. The zero value is not usable, call NewRegistry.
//
// A mutex guards the internal maps, but the crash path itself assumes
// single-threaded use by the wrapped function and its callees.
type Registry struct {
	mu        sync.Mutex
	data      map[string]any
	dataKeys  []string
	callbacks []Callback
	nextID    atomic.Uint64
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		data: make(map[string]any),
	}
}

// defaultRegistry backs the package-level convenience functions, mirroring
// the single process-wide store most programs want.
var defaultRegistry = NewRegistry()

// DefaultRegistry returns the process-wide registry used by the
// package-level SetData, RegisterCallback and UnregisterCallback.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// SetData upserts a diagnostic entry. Last write for a key wins; first
// write fixes the key's position in the report.
func (r *Registry) SetData(key string, value any) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.data[key]; !ok {
		r.dataKeys = append(r.dataKeys, key)
	}
	r.data[key] = value
}

// RegisterCallback appends a cleanup callback to run on crash, in
// registration order. The message, when non-empty, is printed to stdout
// immediately before the callback is invoked. The returned id can be
// passed to UnregisterCallback.
func (r *Registry) RegisterCallback(fn func(), message string) CallbackID {
	id := CallbackID(r.nextID.Add(1))

	r.mu.Lock()
	defer r.mu.Unlock()
	r.callbacks = append(r.callbacks, Callback{ID: id, Fn: fn, Message: message})
	return id
}

// UnregisterCallback removes a previously registered callback. It returns
// an error wrapping ErrInvalidCallbackID when the id is unknown.
func (r *Registry) UnregisterCallback(id CallbackID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, cb := range r.callbacks {
		if cb.ID == id {
			r.callbacks = append(r.callbacks[:i], r.callbacks[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %d", ErrInvalidCallbackID, id)
}

// Reset clears diagnostic data and callbacks. Intended for test isolation
// between independent invocations of a wrapped function.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.data = make(map[string]any)
	r.dataKeys = nil
	r.callbacks = nil
}

// Data returns the diagnostic entries in insertion order.
func (r *Registry) Data() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries := make([]Entry, 0, len(r.dataKeys))
	for _, k := range r.dataKeys {
		entries = append(entries, Entry{Key: k, Value: r.data[k]})
	}
	return entries
}

// Callbacks returns the registered callbacks in registration order.
func (r *Registry) Callbacks() []Callback {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Callback, len(r.callbacks))
	copy(out, r.callbacks)
	return out
}

// SetData upserts a diagnostic entry in the default registry.
func SetData(key string, value any) {
	defaultRegistry.SetData(key, value)
}

// RegisterCallback registers a cleanup callback in the default registry.
func RegisterCallback(fn func(), message string) CallbackID {
	return defaultRegistry.RegisterCallback(fn, message)
}

// UnregisterCallback removes a callback from the default registry.
func UnregisterCallback(id CallbackID) error {
	return defaultRegistry.UnregisterCallback(id)
}
