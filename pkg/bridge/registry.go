// Package bridge binds gateway operations to command names and serves them
// to a front-end process as line-delimited JSON requests.
package bridge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Sentinel errors for bridge-level failures.
var (
	ErrCommandNotFound  = errors.New("command not found")
	ErrDuplicateCommand = errors.New("command already registered")
	ErrInvalidPayload   = errors.New("invalid payload")
)

// Handler runs one command. args is the raw JSON arguments object and the
// returned value is marshalled into the response result.
type Handler func(ctx context.Context, args json.RawMessage) (interface{}, error)

// Registry maps command names to handlers.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]Handler
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]Handler)}
}

// Register binds name to h. Registering the same name twice is an error.
func (r *Registry) Register(name string, h Handler) error {
	if name == "" || h == nil {
		return fmt.Errorf("register %q: name and handler are required", name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.handlers[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateCommand, name)
	}
	r.handlers[name] = h
	return nil
}

// Lookup returns the handler bound to name.
func (r *Registry) Lookup(name string) (Handler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.handlers[name]
	return h, ok
}

// Names returns the registered command names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Invoke runs the handler bound to name.
func (r *Registry) Invoke(ctx context.Context, name string, args json.RawMessage) (interface{}, error) {
	h, ok := r.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrCommandNotFound, name)
	}
	return h(ctx, args)
}
