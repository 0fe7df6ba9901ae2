package plugin

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// Registry holds plugins by name.
type Registry struct {
	mu      sync.RWMutex
	plugins map[string]Plugin
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{plugins: make(map[string]Plugin)}
}

// NewBuiltinRegistry creates a registry holding Builtins.
func NewBuiltinRegistry() *Registry {
	r := NewRegistry()
	for _, p := range Builtins() {
		// Builtin names are unique.
		_ = r.Register(p)
	}
	return r
}

// Register adds p. It fails if the name is empty or taken.
func (r *Registry) Register(p Plugin) error {
	name := p.Name()
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidPlugin)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.plugins[name]; ok {
		return fmt.Errorf("%w: %q", ErrAlreadyRegistered, name)
	}
	r.plugins[name] = p

	log.Debug("registered plugin", "name", name)
	return nil
}

// Unregister removes the named plugin.
func (r *Registry) Unregister(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.plugins[name]; !ok {
		return fmt.Errorf("%w: %q", ErrPluginNotFound, name)
	}
	delete(r.plugins, name)

	log.Debug("unregistered plugin", "name", name)
	return nil
}

// Get returns the named plugin.
func (r *Registry) Get(name string) (Plugin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.plugins[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrPluginNotFound, name)
	}
	return p, nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.plugins))
	for name := range r.plugins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Apply runs the named plugin. Plugins listed in plugins.disabled fail with
// ErrPluginDisabled.
func (r *Registry) Apply(ctx context.Context, name string, pc *Context) error {
	p, err := r.Get(name)
	if err != nil {
		return err
	}
	if pc != nil && pc.config().Plugins.IsDisabled(name) {
		return fmt.Errorf("%w: %q", ErrPluginDisabled, name)
	}

	if err := p.Apply(ctx, pc); err != nil {
		log.Warning("plugin failed", "name", name, "error", err)
		return fmt.Errorf("plugin %s: %w", name, err)
	}
	return nil
}
