package uimodel

import (
	"fmt"

	"mpctui/internal/config"
)

// Factory builds a Pane for a resolved builtin kind plus its declared
// params (root_tag, template, ...). Registered per config.PaneKind.
type Factory func(ref string, params config.PaneParams, c *Ctx) (Pane, error)

// Registry maps builtin pane kinds to their constructors. Populated once at
// startup (see RegisterBuiltins in the panes package, which calls Register
// for each pane it implements) and consulted whenever a tab's layout tree
// is instantiated.
type Registry struct {
	factories map[config.PaneKind]Factory
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: map[config.PaneKind]Factory{}}
}

// Register installs the constructor for kind, overwriting any previous
// registration (tests commonly replace a kind with a stub).
func (r *Registry) Register(kind config.PaneKind, f Factory) {
	r.factories[kind] = f
}

// Build resolves ref (a builtin pane name or a key into cfg.Panes) and
// constructs it.
func (r *Registry) Build(ref string, cfg *config.Config, c *Ctx) (Pane, error) {
	kind := config.PaneKind(ref)
	params := config.PaneParams{Kind: kind}

	if p, ok := cfg.Panes[ref]; ok {
		kind = p.Kind
		params = p
	}

	f, ok := r.factories[kind]
	if !ok {
		return nil, fmt.Errorf("uimodel: no pane registered for kind %q (ref %q)", kind, ref)
	}

	return f(ref, params, c)
}
