// Package health tracks the health of the service's collaborators.
package health

import (
	"context"
	"slices"
	"sync"
	"time"
)

// Component names reported by the server.
const (
	Database        = "database"
	GeneratorConfig = "generator_config"
)

// Status is the last known health of a component.
type Status struct {
	Healthy     bool      `json:"healthy"`
	LastCheck   time.Time `json:"lastCheck"`
	LastSuccess time.Time `json:"lastSuccess,omitzero"`
	LastError   error     `json:"-"`
	Message     string    `json:"message,omitempty"`
}

// CheckFunc probes one component.
type CheckFunc func(ctx context.Context) error

// Health tracks component statuses and the probes that refresh them.
type Health struct {
	mu         sync.RWMutex
	components map[string]*Status
	checks     map[string]CheckFunc
	now        func() time.Time
}

// New creates an empty tracker.
func New() *Health {
	return &Health{
		components: make(map[string]*Status),
		checks:     make(map[string]CheckFunc),
		now:        time.Now,
	}
}

// Register adds a probe for component. Check runs it.
func (h *Health) Register(component string, check CheckFunc) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.checks[component] = check
}

// Check runs every registered probe and records the outcome.
func (h *Health) Check(ctx context.Context) {
	h.mu.RLock()
	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	h.mu.RUnlock()
	slices.Sort(names)

	for _, name := range names {
		h.mu.RLock()
		check := h.checks[name]
		h.mu.RUnlock()

		if err := check(ctx); err != nil {
			h.SetUnhealthy(name, err)
			continue
		}
		h.SetHealthy(name, "ok")
	}
}

// SetHealthy marks a component as healthy.
func (h *Health) SetHealthy(component, message string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	s := h.status(component)
	now := h.now()
	s.Healthy = true
	s.LastCheck = now
	s.LastSuccess = now
	s.LastError = nil
	s.Message = message
}

// SetUnhealthy marks a component as unhealthy.
func (h *Health) SetUnhealthy(component string, err error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	s := h.status(component)
	s.Healthy = false
	s.LastCheck = h.now()
	s.LastError = err
	s.Message = err.Error()
}

// Get returns a copy of a component's status, or nil if unknown.
func (h *Health) Get(component string) *Status {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if s, ok := h.components[component]; ok {
		c := *s
		return &c
	}
	return nil
}

// All returns copies of every component status.
func (h *Health) All() map[string]Status {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make(map[string]Status, len(h.components))
	for name, s := range h.components {
		out[name] = *s
	}
	return out
}

// Healthy reports whether every known component is healthy.
func (h *Health) Healthy() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, s := range h.components {
		if !s.Healthy {
			return false
		}
	}
	return true
}

// caller holds h.mu.
func (h *Health) status(component string) *Status {
	s, ok := h.components[component]
	if !ok {
		s = &Status{}
		h.components[component] = s
	}
	return s
}
