package service

import (
	"log"
	"slices"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// Hub owns the process services and drives their lifecycle in dependency order
type Hub struct {
	mu       sync.Mutex
	services map[string]Service
	order    []string // Dependency order, resolved by InitAll
	running  []string // Started services, stopped in reverse
}

func NewHub() *Hub {
	return &Hub{services: make(map[string]Service)}
}

// Register adds svc under its name; names must be unique
func (h *Hub) Register(svc Service) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	name := svc.Name()
	if _, dup := h.services[name]; dup {
		return errors.Errorf("service %q registered twice", name)
	}
	h.services[name] = svc
	h.order = nil
	return nil
}

// Get returns the service registered under name
func (h *Hub) Get(name string) (Service, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	svc, ok := h.services[name]
	return svc, ok
}

// InitAll resolves dependency order and calls Init with each service's args
// A failed Init stops the services already initialized, newest first
func (h *Hub) InitAll(args map[string][]any) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	order, err := h.resolve()
	if err != nil {
		return err
	}
	h.order = order

	for i, name := range order {
		if err := h.services[name].Init(args[name]...); err != nil {
			h.stopReverse(order[:i])
			return errors.Wrapf(err, "init %s", name)
		}
	}
	return nil
}

// StartAll starts services in dependency order
// A failed Start stops the services already started, newest first
func (h *Hub) StartAll() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.order == nil {
		return errors.New("services not initialized")
	}

	h.running = h.running[:0]
	for _, name := range h.order {
		if err := h.services[name].Start(); err != nil {
			h.stopReverse(h.running)
			h.running = nil
			return errors.Wrapf(err, "start %s", name)
		}
		h.running = append(h.running, name)
	}
	return nil
}

// StopAll stops every started service, newest first, logging failures
func (h *Hub) StopAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.stopReverse(h.running)
	h.running = nil
}

// Order returns the resolved start order, nil before InitAll
func (h *Hub) Order() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return slices.Clone(h.order)
}

func (h *Hub) stopReverse(names []string) {
	for i := len(names) - 1; i >= 0; i-- {
		if err := h.services[names[i]].Stop(); err != nil {
			log.Printf("[Services] stop %s: %v", names[i], err)
		}
	}
}

// resolve orders services so each follows its dependencies
// Visits names alphabetically so the order is stable; cycles report their path
func (h *Hub) resolve() ([]string, error) {
	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[string]int, len(h.services))
	order := make([]string, 0, len(h.services))
	var path []string

	var visit func(name string) error
	visit = func(name string) error {
		switch state[name] {
		case done:
			return nil
		case visiting:
			start := slices.Index(path, name)
			cycle := append(slices.Clone(path[start:]), name)
			return errors.Errorf("service dependency cycle: %s", strings.Join(cycle, " -> "))
		}

		state[name] = visiting
		path = append(path, name)

		deps := slices.Sorted(slices.Values(h.services[name].Dependencies()))
		for _, dep := range deps {
			if _, ok := h.services[dep]; !ok {
				return errors.Errorf("service %s needs unregistered %s", name, dep)
			}
			if err := visit(dep); err != nil {
				return err
			}
		}

		path = path[:len(path)-1]
		state[name] = done
		order = append(order, name)
		return nil
	}

	names := make([]string, 0, len(h.services))
	for name := range h.services {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		if err := visit(name); err != nil {
			return nil, err
		}
	}
	return order, nil
}
