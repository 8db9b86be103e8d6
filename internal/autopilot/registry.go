// Package autopilot provides intent policies that play the runner without
// a human, for headless runs and soak tests. Policies register themselves
// in init() so the CLI can list and pick them by name.
package autopilot

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/lane-runner/internal/sim"
)

// Policy decides the intents for the next tick from the current state.
type Policy interface {
	// Name returns the identifier used on the command line.
	Name() string

	// Decide returns the intents to apply on the next tick.
	Decide(snap sim.Snapshot) []sim.Intent
}

// Factory creates a policy. Policies that need randomness draw it from seed.
type Factory func(seed int64) Policy

// Info describes a registered policy.
type Info struct {
	Name        string
	Description string
}

type entry struct {
	factory     Factory
	description string
}

var (
	policies = make(map[string]entry)
	mu       sync.RWMutex
)

// Register adds a policy factory. Panics if the name is taken.
func Register(name, description string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := policies[name]; exists {
		panic(fmt.Sprintf("autopilot: policy %q already registered", name))
	}
	policies[name] = entry{factory: f, description: description}
}

// List returns all registered policies, sorted by name.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(policies))
	for name, e := range policies {
		result = append(result, Info{Name: name, Description: e.description})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}

// Create instantiates a policy by name.
func Create(name string, seed int64) (Policy, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := policies[name]
	if !ok {
		return nil, fmt.Errorf("autopilot: unknown policy %q", name)
	}
	return e.factory(seed), nil
}
