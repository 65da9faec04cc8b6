// Package solution holds the per-day puzzle solvers.
package solution

import (
	"fmt"
	"sync"
)

// Solver answers both parts of one day's puzzle from its input text.
type Solver interface {
	Part1(input string) (string, error)
	Part2(input string) (string, error)
}

// Placeholder answers 42 to both parts until a day gets a real solver.
type Placeholder struct{}

// Part1 returns the placeholder answer.
func (Placeholder) Part1(string) (string, error) { return "42", nil }

// Part2 returns the placeholder answer.
func (Placeholder) Part2(string) (string, error) { return "42", nil }

// Registry maps days to solvers.
type Registry struct {
	mu      sync.RWMutex
	solvers map[int]Solver
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{solvers: make(map[int]Solver)}
}

// Register sets the solver for day, replacing any previous one.
func (r *Registry) Register(day int, s Solver) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.solvers[day] = s
}

// For returns the solver for day, or Placeholder when none is registered.
func (r *Registry) For(day int) Solver {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if s, ok := r.solvers[day]; ok {
		return s
	}
	return Placeholder{}
}

// Default is the registry used by the CLI.
var Default = NewRegistry()

// Answers holds the result of running both parts.
type Answers struct {
	Day   int
	Part1 string
	Part2 string
}

// Run computes both parts for day, stopping at the first failing part.
func Run(s Solver, day int, input string) (Answers, error) {
	p1, err := s.Part1(input)
	if err != nil {
		return Answers{}, fmt.Errorf("day %d part 1: %w", day, err)
	}
	p2, err := s.Part2(input)
	if err != nil {
		return Answers{}, fmt.Errorf("day %d part 2: %w", day, err)
	}
	return Answers{Day: day, Part1: p1, Part2: p2}, nil
}
