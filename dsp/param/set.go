package param

import (
	"errors"
	"fmt"
	"sync"
)

// ErrUnknown is returned for parameter IDs that are not registered.
var ErrUnknown = errors.New("param: unknown parameter")

// Set is an ordered parameter registry.
type Set struct {
	mu     sync.RWMutex
	params map[string]*Parameter
	order  []*Parameter
}

// NewSet returns a set holding params in order. Duplicate IDs are skipped.
func NewSet(params ...*Parameter) *Set {
	s := &Set{params: make(map[string]*Parameter, len(params))}
	s.Add(params...)

	return s
}

// Add registers params. Parameters whose ID is already present are
// skipped.
func (s *Set) Add(params ...*Parameter) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range params {
		if p == nil {
			continue
		}
		if _, exists := s.params[p.ID]; exists {
			continue
		}
		s.params[p.ID] = p
		s.order = append(s.order, p)
	}
}

// Get returns the parameter with id, or nil.
func (s *Set) Get(id string) *Parameter {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.params[id]
}

// All returns the parameters in registration order.
func (s *Set) All() []*Parameter {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Parameter, len(s.order))
	copy(out, s.order)

	return out
}

// Len returns the number of parameters.
func (s *Set) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.order)
}

// SetValue sets the plain value of parameter id.
func (s *Set) SetValue(id string, v float64) error {
	p := s.Get(id)
	if p == nil {
		return fmt.Errorf("%w: %q", ErrUnknown, id)
	}
	p.Set(v)

	return nil
}

// SetText parses text with the parameter's rules and sets it.
func (s *Set) SetText(id, text string) error {
	p := s.Get(id)
	if p == nil {
		return fmt.Errorf("%w: %q", ErrUnknown, id)
	}

	v, err := p.Parse(text)
	if err != nil {
		return err
	}
	p.Set(v)

	return nil
}

// Reset restores every parameter to its default.
func (s *Set) Reset() {
	for _, p := range s.All() {
		p.Reset()
	}
}
