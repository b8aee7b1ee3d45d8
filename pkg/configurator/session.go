package configurator

import (
	"fmt"
	"log/slog"

	"github.com/philipparndt/gocloset/pkg/assembly"
	"github.com/philipparndt/gocloset/pkg/closet"
)

// Snapshot is what the UI shows after an edit
type Snapshot struct {
	Spec     closet.Spec
	Dims     closet.Dimensions
	Assembly *assembly.Assembly
}

// Listener is notified after every applied change
type Listener func(Snapshot)

// Session owns the current spec and drives recomputation and scene
// rebuilds from the UI's event handlers. It is meant to be used from a
// single UI goroutine.
type Session struct {
	policy    Policy
	spec      closet.Spec
	dims      closet.Dimensions
	builder   *assembly.Builder
	listeners []Listener
}

// NewSession computes and builds the initial scene for spec
func NewSession(spec closet.Spec, builder *assembly.Builder, policy Policy) (*Session, error) {
	if builder == nil {
		builder = assembly.NewBuilder(nil)
	}
	s := &Session{policy: policy, builder: builder}
	if policy == Clamp {
		spec = spec.Clamp()
	}
	if err := s.apply(spec); err != nil {
		return nil, err
	}
	return s, nil
}

// Subscribe registers l and calls it once with the current snapshot
func (s *Session) Subscribe(l Listener) {
	s.listeners = append(s.listeners, l)
	l(s.Snapshot())
}

// Dispatch reduces the action and, if the spec changed, recomputes the
// dimensions, rebuilds the scene and notifies listeners.
func (s *Session) Dispatch(action Action) (Snapshot, error) {
	next := Reduce(s.spec, action, s.policy)
	if next == s.spec {
		return s.Snapshot(), nil
	}
	if err := s.apply(next); err != nil {
		return s.Snapshot(), err
	}
	snap := s.Snapshot()
	for _, l := range s.listeners {
		l(snap)
	}
	return snap, nil
}

// Edit parses form text for field and dispatches it
func (s *Session) Edit(field Field, text string) (Snapshot, error) {
	action, err := ParseAction(field, text)
	if err != nil {
		return s.Snapshot(), err
	}
	return s.Dispatch(action)
}

func (s *Session) apply(spec closet.Spec) error {
	if err := spec.Validate(); err != nil {
		slog.Debug("rendering unvalidated spec", "error", err)
	}
	dims := closet.Compute(spec)
	if _, err := s.builder.Rebuild(spec, dims); err != nil {
		return fmt.Errorf("failed to rebuild scene: %w", err)
	}
	s.spec = spec
	s.dims = dims
	return nil
}

// Snapshot returns the current state
func (s *Session) Snapshot() Snapshot {
	return Snapshot{Spec: s.spec, Dims: s.dims, Assembly: s.builder.Current()}
}

// Spec returns the current spec
func (s *Session) Spec() closet.Spec {
	return s.spec
}

// Policy returns the input policy of the session
func (s *Session) Policy() Policy {
	return s.policy
}

// Close tears down the scene
func (s *Session) Close() error {
	s.listeners = nil
	return s.builder.Close()
}
