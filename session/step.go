package session

import (
	"go.uber.org/zap"

	"github.com/govalues/numinput/internal/repeat"
	"github.com/govalues/numinput/resolve"
)

// Step adds or subtracts the step and commits the result at once.
// While editing, the step starts from the typed text.
// Observers are notified only if the result differs from the last
// reported value; it returns true then.
func (s *Session) Step(dir resolve.Direction, mult resolve.Multiplier) bool {
	var n notices
	defer n.dispatch()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.disabled || s.readOnly || s.closed {
		return false
	}
	return s.step(&n, dir, mult)
}

func (s *Session) step(n *notices, dir resolve.Direction, mult resolve.Multiplier) bool {
	base := s.value
	if s.state == Editing && s.dirty {
		base = s.resolve(s.formatter.Parse(s.raw))
	}
	res := s.resolver.Step(base, dir, mult)
	if !res.IsEmpty() && !s.resolver.HasPrecision() {
		res.Value = res.Value.Reduce()
	}

	if !s.controlled {
		s.value = res
	}
	s.external = nil
	s.dirty = false
	s.setRaw(s.formatter.Format(res))

	if !s.report(n, Change{Value: res.Value, Source: SourceStep}) {
		s.log.Debug("value is pinned",
			zap.Stringer("value", res),
			zap.Stringer("direction", dir),
		)
		return false
	}
	s.reportStep(n, StepEvent{Value: res.Value, Direction: dir, Multiplier: mult})
	return true
}

// Press performs a step and starts to repeat it until [Session.Release].
// The repeat begins after a delay and accelerates.
// A previous press is released first.
func (s *Session) Press(dir resolve.Direction, mult resolve.Multiplier) bool {
	var n notices
	defer n.dispatch()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.disabled || s.readOnly || s.closed {
		return false
	}
	s.detach()
	changed := s.step(&n, dir, mult)

	gen := s.pressGen
	opts := append([]repeat.Option{repeat.WithClock(s.clock)}, s.repeatOpts...)
	s.repeater = repeat.Start(func() {
		s.tick(gen, dir, mult)
	}, opts...)
	return changed
}

// tick runs on the repeater goroutine.
func (s *Session) tick(gen uint64, dir resolve.Direction, mult resolve.Multiplier) {
	var n notices
	defer n.dispatch()

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.pressGen || s.closed || s.disabled || s.readOnly {
		return
	}
	s.step(&n, dir, mult)
}

// Release stops the repeat started by [Session.Press].
// No tick changes the value after Release returns.
func (s *Session) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.detach()
}

// detach cancels the current repeater without waiting for its worker.
// Ticks already scheduled see a newer generation and do nothing.
func (s *Session) detach() {
	s.pressGen++
	if s.repeater != nil {
		s.repeater.Cancel()
		s.repeater = nil
	}
}

// SetDisabled blocks or unblocks the session.
// Disabling releases a held step button.
func (s *Session) SetDisabled(disabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.disabled = disabled
	if disabled {
		s.detach()
	}
}

// Close releases the session and waits for the auto-repeat to stop.
// The session ignores edits and steps afterwards.
// Close must not be called from an observer.
func (s *Session) Close() {
	s.mu.Lock()
	s.closed = true
	r := s.repeater
	s.repeater = nil
	s.pressGen++
	s.mu.Unlock()

	if r != nil {
		r.Stop()
	}
}
