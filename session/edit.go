package session

import (
	"go.uber.org/zap"

	"github.com/govalues/numinput/decimal"
	"github.com/govalues/numinput/format"
	"github.com/govalues/numinput/resolve"
)

// Focus starts editing. The display keeps the formatted value and the
// caret is placed at its end.
// It returns false if the session is disabled or closed.
func (s *Session) Focus() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.disabled || s.closed {
		return false
	}
	if s.state == Editing {
		return true
	}
	s.state = Editing
	s.dirty = false
	s.external = nil
	s.lastKey = KeyUnknown
	s.setRaw(s.formatter.Format(s.value))
	return true
}

// Select sets the selected range of the display, in runes.
// The caret is at end; start equals end if nothing is selected.
func (s *Session) Select(start, end int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := s.length()
	start = min(max(start, 0), n)
	end = min(max(end, 0), n)
	if start > end {
		start, end = end, start
	}
	s.selStart, s.selEnd = start, end
}

// Edit replaces the display with text typed by the user.
//
// The cursor is the caret position in text reported by the input field,
// or a negative number to infer it from the previous display, the previous
// selection and the last key passed to [Session.KeyDown].
//
// The display keeps the text as typed; only a configured formatter is
// applied. Observers receive the number if text is complete, or the text
// itself as a pending change. Bounds and precision are not applied until
// commit.
func (s *Session) Edit(text string, cursor int) EditResult {
	var n notices
	defer n.dispatch()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.disabled || s.readOnly || s.closed {
		return EditResult{
			Display: s.raw,
			Cursor:  s.selEnd,
			Status:  decimal.Classify(s.formatter.Parse(s.raw)),
		}
	}
	if s.state == Idle {
		s.state = Editing
		s.external = nil
	}

	text = decimal.ReplaceFullStops(text)
	if sep := s.formatter.Separator(); sep != "." && !s.formatter.HasFormatter() {
		text = replaceDots(text, sep)
	}

	p := s.projector()
	var logical int
	if cursor >= 0 {
		logical = p.logical(text, cursor)
	} else {
		logical = caret(
			p.strip(s.raw),
			p.logical(s.raw, s.selStart),
			p.logical(s.raw, s.selEnd),
			p.strip(text),
			s.lastKey,
		)
	}

	display := s.formatter.Typing(text)
	pos := p.physical(display, logical)
	s.raw = display
	s.selStart, s.selEnd = pos, pos
	s.dirty = true
	s.lastKey = KeyUnknown

	numeric := s.formatter.Parse(display)
	status := decimal.Classify(numeric)
	c := Change{Text: display, Pending: true, Source: SourceEdit}
	if status == decimal.StatusValid {
		if v, err := s.resolver.Backend().Parse(numeric); err == nil {
			c = Change{Value: v, Source: SourceEdit}
		}
	}
	s.report(&n, c)

	return EditResult{Display: display, Cursor: pos, Status: status}
}

// replaceDots replaces '.' typed by the user with the decimal separator.
func replaceDots(text, sep string) string {
	out := make([]rune, 0, len(text))
	for _, r := range text {
		if r == '.' {
			out = append(out, []rune(sep)...)
			continue
		}
		out = append(out, r)
	}
	return string(out)
}

// KeyDown handles a key press. Arrow keys step the value, Enter commits.
// Other keys are remembered to infer the caret of the next [Session.Edit].
// It returns true if the key was handled.
func (s *Session) KeyDown(key Key, mod Modifier) bool {
	s.mu.Lock()
	s.lastKey = key
	blocked := s.disabled || s.readOnly || s.closed
	keyboard := s.keyboard
	s.mu.Unlock()

	switch key {
	case KeyUp, KeyDown:
		if blocked || !keyboard {
			return false
		}
		dir := resolve.Up
		if key == KeyDown {
			dir = resolve.Down
		}
		s.Step(dir, mod.Multiplier())
		return true
	case KeyEnter:
		if blocked {
			return false
		}
		s.Commit()
		return true
	}
	return false
}

// Blur commits the typed text and ends editing.
// Observers are notified if the committed value differs from the last
// reported one.
func (s *Session) Blur() CommitResult {
	var n notices
	defer n.dispatch()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == Idle {
		return CommitResult{Value: s.value, Display: s.raw}
	}
	res := s.commit(&n)
	s.state = Idle
	s.lastKey = KeyUnknown
	return res
}

// Commit commits the typed text and keeps editing, as Enter does.
func (s *Session) Commit() CommitResult {
	var n notices
	defer n.dispatch()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == Idle || s.closed {
		return CommitResult{Value: s.value, Display: s.raw}
	}
	return s.commit(&n)
}

func (s *Session) commit(n *notices) CommitResult {
	if !s.dirty {
		if s.external != nil {
			s.value = *s.external
			s.external = nil
		}
		s.setRaw(s.formatter.Format(s.value))
		return CommitResult{Value: s.value, Display: s.raw}
	}

	numeric := s.formatter.Parse(s.raw)
	res := s.resolve(numeric)
	switch {
	case res.IsEmpty() && decimal.Classify(numeric) == decimal.StatusMalformed:
		s.log.Debug("malformed input committed as empty", zap.String("text", s.raw))
	case res.Clamped:
		s.log.Debug("value clamped",
			zap.String("text", s.raw),
			zap.Stringer("value", res.Value),
		)
	}

	if !s.controlled {
		s.value = res
	}
	s.external = nil
	s.dirty = false
	s.setRaw(s.formatter.Format(s.value))

	changed := s.report(n, Change{Value: res.Value, Source: SourceCommit})
	if changed {
		s.log.Debug("value committed", zap.Stringer("value", res))
	}
	return CommitResult{Value: res, Display: s.raw, Changed: changed}
}

// SetValue sets the value supplied by the caller.
//
// While idle the value is resolved and displayed at once; observers are
// notified only if it had to be clamped. While editing the typed text is
// kept, and the value takes effect when editing ends, unless the user has
// not typed anything since focus.
func (s *Session) SetValue(v any) resolve.Result {
	var n notices
	defer n.dispatch()

	s.mu.Lock()
	defer s.mu.Unlock()

	res := s.resolve(v)
	c := Change{Value: res.Value, Source: SourceExternal}
	if res.Clamped {
		s.notify(&n, c)
		s.log.Debug("external value clamped", zap.Stringer("value", res))
	} else {
		s.reported = c
	}

	if s.state == Idle {
		s.value = res
		s.setRaw(s.formatter.Format(res))
		return res
	}

	if s.controlled {
		s.value = res
	}
	if s.dirty {
		s.external = &res
		return res
	}
	s.value = res
	s.setRaw(s.formatter.Format(res))
	return res
}

// Reconfigure replaces the resolver and the formatter. A nil argument
// keeps the current one; a nil formatter is not derived again.
// The value is reclamped to the new bounds, and observers are notified
// if it changed.
func (s *Session) Reconfigure(r *resolve.Resolver, f *format.Formatter) resolve.Result {
	var n notices
	defer n.dispatch()

	s.mu.Lock()
	defer s.mu.Unlock()

	if r != nil {
		s.resolver = r
		if r.Conflict() {
			s.log.Warn("min is greater than max, using max",
				zap.Stringer("max", r.Max()),
			)
		}
	}
	if f != nil {
		s.formatter = f
	}

	res := s.resolver.Reclamp(s.value)
	if !res.IsEmpty() && !s.resolver.HasPrecision() {
		res.Value = res.Value.Reduce()
	}
	if !res.Equal(s.value) {
		s.log.Debug("value reclamped",
			zap.Stringer("from", s.value),
			zap.Stringer("to", res),
		)
		s.report(&n, Change{Value: res.Value, Source: SourceReclamp})
	}
	s.value = res
	if s.external != nil {
		ext := s.resolver.Reclamp(*s.external)
		s.external = &ext
	}
	if s.state == Idle || !s.dirty {
		s.setRaw(s.formatter.Format(s.value))
	}
	return res
}

// SetReadOnly blocks or unblocks edits and steps.
func (s *Session) SetReadOnly(readOnly bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.readOnly = readOnly
}

// SetKeyboard enables or disables stepping with arrow keys.
func (s *Session) SetKeyboard(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.keyboard = enabled
}
