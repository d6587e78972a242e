// Package session implements the edit session of a numeric input field.
//
// A [Session] reconciles keystrokes, programmatic values, stepping and
// display formatting. While the field is being edited the display shows
// the text as typed; the value is resolved and reformatted on commit
// (blur or Enter) and on every step.
//
// Observers receive a [Change] whenever the reported payload differs from
// the previous one. They are invoked after the session lock is released,
// so an observer may call back into the session, with the exception of
// [Session.Close].
package session

import (
	"sync"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/govalues/numinput/decimal"
	"github.com/govalues/numinput/format"
	"github.com/govalues/numinput/internal/repeat"
	"github.com/govalues/numinput/resolve"
)

// State of an edit session.
type State int

const (
	Idle    State = iota // not focused, display reflects the value
	Editing              // focused, display reflects the typed text
)

func (s State) String() string {
	if s == Editing {
		return "editing"
	}
	return "idle"
}

// Source tells which operation produced a change.
type Source int

const (
	SourceEdit     Source = iota // keystroke while editing
	SourceCommit                 // blur or Enter
	SourceStep                   // step button, arrow key or auto-repeat
	SourceExternal               // value supplied by the caller was clamped
	SourceReclamp                // bounds changed
)

func (s Source) String() string {
	switch s {
	case SourceEdit:
		return "edit"
	case SourceCommit:
		return "commit"
	case SourceStep:
		return "step"
	case SourceExternal:
		return "external"
	case SourceReclamp:
		return "reclamp"
	}
	return "unknown"
}

// Change is the payload delivered to observers.
//
// A pending change carries the raw text of an incomplete or malformed
// number being typed, such as "1." or "-". Otherwise Value holds the
// number, or nil if the field is empty.
type Change struct {
	Value   decimal.Value
	Text    string
	Pending bool
	Source  Source
}

// same reports whether both payloads would look identical to an observer.
// The source is ignored.
func (c Change) same(o Change) bool {
	switch {
	case c.Pending || o.Pending:
		return c.Pending == o.Pending && c.Text == o.Text
	case c.Value == nil || o.Value == nil:
		return (c.Value == nil) == (o.Value == nil)
	}
	return c.Value.Cmp(o.Value) == decimal.OrderEqual
}

func (c Change) String() string {
	switch {
	case c.Pending:
		return c.Text
	case c.Value == nil:
		return "null"
	}
	return c.Value.String()
}

// StepEvent describes a step that changed the value.
type StepEvent struct {
	Value      decimal.Value
	Direction  resolve.Direction
	Multiplier resolve.Multiplier
}

// Key is a key pressed while the field is focused.
type Key int

const (
	KeyUnknown Key = iota
	KeyChar
	KeyBackspace
	KeyDelete
	KeyUp
	KeyDown
	KeyEnter
)

// Modifier is a set of modifier keys held during a key press or step.
type Modifier uint8

const (
	ModShift Modifier = 1 << iota // ten steps
	ModCtrl                       // a tenth of a step
)

// Multiplier returns the step multiplier selected by the modifiers.
// Shift wins over Ctrl.
func (m Modifier) Multiplier() resolve.Multiplier {
	switch {
	case m&ModShift != 0:
		return resolve.Fast
	case m&ModCtrl != 0:
		return resolve.Fine
	}
	return resolve.Normal
}

// EditResult is the state of the field after a keystroke.
type EditResult struct {
	Display string
	Cursor  int // rune offset in Display
	Status  decimal.Status
}

// CommitResult is the state of the field after a commit.
type CommitResult struct {
	Value   resolve.Result
	Display string
	Changed bool // true if observers were notified
}

// Session is the state machine of a single numeric input field.
// It is safe for concurrent use; all methods serialize on an internal lock.
type Session struct {
	mu sync.Mutex

	id  uuid.UUID
	log *zap.Logger

	resolver  *resolve.Resolver
	formatter *format.Formatter

	observer     func(Change)
	stepObserver func(StepEvent)

	state    State
	raw      string // displayed text
	dirty    bool   // user typed since focus, step or commit
	value    resolve.Result
	external *resolve.Result // supplied while editing
	reported Change          // last payload seen by the observer
	selStart int
	selEnd   int
	lastKey  Key

	initial    any
	controlled bool
	readOnly   bool
	disabled   bool
	keyboard   bool
	closed     bool

	repeater   *repeat.Repeater
	pressGen   uint64
	repeatOpts []repeat.Option
	clock      clockwork.Clock
}

type Option func(s *Session)

// WithLogger sets the logger, zap.NewNop by default.
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithObserver sets the function receiving value changes.
func WithObserver(fn func(Change)) Option {
	return func(s *Session) {
		s.observer = fn
	}
}

// WithStepObserver sets the function receiving steps that changed the value.
func WithStepObserver(fn func(StepEvent)) Option {
	return func(s *Session) {
		s.stepObserver = fn
	}
}

// WithValue sets the initial value. Observers are not notified about it.
func WithValue(v any) Option {
	return func(s *Session) {
		s.initial = v
	}
}

// WithControlled makes the caller own the value: commits and steps are
// reported, but the value only moves when [Session.SetValue] is called.
func WithControlled() Option {
	return func(s *Session) {
		s.controlled = true
	}
}

func WithReadOnly() Option {
	return func(s *Session) {
		s.readOnly = true
	}
}

func WithDisabled() Option {
	return func(s *Session) {
		s.disabled = true
	}
}

// WithKeyboard enables or disables stepping with arrow keys. Enabled by default.
func WithKeyboard(enabled bool) Option {
	return func(s *Session) {
		s.keyboard = enabled
	}
}

// WithRepeat sets options of the auto-repeat started by [Session.Press].
func WithRepeat(opts ...repeat.Option) Option {
	return func(s *Session) {
		s.repeatOpts = append(s.repeatOpts, opts...)
	}
}

// WithClock sets the clock driving the auto-repeat.
func WithClock(clock clockwork.Clock) Option {
	return func(s *Session) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// New creates an idle session.
// A nil resolver or formatter is replaced by the default one; a nil
// formatter is derived from the resolver.
func New(r *resolve.Resolver, f *format.Formatter, opts ...Option) *Session {
	if r == nil {
		r = resolve.New()
	}
	if f == nil {
		f = format.New(format.FromResolver(r)...)
	}
	s := &Session{
		id:        uuid.New(),
		log:       zap.NewNop(),
		resolver:  r,
		formatter: f,
		keyboard:  true,
		clock:     clockwork.NewRealClock(),
	}
	for _, o := range opts {
		if o != nil {
			o(s)
		}
	}
	s.log = s.log.With(zap.Stringer("session", s.id))

	if r.Conflict() {
		s.log.Warn("min is greater than max, using max",
			zap.Stringer("max", r.Max()),
		)
	}

	s.value = s.resolve(s.initial)
	s.reported = Change{Value: s.value.Value}
	s.raw = s.formatter.Format(s.value)
	s.selStart, s.selEnd = s.length(), s.length()

	return s
}

// ID returns the identifier used in log entries.
func (s *Session) ID() uuid.UUID {
	return s.id
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Display returns the text shown in the field.
func (s *Session) Display() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.raw
}

// Value returns the committed value.
func (s *Session) Value() resolve.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

// Cursor returns the caret position as a rune offset in the display.
func (s *Session) Cursor() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selEnd
}

// Selection returns the selected range of the display.
func (s *Session) Selection() (start, end int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selStart, s.selEnd
}

// notices collects observer calls made while the lock is held.
type notices struct {
	calls []func()
}

func (n *notices) add(fn func()) {
	n.calls = append(n.calls, fn)
}

func (n *notices) dispatch() {
	for _, fn := range n.calls {
		fn()
	}
}

// report queues c for the observer unless it equals the last reported
// payload. It returns true if c was queued.
func (s *Session) report(n *notices, c Change) bool {
	if s.reported.same(c) {
		return false
	}
	s.notify(n, c)
	return true
}

// notify queues c for the observer unconditionally.
func (s *Session) notify(n *notices, c Change) {
	s.reported = c
	if fn := s.observer; fn != nil {
		n.add(func() { fn(c) })
	}
}

func (s *Session) reportStep(n *notices, e StepEvent) {
	if fn := s.stepObserver; fn != nil {
		n.add(func() { fn(e) })
	}
}

// resolve resolves a committed candidate.
// Without explicit precision trailing zeros are dropped, so "6.10"
// commits as 6.1.
func (s *Session) resolve(candidate any) resolve.Result {
	res := s.resolver.Resolve(candidate)
	if !res.IsEmpty() && !s.resolver.HasPrecision() {
		res.Value = res.Value.Reduce()
	}
	return res
}

func (s *Session) length() int {
	return len([]rune(s.raw))
}

func (s *Session) setRaw(raw string) {
	s.raw = raw
	s.selStart, s.selEnd = s.length(), s.length()
}

func (s *Session) projector() projector {
	return newProjector(s.formatter.HasFormatter(), s.formatter.Separator())
}
