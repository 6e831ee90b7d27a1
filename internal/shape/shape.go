// Package shape provides a small drawable type hierarchy.
//
// The abstract base carries the state and the default Draw behavior but no
// Print, so only concrete variants such as Derived satisfy Shape. Shapes are
// single-owner and scope-bound: call Release (usually deferred) when the
// owning scope ends.
package shape

import "log/slog"

// DefaultY is the fixed step each Draw adds to x.
const DefaultY = 8

// Shape is the capability set shared by every concrete variant.
type Shape interface {
	Print()
	Draw()
	X() int
	Y() int
	Release()
}

// ReleaseHook observes a shape's x after release has decremented it.
type ReleaseHook func(x int)

// Option configures a shape at construction.
type Option func(*base)

// WithReleaseHook registers fn to run once when the shape is released.
func WithReleaseHook(fn ReleaseHook) Option {
	return func(b *base) {
		b.hooks = append(b.hooks, fn)
	}
}

// WithLogger sets the logger for draw and release records.
func WithLogger(logger *slog.Logger) Option {
	return func(b *base) {
		b.logger = logger
	}
}

type base struct {
	x, y     int
	released bool
	hooks    []ReleaseHook
	logger   *slog.Logger
}

func newBase(opts ...Option) base {
	b := base{
		y:      DefaultY,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// Draw adds y into x. Repeated calls accumulate.
func (b *base) Draw() {
	b.x += b.y
	b.logger.Debug("shape drawn", "x", b.x, "y", b.y)
}

// X returns the accumulated draw state.
func (b *base) X() int { return b.x }

// Y returns the draw step.
func (b *base) Y() int { return b.y }

// Release decrements x by one and runs the release hooks.
// Only the first call has any effect.
func (b *base) Release() {
	if b.released {
		return
	}
	b.released = true
	b.x--
	b.logger.Debug("shape released", "x", b.x)
	for _, fn := range b.hooks {
		fn(b.x)
	}
}

// Derived is the concrete shape whose Print draws.
type Derived struct {
	base
}

// NewDerived returns a Derived with x=0 and y=DefaultY.
func NewDerived(opts ...Option) *Derived {
	return &Derived{base: newBase(opts...)}
}

// Print draws the shape once.
func (d *Derived) Print() {
	d.Draw()
}

// Call invokes Print, so a Derived can be used where a plain func() is wanted
// via d.Call.
func (d *Derived) Call() {
	d.Print()
}

// Equal reports whether a and b hold the same x and y. The variants need not
// match.
func Equal(a, b Shape) bool {
	return a.X() == b.X() && a.Y() == b.Y()
}

var _ Shape = (*Derived)(nil)
