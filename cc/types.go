package cc

import "errors"

// Reserved run identifiers.
const (
	// None marks background cells in the run-label field.
	None = 0
	// Sink is the canonical label of the component connected to the domain
	// exterior. It wins every union it takes part in.
	Sink = 1
)

// Sentinel errors for cc operations.
var (
	// ErrNilPredicate indicates a missing foreground predicate.
	ErrNilPredicate = errors.New("cc: foreground predicate must not be nil")
	// ErrGridExtent indicates a serial grid smaller than one cell per axis.
	ErrGridExtent = errors.New("cc: grid must span at least one cell per axis")
	// ErrNoConvergence indicates boundary relaxation exceeded its round cap.
	// This is an internal invariant violation, not a configuration error.
	ErrNoConvergence = errors.New("cc: boundary relaxation exceeded its round cap")
)

// Predicate decides whether the global cell (i, j) is foreground, i.e.
// participates in connectivity. It must be a pure function of field values
// that are already available on the calling rank.
type Predicate func(i, j int) bool

// Run is one maximal horizontal segment of foreground cells: it starts at
// global column X in row Y and spans Len cells. Runs are never split after
// creation.
type Run struct {
	X, Y, Len int
}

// Option configures an Engine.
type Option func(*Engine)

// WithSink enables the sink rule: runs whose cells are seeded with the Sink
// label, and runs that see a sink-labeled ghost neighbor during relaxation,
// are unioned into the reserved Sink component.
func WithSink() Option {
	return func(e *Engine) { e.sink = true }
}

// WithDecorators attaches per-component attribute decorators. Their combine
// hooks run on every union, so no second pass over cells is needed.
func WithDecorators(decs ...Decorator) Option {
	return func(e *Engine) { e.decs = append(e.decs, decs...) }
}

// WithMaxRounds overrides the defensive cap on boundary relaxation rounds.
// The default is proportional to the rank count, which bounds the number of
// subdomain-boundary crossings a single component can span.
func WithMaxRounds(n int) Option {
	return func(e *Engine) { e.maxRounds = n }
}
