package cc

// Runs is the run table of one labeling invocation: an append-only record of
// every maximal horizontal run found during the scan, plus the union-find
// forest mapping run ids to canonical component roots. Entries 0 and 1 are
// zero-length placeholders for the reserved labels.
//
// A fresh Runs is allocated for every invocation and discarded after the
// final label-resolution pass.
type Runs struct {
	forest *Forest
	runs   []Run
}

// NewRuns returns an empty run table with the reserved placeholders.
func NewRuns() *Runs {
	return &Runs{
		forest: NewForest(),
		runs:   make([]Run, 2, 64),
	}
}

// NewRun records a run of length one starting at global cell (x, y) and
// returns its identifier.
func (r *Runs) NewRun(x, y int) int {
	id := r.forest.NewSet()
	r.runs = append(r.runs, Run{X: x, Y: y, Len: 1})

	return id
}

// Extend grows the given run by one cell. Runs only ever grow eastward while
// the scan is on their row.
func (r *Runs) Extend(id int) { r.runs[id].Len++ }

// Run returns the geometry of the given run id.
func (r *Runs) Run(id int) Run { return r.runs[id] }

// Len reports the number of run ids, reserved placeholders included.
func (r *Runs) Len() int { return len(r.runs) }

// Root resolves a run id to its canonical component label.
func (r *Runs) Root(id int) int { return r.forest.Find(id) }

// Union merges two runs' components and returns the surviving and absorbed
// roots (equal if the runs were already connected).
func (r *Runs) Union(a, b int) (kept, absorbed int) {
	return r.forest.Union(a, b)
}

// ForEach calls fn for every real run with its geometry and resolved root.
func (r *Runs) ForEach(fn func(id int, run Run, root int)) {
	for id := 2; id < len(r.runs); id++ {
		fn(id, r.runs[id], r.forest.Find(id))
	}
}
