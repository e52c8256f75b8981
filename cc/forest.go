package cc

// Forest is a parent-pointer union-find over run identifiers. Identifiers 0
// (background) and 1 (sink) are pre-seeded as their own roots.
//
// Invariant: following parent pointers from any id terminates at a root whose
// parent is itself. Union always points the larger (newer) root at the
// smaller (older) one, which keeps the forest acyclic and makes the reserved
// sink id 1 absorb every component it touches.
type Forest struct {
	parent []int
}

// NewForest returns a forest holding only the two reserved identifiers.
func NewForest() *Forest {
	return &Forest{parent: []int{0, 1}}
}

// NewSet allocates the next run identifier as its own root.
func (f *Forest) NewSet() int {
	id := len(f.parent)
	f.parent = append(f.parent, id)

	return id
}

// Len reports the number of identifiers, reserved ones included.
func (f *Forest) Len() int { return len(f.parent) }

// Find resolves id to its canonical root, halving paths opportunistically.
// Correctness does not depend on compression timing. A traversal longer than
// the forest itself means a parent cycle, which is a programming defect and
// panics.
func (f *Forest) Find(id int) int {
	steps := 0
	for f.parent[id] != id {
		f.parent[id] = f.parent[f.parent[id]]
		id = f.parent[id]
		steps++
		if steps > len(f.parent) {
			panic("cc: union-find parent cycle")
		}
	}

	return id
}

// Union merges the equivalence classes of a and b. The smaller root survives,
// so the sink (id 1) can never be absorbed by an ordinary component. It
// returns the surviving root and the absorbed one; kept == absorbed means the
// ids were already equivalent.
func (f *Forest) Union(a, b int) (kept, absorbed int) {
	ra, rb := f.Find(a), f.Find(b)
	if ra == rb {
		return ra, ra
	}
	if rb < ra {
		ra, rb = rb, ra
	}
	f.parent[rb] = ra

	return ra, rb
}
