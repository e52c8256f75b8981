package cc

// Decorator attaches one per-component attribute to a labeling invocation.
// The engine calls the hooks at fixed points; a decorator never re-scans
// cells itself. Attribute entries of non-root ids go stale after a merge and
// must only ever be read through the canonical root.
//
// Combine rules must be associative and commutative (logical OR, min, max),
// so the final attributes are independent of union order and rank count.
type Decorator interface {
	// Reset clears per-run state at the start of an invocation, keeping
	// entries for the two reserved ids.
	Reset()
	// NewRun initializes the attribute of a fresh run from its first cell.
	NewRun(id, i, j int)
	// Extend folds cell (i, j) into the attribute of the run's root.
	Extend(root, i, j int)
	// Merge folds the absorbed root's attribute into the kept root's.
	Merge(kept, absorbed int)
	// Paint writes the canonical attribute of root into the decorator's
	// ghosted field for the n cells starting at global cell (x, y).
	Paint(root, x, y, n int)
	// Exchange swaps the decorator's ghost margins with neighboring ranks.
	// Collective; called once per relaxation round.
	Exchange() error
	// Margin absorbs ghost-copied neighbor attributes at the owned edge cell
	// (i, j), whose component root is given. A direction flag is set only
	// when that side crosses to another rank AND the ghost neighbor is
	// foreground. Reports whether the root's attribute changed.
	Margin(root, i, j int, north, east, south, west bool) bool
}
