package cc

// LabelGrid labels the connected components of a plain, non-distributed
// row-major grid of mx × my cells. No relaxation rounds are needed; the
// returned label slice already holds canonical roots (None for background).
//
// It backs single-rank work over gathered global grids, such as conservative
// per-component accumulation.
func LabelGrid(mx, my int, fg Predicate) (*Runs, []int, error) {
	if fg == nil {
		return nil, nil, ErrNilPredicate
	}
	if mx < 1 || my < 1 {
		return nil, nil, ErrGridExtent
	}

	runs := NewRuns()
	labels := make([]int, mx*my)
	for j := 0; j < my; j++ {
		cur := None
		for i := 0; i < mx; i++ {
			if !fg(i, j) {
				cur = None
				continue
			}
			if cur == None {
				cur = runs.NewRun(i, j)
			} else {
				runs.Extend(cur)
			}
			if j > 0 {
				if south := labels[(j-1)*mx+i]; south != None {
					runs.Union(cur, south)
				}
			}
			labels[j*mx+i] = cur
		}
	}
	for k, id := range labels {
		if id != None {
			labels[k] = runs.Root(id)
		}
	}

	return runs, labels, nil
}
