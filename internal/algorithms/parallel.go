// Row-parallel helper shared by engines with independent destination rows
package algorithms

import (
	"golang.org/x/sync/errgroup"
)

// forEachRow calls fn for every y in [0, height), splitting the rows into
// contiguous bands processed by at most p.workers goroutines. It returns once
// every row is done.
func (p *Processor) forEachRow(height int, fn func(y int)) {
	workers := p.workers
	if workers > height {
		workers = height
	}
	if workers <= 1 {
		for y := 0; y < height; y++ {
			fn(y)
		}
		return
	}

	band := (height + workers - 1) / workers
	var g errgroup.Group
	g.SetLimit(workers)
	for start := 0; start < height; start += band {
		end := min(start+band, height)
		g.Go(func() error {
			for y := start; y < end; y++ {
				fn(y)
			}
			return nil
		})
	}
	_ = g.Wait()
}
