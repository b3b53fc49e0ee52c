package field

import (
	"runtime"
	"sync"
)

// minRowsPerWorker keeps small grids on the calling goroutine.
const minRowsPerWorker = 32

// parallelRows runs fn over [0, n) split into contiguous chunks, one
// goroutine per chunk. Chunks never overlap, so fn may write to its own
// rows without locking.
func parallelRows(n int, fn func(start, end int)) {
	workers := runtime.GOMAXPROCS(0)
	if n/minRowsPerWorker < workers {
		workers = n / minRowsPerWorker
	}
	if workers <= 1 {
		fn(0, n)
		return
	}

	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}
	wg.Wait()
}
