// Package parallel splits index ranges across goroutines.
package parallel

import (
	"runtime"
	"sync"
)

// Workers returns how many goroutines Parallelize would start for items.
func Workers(items int) int {
	if items <= 0 {
		return 0
	}
	n := runtime.NumCPU()
	if n > items {
		n = items
	}
	return n
}

// Parallelize divides [0, items) into contiguous ranges, one per worker,
// and calls fn(start, end) for each range concurrently. It returns once
// every call has finished. A panic in any worker is re-raised in the
// caller's goroutine after all workers are done.
func Parallelize(items int, fn func(start, end int)) {
	numWorkers := Workers(items)
	if numWorkers == 0 {
		return
	}
	if numWorkers == 1 {
		fn(0, items)
		return
	}

	// ceiling division
	chunkSize := (items + numWorkers - 1) / numWorkers

	var (
		wg        sync.WaitGroup
		panicOnce sync.Once
		panicVal  interface{}
	)
	for start := 0; start < items; start += chunkSize {
		end := start + chunkSize
		if end > items {
			end = items
		}

		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					panicOnce.Do(func() { panicVal = r })
				}
			}()
			fn(s, e)
		}(start, end)
	}
	wg.Wait()

	if panicVal != nil {
		panic(panicVal)
	}
}

// ParallelizeWithThreshold runs fn(0, items) on the calling goroutine when
// items <= threshold, and falls back to Parallelize otherwise.
func ParallelizeWithThreshold(items int, threshold int, fn func(start, end int)) {
	if items <= threshold {
		if items > 0 {
			fn(0, items)
		}
		return
	}
	Parallelize(items, fn)
}
