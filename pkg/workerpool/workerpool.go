// Package workerpool runs bounded concurrent work over a slice.
package workerpool

import (
	"context"
	"sync"
	"sync/atomic"
)

// Process runs process for every item on workerCount goroutines and returns
// how many items completed without error. The first error cancels the
// remaining work; onCancel, when set, receives that error once.
func Process[T any](
	ctx context.Context,
	workerCount int,
	items []T,
	process func(context.Context, T) error,
	onCancel func(error),
) (int, error) {
	if workerCount <= 0 {
		workerCount = 1
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		done     atomic.Int64
		once     sync.Once
		firstErr error
		wg       sync.WaitGroup
	)
	fail := func(err error) {
		once.Do(func() {
			firstErr = err
			if onCancel != nil {
				onCancel(err)
			}
			cancel()
		})
	}

	tasks := make(chan T, workerCount)
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case item, ok := <-tasks:
					if !ok {
						return
					}
					if err := process(ctx, item); err != nil {
						fail(err)
						return
					}
					done.Add(1)
				}
			}
		}()
	}

	go func() {
		defer close(tasks)
		for _, item := range items {
			select {
			case <-ctx.Done():
				return
			case tasks <- item:
			}
		}
	}()

	wg.Wait()

	processed := int(done.Load())
	if firstErr != nil {
		return processed, firstErr
	}
	if processed < len(items) {
		return processed, ctx.Err()
	}
	return processed, nil
}
