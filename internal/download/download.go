// Package download runs a batch of fetch tasks with bounded concurrency,
// hash-verified skip semantics, and progress reporting, per spec.md §4.E.
package download

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/semaphore"

	"github.com/brightforge/mlcore/events"
	"github.com/brightforge/mlcore/internal/fetch"
	"github.com/brightforge/mlcore/internal/hash"
)

// DefaultParallelism is spec.md §4.E's default bound: 16 in-flight fetches.
// Callers pass Config.DownloadParallelism through to Run instead of relying
// on this constant directly, so the bound stays overridable (e.g. for
// tests); Run falls back to this value when given a non-positive bound.
const DefaultParallelism = 16

// Task is a download unit: a URL, a destination path, and an optional
// expected SHA-1. A task whose destination is missing always runs. When Run
// verifies existing files, a task with an empty SHA1 is unverifiable and
// runs, and one with a SHA1 is skipped when the destination already matches.
type Task struct {
	URL  string
	Dest string
	SHA1 string
	Size int64
}

// Result is the outcome of running a batch: the surviving (post-filter)
// count, how many of those failed, their total size, and every error.
type Result struct {
	Total  int
	Failed int
	Bytes  int64
	Errors []error
}

// Run executes tasks with bounded parallelism. verifyExisting controls the
// pre-filter (spec.md §4.E step 2): when false, any task whose destination
// file already exists is dropped regardless of hash. When true, a hash
// mismatch (or absent SHA1) keeps the task in the batch.
//
// Ordering is not guaranteed among sibling downloads; the only
// synchronization is the monotonically increasing progress counter.
//
// parallelism bounds in-flight fetches; a non-positive value falls back to
// DefaultParallelism.
func Run(ctx context.Context, tasks []Task, verifyExisting bool, parallelism int, obs events.DownloadObserver) Result {
	obs.Start()

	if parallelism <= 0 {
		parallelism = DefaultParallelism
	}

	surviving := preFilter(tasks, verifyExisting)
	total := len(surviving)

	var totalBytes int64
	for _, t := range surviving {
		totalBytes += t.Size
	}
	if totalBytes > 0 {
		logrus.WithField("size", HumanizeBytes(totalBytes)).Debug("download batch size")
	}

	if total == 0 {
		obs.Report(events.Progress{Completed: 0, Total: 0, Step: 2})
		obs.Succeed()
		return Result{Total: 0}
	}

	sem := semaphore.NewWeighted(int64(parallelism))
	var completed int64
	var mu sync.Mutex
	var errsOut []error

	var wg sync.WaitGroup
	for _, t := range surviving {
		t := t
		wg.Add(1)
		if err := sem.Acquire(ctx, 1); err != nil {
			// Context cancelled: record and stop launching new fetches, but
			// still drain what's already in flight via the WaitGroup below.
			mu.Lock()
			errsOut = append(errsOut, err)
			mu.Unlock()
			wg.Done()
			continue
		}
		go func() {
			defer wg.Done()
			defer sem.Release(1)

			err := fetch.File(fetch.Task{URL: t.URL, Dest: t.Dest})

			n := atomic.AddInt64(&completed, 1)
			mu.Lock()
			if err != nil {
				errsOut = append(errsOut, err)
				logrus.WithFields(logrus.Fields{"url": t.URL, "dest": t.Dest}).WithError(err).Warn("download task failed")
			}
			mu.Unlock()

			obs.Report(events.Progress{Completed: int(n), Total: total, Step: 2})
		}()
	}
	wg.Wait()

	res := Result{Total: total, Failed: len(errsOut), Bytes: totalBytes, Errors: errsOut}
	if len(errsOut) > 0 {
		obs.Failed(errsOut)
	} else {
		obs.Succeed()
	}
	return res
}

// preFilter drops tasks that don't need to run: the destination is absent
// -> keep; verifyExisting is false -> drop existing files outright; SHA1
// absent -> keep (unverifiable, always runs); SHA1 present -> keep only on
// mismatch. This is sequential and CPU-bound (hashing), matching spec.md
// §4.E step 2; callers wanting it off the caller's goroutine can wrap Run
// in their own goroutine.
func preFilter(tasks []Task, verifyExisting bool) []Task {
	surviving := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if !fileExists(t.Dest) {
			surviving = append(surviving, t)
			continue
		}
		if !verifyExisting {
			continue
		}
		if t.SHA1 == "" {
			surviving = append(surviving, t)
			continue
		}
		if !hash.Matches(t.Dest, t.SHA1) {
			surviving = append(surviving, t)
		}
	}
	logrus.WithFields(logrus.Fields{
		"submitted": len(tasks),
		"surviving": len(surviving),
	}).Debug("download pre-filter complete")
	return surviving
}

func fileExists(path string) bool {
	return statOK(path)
}

// HumanizeBytes is a thin seam kept for callers that want to log a task's
// size once known (e.g. from an asset index entry) without importing
// humanize themselves.
func HumanizeBytes(n int64) string {
	return humanize.Bytes(uint64(n))
}
