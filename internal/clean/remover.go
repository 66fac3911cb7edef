// Package clean removes cataloged junk entries and accounts for the bytes
// freed.
package clean

import (
	"os"
	"sort"
	"sync"

	"github.com/lakshaymaurya-felt/gitcleaner/internal/logger"
	"github.com/lakshaymaurya-felt/gitcleaner/internal/scan"
)

// maxConcurrentRemovals bounds parallel RemoveAll calls. Entries are disjoint
// subtrees (the matcher prunes nested matches), so removals never contend.
const maxConcurrentRemovals = 4

// Result summarizes one clean or dry-run pass.
type Result struct {
	// Deleted is the number of entries removed (or, in a dry run, that
	// would have been removed).
	Deleted int
	// Freed is the total size in bytes of those entries.
	Freed int64
	// Failed lists paths whose removal failed. They remain on disk.
	Failed []string
}

// Run removes every catalog entry, or in dryRun mode only tallies what a
// real run would remove. A failed removal is logged and excluded from the
// counters without stopping the remaining entries. An already-missing path
// counts as removed; its bytes are gone either way.
func Run(entries []scan.Entry, dryRun bool, log *logger.Logger) Result {
	var res Result

	if dryRun {
		for _, e := range entries {
			// The preview is the whole point of a dry run, so it is not
			// gated behind --debug.
			log.Infof("would delete %s", e.DisplayPath())
			res.Deleted++
			res.Freed += e.Size
		}
		return res
	}

	var mu sync.Mutex
	var wg sync.WaitGroup
	sem := make(chan struct{}, maxConcurrentRemovals)

	for _, e := range entries {
		e := e
		wg.Add(1)
		go func() {
			defer wg.Done()
			sem <- struct{}{}
			err := os.RemoveAll(e.Path)
			<-sem

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				log.Errorf("failed to delete %s: %v", e.DisplayPath(), err)
				res.Failed = append(res.Failed, e.Path)
				return
			}
			log.Debugf("deleted %s", e.DisplayPath())
			res.Deleted++
			res.Freed += e.Size
		}()
	}
	wg.Wait()

	sort.Strings(res.Failed)
	return res
}
