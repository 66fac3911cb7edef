package scan

import (
	"os"
	"sort"
	"sync"
)

// Entry is one discovered junk path. Immutable once built; discarded after
// the invocation.
type Entry struct {
	Path  string
	Size  int64
	IsDir bool
}

// DisplayPath returns the path with a trailing separator for directories.
func (e Entry) DisplayPath() string {
	if e.IsDir {
		return e.Path + string(os.PathSeparator)
	}
	return e.Path
}

// Build turns matched paths into a catalog sorted by size descending. Paths
// that fail to stat are dropped. Sizes are computed concurrently; the sort is
// stable on discovery order, so the result is deterministic regardless of
// completion order.
func Build(paths []string, sizer *Sizer) []Entry {
	results := make([]*Entry, len(paths))
	var wg sync.WaitGroup

	for i, path := range paths {
		i, path := i, path
		wg.Add(1)
		go func() {
			defer wg.Done()
			info, err := os.Lstat(path)
			if err != nil {
				// Raced away since matching. Drop it.
				return
			}
			results[i] = &Entry{
				Path:  path,
				Size:  sizer.Size(path),
				IsDir: info.IsDir(),
			}
		}()
	}
	wg.Wait()

	entries := make([]Entry, 0, len(paths))
	for _, r := range results {
		if r != nil {
			entries = append(entries, *r)
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Size > entries[j].Size
	})
	return entries
}

// Total returns the summed size of all entries.
func Total(entries []Entry) int64 {
	var total int64
	for _, e := range entries {
		total += e.Size
	}
	return total
}
