package scan

import (
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/lakshaymaurya-felt/gitcleaner/internal/logger"
)

// Sizer computes recursive directory sizes with bounded parallelism.
type Sizer struct {
	sem chan struct{}
	log *logger.Logger
}

// NewSizer creates a Sizer with at most maxConcurrency directory reads in
// flight.
func NewSizer(maxConcurrency int, log *logger.Logger) *Sizer {
	if maxConcurrency <= 0 {
		maxConcurrency = 8
	}
	return &Sizer{
		sem: make(chan struct{}, maxConcurrency),
		log: log,
	}
}

// Size returns the size of path in bytes: the metadata length for a regular
// file, the recursive sum of regular-file sizes for a directory. Symlinks and
// anything unreadable contribute 0 with a warning; one bad entry never aborts
// the computation for its siblings or ancestors.
func (s *Sizer) Size(path string) int64 {
	info, err := os.Lstat(path)
	if err != nil {
		s.log.Warnf("cannot stat %s: %v", path, err)
		return 0
	}
	if info.Mode().IsRegular() {
		return info.Size()
	}
	if !info.IsDir() {
		// Symlink, device, socket. Never followed.
		return 0
	}
	return s.sizeDir(path)
}

// sizeDir sums a directory's contents, fanning out into subdirectories. The
// semaphore is held only during the ReadDir I/O to prevent deadlocks from
// nested goroutine semaphore acquisition.
func (s *Sizer) sizeDir(dir string) int64 {
	s.sem <- struct{}{}
	entries, err := os.ReadDir(dir)
	<-s.sem

	if err != nil {
		s.log.Warnf("cannot read %s: %v", dir, err)
		return 0
	}

	var total atomic.Int64
	var wg sync.WaitGroup

	for _, e := range entries {
		childPath := filepath.Join(dir, e.Name())

		if e.IsDir() {
			wg.Add(1)
			go func() {
				defer wg.Done()
				total.Add(s.sizeDir(childPath))
			}()
			continue
		}
		if !e.Type().IsRegular() {
			continue
		}

		info, err := e.Info()
		if err != nil {
			// Permission denied or a race with concurrent deletion.
			s.log.Warnf("cannot stat %s: %v", childPath, err)
			continue
		}
		total.Add(info.Size())
	}

	wg.Wait()
	return total.Load()
}
