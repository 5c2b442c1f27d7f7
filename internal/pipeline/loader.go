package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/theirongolddev/wrapped/internal/model"
	"github.com/theirongolddev/wrapped/internal/source"
	"github.com/theirongolddev/wrapped/internal/store"
)

// LoadResult holds the output of the export loading pipeline.
type LoadResult struct {
	Transactions []model.Transaction
	TotalFiles   int
	ParsedFiles  int
	ParseErrors  int
	FileErrors   int
	AccountCount int
}

// ProgressFunc is called during loading to report progress.
// current is the number of files processed so far, total is the count.
type ProgressFunc func(current, total int)

// Load discovers and parses all ledger export files from the given
// directory using a bounded worker pool.
func Load(ledgerDir string, progressFn ProgressFunc) (*LoadResult, error) {
	files, err := source.ScanDir(ledgerDir)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", ledgerDir, err)
	}

	result := &LoadResult{
		TotalFiles:   len(files),
		AccountCount: source.CountAccounts(files),
	}
	if len(files) == 0 {
		return result, nil
	}

	results := parseParallel(files, 0, len(files), progressFn)

	for _, pr := range results {
		if pr.Err != nil {
			result.FileErrors++
			continue
		}
		result.ParsedFiles++
		result.ParseErrors += pr.ParseErrors
		result.Transactions = append(result.Transactions, pr.Transactions...)
	}

	sortTransactions(result.Transactions)
	return result, nil
}

// CachedLoadResult extends LoadResult with cache metadata.
type CachedLoadResult struct {
	LoadResult
	CacheHits int
	Reparsed  int
}

// LoadWithCache discovers files, diffs them against the cache by mtime and
// size, parses only the changed ones, and returns the combined set.
func LoadWithCache(ledgerDir string, cache *store.Cache, progressFn ProgressFunc) (*CachedLoadResult, error) {
	files, err := source.ScanDir(ledgerDir)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", ledgerDir, err)
	}

	result := &CachedLoadResult{
		LoadResult: LoadResult{
			TotalFiles:   len(files),
			AccountCount: source.CountAccounts(files),
		},
	}
	if len(files) == 0 {
		return result, nil
	}

	tracked, err := cache.GetTrackedFiles()
	if err != nil {
		return nil, fmt.Errorf("reading cache: %w", err)
	}

	var toReparse []source.DiscoveredFile
	unchanged := make(map[string]struct{})

	for _, f := range files {
		info, err := os.Stat(f.Path)
		if err != nil {
			continue
		}

		cached, ok := tracked[f.Path]
		if ok && cached.MtimeNs == info.ModTime().UnixNano() && cached.SizeBytes == info.Size() {
			unchanged[f.Path] = struct{}{}
		} else {
			toReparse = append(toReparse, f)
		}
	}

	result.CacheHits = len(unchanged)
	result.Reparsed = len(toReparse)

	if len(unchanged) > 0 {
		cached, err := cache.LoadAll()
		if err != nil {
			return nil, fmt.Errorf("loading cached transactions: %w", err)
		}
		for _, t := range cached {
			if _, ok := unchanged[t.SourceFile]; ok {
				result.Transactions = append(result.Transactions, t)
			}
		}
		result.ParsedFiles += len(unchanged)
	}

	if len(toReparse) > 0 {
		results := parseParallel(toReparse, result.CacheHits, result.TotalFiles, progressFn)

		for i, pr := range results {
			if pr.Err != nil {
				result.FileErrors++
				continue
			}
			result.ParsedFiles++
			result.ParseErrors += pr.ParseErrors
			result.Transactions = append(result.Transactions, pr.Transactions...)

			info, err := os.Stat(toReparse[i].Path)
			if err == nil {
				_ = cache.SaveFile(toReparse[i].Path, pr.Transactions, info.ModTime().UnixNano(), info.Size())
			}
		}
	}

	sortTransactions(result.Transactions)
	return result, nil
}

// parseParallel runs ParseFile over the files with a bounded worker pool.
func parseParallel(files []source.DiscoveredFile, progressBase, progressTotal int, progressFn ProgressFunc) []source.ParseResult {
	numWorkers := runtime.GOMAXPROCS(0)
	if numWorkers < 1 {
		numWorkers = 4
	}
	if numWorkers > len(files) {
		numWorkers = len(files)
	}

	work := make(chan int, len(files))
	results := make([]source.ParseResult, len(files))
	var wg sync.WaitGroup
	var processed atomic.Int64

	for i := range files {
		work <- i
	}
	close(work)

	wg.Add(numWorkers)
	for w := 0; w < numWorkers; w++ {
		go func() {
			defer wg.Done()
			for idx := range work {
				results[idx] = source.ParseFile(files[idx])
				n := processed.Add(1)
				if progressFn != nil {
					progressFn(int(n)+progressBase, progressTotal)
				}
			}
		}()
	}

	wg.Wait()
	return results
}

// sortTransactions orders by date then id so the pipeline input is
// deterministic regardless of parse order.
func sortTransactions(txns []model.Transaction) {
	sort.Slice(txns, func(i, j int) bool {
		if !txns[i].Date.Equal(txns[j].Date) {
			return txns[i].Date.Before(txns[j].Date)
		}
		return txns[i].ID < txns[j].ID
	})
}

// CacheDir returns the platform-appropriate cache directory.
func CacheDir() string {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, "wrapped")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".cache", "wrapped")
}

// CachePath returns the full path to the cache database.
func CachePath() string {
	return filepath.Join(CacheDir(), "ledger.db")
}
