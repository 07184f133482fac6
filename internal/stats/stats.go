// Package stats derives live aggregate statistics over the selection set
// without re-reading unchanged files.
package stats

import (
	"os"
	"strings"
	"time"
	"unicode"
)

// Aggregate sums the stats of every readable selected file.
type Aggregate struct {
	Files  int
	Lines  int
	Chars  int
	Tokens int
}

// fileStat caches one file's counts keyed by its staleness signature.
type fileStat struct {
	lines  int
	chars  int
	tokens int
	size   int64
	mtime  time.Time
}

// Aggregator computes selection-wide stats, caching per-file counts by
// size+mtime so unchanged files are not re-read. It is touched only from the
// single control thread, so no locking is needed.
type Aggregator struct {
	counter Counter
	cache   map[string]fileStat
}

// NewAggregator returns an Aggregator using counter for token counts.
func NewAggregator(counter Counter) *Aggregator {
	return &Aggregator{
		counter: counter,
		cache:   make(map[string]fileStat),
	}
}

// CounterName reports which tokenizer backs the token counts.
func (a *Aggregator) CounterName() string {
	return a.counter.Name()
}

// Update recomputes aggregate stats for paths. Files that cannot be statted
// or read contribute zero to all counts and do not abort aggregation for the
// remaining selection.
func (a *Aggregator) Update(paths []string) Aggregate {
	var agg Aggregate
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			continue
		}
		cached, ok := a.cache[path]
		if !ok || cached.size != info.Size() || !cached.mtime.Equal(info.ModTime()) {
			data, err := os.ReadFile(path)
			if err != nil {
				continue
			}
			cached = a.compute(string(data))
			cached.size = info.Size()
			cached.mtime = info.ModTime()
			a.cache[path] = cached
		}
		agg.Files++
		agg.Lines += cached.lines
		agg.Chars += cached.chars
		agg.Tokens += cached.tokens
	}
	return agg
}

// compute counts non-blank lines, non-whitespace characters, and tokens.
func (a *Aggregator) compute(content string) fileStat {
	var fs fileStat
	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) != "" {
			fs.lines++
		}
	}
	for _, r := range content {
		if !unicode.IsSpace(r) {
			fs.chars++
		}
	}
	fs.tokens = a.counter.Count(content)
	return fs
}
