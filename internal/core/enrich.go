package core

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/valter-silva-au/bookmark-brain/internal/storage"
	"github.com/valter-silva-au/bookmark-brain/pkg/models"
)

// Enrichment is the graph metadata computed for one note.
type Enrichment struct {
	Matched     []models.Topic
	Tags        []string
	Links       []string
	IndexTarget string
}

// TopicIDs returns the IDs of the matched topics, in match order.
func (e Enrichment) TopicIDs() []string {
	ids := make([]string, len(e.Matched))
	for i, t := range e.Matched {
		ids[i] = t.ID
	}
	return ids
}

// Enricher combines the topic matcher, graph builder, and rewriter into the
// single-note enrichment pipeline. All methods are pure computations.
type Enricher struct {
	matcher  TopicMatcher
	graph    *GraphBuilder
	rewriter *Rewriter
}

// NewEnricher creates an Enricher from its three collaborators.
func NewEnricher(matcher TopicMatcher, graph *GraphBuilder, rewriter *Rewriter) *Enricher {
	return &Enricher{matcher: matcher, graph: graph, rewriter: rewriter}
}

// Analyze matches topics and derives all graph metadata at once.
func (e *Enricher) Analyze(title, body, contentType, author string) Enrichment {
	matched := e.matcher.Match(title, body)
	return Enrichment{
		Matched:     matched,
		Tags:        e.graph.BuildTags(matched, contentType, author),
		Links:       e.graph.BuildLinks(matched, author),
		IndexTarget: ResolveIndex(matched),
	}
}

// RewriteNote analyzes a parsed note and returns the rewritten document
// text together with the computed enrichment. fallbackTitle is used when
// the note has no title field (typically the filename without extension).
func (e *Enricher) RewriteNote(note *models.Note, fallbackTitle string) (string, Enrichment) {
	title := note.FieldOr("title", fallbackTitle)
	author := note.FieldOr("author", "")
	contentType := note.FieldOr("type", "tweet")

	enrichment := e.Analyze(title, note.Body, contentType, author)
	rewritten := e.rewriter.Rewrite(note, enrichment.Tags, enrichment.Links, enrichment.IndexTarget)
	return rewritten, enrichment
}

// BatchOptions controls a batch enrichment run.
type BatchOptions struct {
	// DryRun classifies and reports without writing anything back.
	DryRun bool
	// Limit caps the number of notes processed (0 = no cap), taken in
	// sorted filename order.
	Limit int
}

// CountEntry is one key/count pair in an aggregate statistic.
type CountEntry struct {
	Key   string
	Count int
}

// FileResult records the outcome for a single processed note.
type FileResult struct {
	Name        string
	TopicIDs    []string
	IndexTarget string
}

// BatchStats aggregates a batch run. Topics and Indexes are sorted by
// frequency descending, ties broken by discovery order, so output is
// deterministic regardless of how the run was executed.
type BatchStats struct {
	Total    int
	Enriched int
	NoTopics int
	Topics   []CountEntry
	Indexes  []CountEntry
	Results  []FileResult
}

// BatchEnricher applies the Enricher across a directory of notes, strictly
// sequentially. Per-note processing shares no mutable state beyond the
// aggregate counters.
type BatchEnricher struct {
	enricher *Enricher
	store    storage.NoteStore
}

// NewBatchEnricher creates a BatchEnricher writing through the given store.
func NewBatchEnricher(enricher *Enricher, store storage.NoteStore) *BatchEnricher {
	return &BatchEnricher{enricher: enricher, store: store}
}

// Run enriches every .md note under dir in sorted filename order. An
// exclusive lock on the vault guards against interleaved concurrent runs.
// File-system errors are not masked; they abort the run and propagate to
// the caller.
func (b *BatchEnricher) Run(dir string, opts BatchOptions) (*BatchStats, error) {
	unlock, err := lockFile(filepath.Join(dir, ".bkb.lock"))
	if err != nil {
		return nil, fmt.Errorf("locking vault: %w", err)
	}
	defer func() { _ = unlock() }()

	names, err := b.store.List(dir)
	if err != nil {
		return nil, fmt.Errorf("listing notes: %w", err)
	}
	if opts.Limit > 0 && len(names) > opts.Limit {
		names = names[:opts.Limit]
	}

	stats := &BatchStats{}
	topicCounts := newOrderedCounter()
	indexCounts := newOrderedCounter()

	for _, name := range names {
		path := filepath.Join(dir, name)
		content, err := b.store.Read(path)
		if err != nil {
			return nil, fmt.Errorf("reading note %s: %w", name, err)
		}

		note := ParseNote(content)
		rewritten, enrichment := b.enricher.RewriteNote(note, strings.TrimSuffix(name, ".md"))

		stats.Total++
		if len(enrichment.Matched) == 0 {
			stats.NoTopics++
		}
		for _, t := range enrichment.Matched {
			topicCounts.Add(t.ID)
		}
		if enrichment.IndexTarget != "" {
			indexCounts.Add(enrichment.IndexTarget)
		}
		stats.Results = append(stats.Results, FileResult{
			Name:        name,
			TopicIDs:    enrichment.TopicIDs(),
			IndexTarget: enrichment.IndexTarget,
		})

		if !opts.DryRun {
			if err := b.store.Write(path, rewritten); err != nil {
				return nil, fmt.Errorf("writing note %s: %w", name, err)
			}
		}
		stats.Enriched++
	}

	stats.Topics = topicCounts.Entries()
	stats.Indexes = indexCounts.Entries()
	return stats, nil
}

// orderedCounter counts keys while remembering first-seen order, so that
// frequency ties resolve deterministically.
type orderedCounter struct {
	counts map[string]int
	order  []string
}

func newOrderedCounter() *orderedCounter {
	return &orderedCounter{counts: make(map[string]int)}
}

func (c *orderedCounter) Add(key string) {
	if _, ok := c.counts[key]; !ok {
		c.order = append(c.order, key)
	}
	c.counts[key]++
}

// Entries returns the counts sorted by frequency descending, ties by
// discovery order.
func (c *orderedCounter) Entries() []CountEntry {
	entries := make([]CountEntry, 0, len(c.order))
	for _, key := range c.order {
		entries = append(entries, CountEntry{Key: key, Count: c.counts[key]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	return entries
}
