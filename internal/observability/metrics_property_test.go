package observability

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"pgregory.net/rapid"
)

// For any N note.enriched events written to the log, the calculator reports
// NotesEnriched == N and the per-topic counts sum to the number of topic
// entries written.
func TestMetricsNotesEnrichedMatchesEvents(t *testing.T) {
	topicPool := []string{"llm", "claude-code", "rust", "football", "obsidian"}

	rapid.Check(t, func(rt *rapid.T) {
		dir := t.TempDir()
		el, err := NewJSONLEventLog(filepath.Join(dir, "events.jsonl"))
		if err != nil {
			t.Fatalf("creating event log: %v", err)
		}
		defer el.Close()

		numEvents := rapid.IntRange(1, 20).Draw(rt, "numEvents")
		baseTime := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

		totalTopics := 0
		wantNoTopic := 0
		for i := 0; i < numEvents; i++ {
			n := rapid.IntRange(0, 3).Draw(rt, fmt.Sprintf("numTopics_%d", i))
			topics := make([]any, 0, n)
			for j := 0; j < n; j++ {
				topics = append(topics, rapid.SampledFrom(topicPool).Draw(rt, fmt.Sprintf("topic_%d_%d", i, j)))
			}
			totalTopics += n
			if n == 0 {
				wantNoTopic++
			}

			event := Event{
				Time:    baseTime.Add(time.Duration(i) * time.Minute),
				Level:   "INFO",
				Type:    EventNoteEnriched,
				Message: "enriched note",
				Data:    map[string]any{"note": fmt.Sprintf("note-%03d.md", i), "topics": topics},
			}
			if err := el.Write(event); err != nil {
				t.Fatalf("writing event: %v", err)
			}
		}

		calc := NewMetricsCalculator(el)
		m, err := calc.Calculate(baseTime.Add(-time.Hour))
		if err != nil {
			t.Fatalf("calculating metrics: %v", err)
		}

		if m.NotesEnriched != numEvents {
			t.Errorf("expected %d notes enriched, got %d", numEvents, m.NotesEnriched)
		}
		if m.NoTopicMatches != wantNoTopic {
			t.Errorf("expected %d no-topic notes, got %d", wantNoTopic, m.NoTopicMatches)
		}

		gotTopics := 0
		for _, c := range m.TopicCounts {
			gotTopics += c
		}
		if gotTopics != totalTopics {
			t.Errorf("expected topic counts summing to %d, got %d", totalTopics, gotTopics)
		}
	})
}

// For any mix of content.classified events, ShapeCounts sums to the number
// of classification events written, regardless of shape distribution.
func TestMetricsShapeCountsMatchEvents(t *testing.T) {
	shapePool := []string{"top_list", "tutorial_guide", "article_link", "video_content", "unknown"}

	rapid.Check(t, func(rt *rapid.T) {
		dir := t.TempDir()
		el, err := NewJSONLEventLog(filepath.Join(dir, "events.jsonl"))
		if err != nil {
			t.Fatalf("creating event log: %v", err)
		}
		defer el.Close()

		numEvents := rapid.IntRange(1, 30).Draw(rt, "numEvents")
		baseTime := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

		for i := 0; i < numEvents; i++ {
			shape := rapid.SampledFrom(shapePool).Draw(rt, fmt.Sprintf("shape_%d", i))
			event := Event{
				Time:    baseTime.Add(time.Duration(i) * time.Minute),
				Level:   "INFO",
				Type:    EventContentClassified,
				Message: "classified",
				Data:    map[string]any{"shape": shape},
			}
			if err := el.Write(event); err != nil {
				t.Fatalf("writing event: %v", err)
			}
		}

		calc := NewMetricsCalculator(el)
		m, err := calc.Calculate(baseTime.Add(-time.Hour))
		if err != nil {
			t.Fatalf("calculating metrics: %v", err)
		}

		total := 0
		for _, c := range m.ShapeCounts {
			total += c
		}
		if total != numEvents {
			t.Errorf("expected shape counts summing to %d, got %d", numEvents, total)
		}
	})
}
