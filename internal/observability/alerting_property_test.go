package observability

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"pgregory.net/rapid"
)

// The coverage alert fires exactly when the unmatched share exceeds the
// threshold and the sample is large enough, for any mix of matched and
// unmatched enrichment events.
func TestAlertCoverageThresholdExact(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		dir := t.TempDir()
		el, err := NewJSONLEventLog(filepath.Join(dir, "events.jsonl"))
		if err != nil {
			t.Fatalf("creating event log: %v", err)
		}
		defer el.Close()

		matched := rapid.IntRange(0, 40).Draw(rt, "matched")
		unmatched := rapid.IntRange(0, 40).Draw(rt, "unmatched")
		base := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

		for i := 0; i < matched+unmatched; i++ {
			topics := []any{"llm"}
			if i >= matched {
				topics = []any{}
			}
			event := Event{
				Time:    base.Add(time.Duration(i) * time.Minute),
				Level:   "INFO",
				Type:    EventNoteEnriched,
				Message: "enriched note",
				Data:    map[string]any{"note": fmt.Sprintf("n-%03d.md", i), "topics": topics},
			}
			if err := el.Write(event); err != nil {
				t.Fatalf("writing event: %v", err)
			}
		}

		thresholds := DefaultAlertThresholds()
		engine := NewAlertEngine(el, thresholds)
		alerts, err := engine.Evaluate()
		if err != nil {
			t.Fatalf("evaluating alerts: %v", err)
		}

		fired := findAlert(alerts, "no_topic_rate_too_high") != nil

		total := matched + unmatched
		shouldFire := false
		if total >= thresholds.MinSample {
			shouldFire = unmatched*100/total > thresholds.NoTopicPercent
		}

		if fired != shouldFire {
			t.Errorf("matched=%d unmatched=%d: fired=%v, want %v", matched, unmatched, fired, shouldFire)
		}
	})
}

// Alert evaluation never mutates the log: evaluating twice over the same
// events yields identical alert sets.
func TestAlertEvaluationDeterministic(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		dir := t.TempDir()
		el, err := NewJSONLEventLog(filepath.Join(dir, "events.jsonl"))
		if err != nil {
			t.Fatalf("creating event log: %v", err)
		}
		defer el.Close()

		numEvents := rapid.IntRange(0, 50).Draw(rt, "numEvents")
		base := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
		topicPool := []string{"meme", "llm", "rust"}

		for i := 0; i < numEvents; i++ {
			topic := rapid.SampledFrom(topicPool).Draw(rt, fmt.Sprintf("topic_%d", i))
			event := Event{
				Time:    base.Add(time.Duration(i) * time.Minute),
				Level:   "INFO",
				Type:    EventNoteEnriched,
				Message: "enriched note",
				Data:    map[string]any{"note": fmt.Sprintf("n-%03d.md", i), "topics": []any{topic}},
			}
			if err := el.Write(event); err != nil {
				t.Fatalf("writing event: %v", err)
			}
		}

		engine := NewAlertEngine(el, DefaultAlertThresholds())
		first, err := engine.Evaluate()
		if err != nil {
			t.Fatalf("first evaluation: %v", err)
		}
		second, err := engine.Evaluate()
		if err != nil {
			t.Fatalf("second evaluation: %v", err)
		}

		if len(first) != len(second) {
			t.Fatalf("evaluation not deterministic: %d alerts then %d", len(first), len(second))
		}
		for i := range first {
			if first[i].ID != second[i].ID || first[i].Condition != second[i].Condition {
				t.Errorf("alert %d differs between evaluations: %+v vs %+v", i, first[i], second[i])
			}
		}
	})
}
