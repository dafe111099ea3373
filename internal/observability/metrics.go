package observability

import (
	"fmt"
	"time"
)

// Event types recorded by the pipeline.
const (
	EventNoteEnriched      = "note.enriched"
	EventContentClassified = "content.classified"
	EventPromptBuilt       = "prompt.built"
)

// Metrics holds calculated metrics derived from the event log.
type Metrics struct {
	NotesEnriched  int            `json:"notes_enriched"`
	NoTopicMatches int            `json:"no_topic_matches"`
	TopicCounts    map[string]int `json:"topic_counts"`
	ShapeCounts    map[string]int `json:"shape_counts"`
	PromptsBuilt   int            `json:"prompts_built"`
	EventCount     int            `json:"event_count"`
	OldestEvent    *time.Time     `json:"oldest_event,omitempty"`
	NewestEvent    *time.Time     `json:"newest_event,omitempty"`
}

// MetricsCalculator derives metrics from the event log.
type MetricsCalculator interface {
	Calculate(since time.Time) (*Metrics, error)
}

// metricsCalculator implements MetricsCalculator by reading from an EventLog.
type metricsCalculator struct {
	eventLog EventLog
}

// NewMetricsCalculator creates a new MetricsCalculator that reads from the given EventLog.
func NewMetricsCalculator(eventLog EventLog) MetricsCalculator {
	return &metricsCalculator{eventLog: eventLog}
}

// Calculate reads all events since the given time and aggregates them into metrics.
func (mc *metricsCalculator) Calculate(since time.Time) (*Metrics, error) {
	events, err := mc.eventLog.Read(EventFilter{Since: &since})
	if err != nil {
		return nil, fmt.Errorf("reading events for metrics: %w", err)
	}

	m := &Metrics{
		TopicCounts: make(map[string]int),
		ShapeCounts: make(map[string]int),
	}

	m.EventCount = len(events)

	for i, event := range events {
		if i == 0 {
			t := event.Time
			m.OldestEvent = &t
		}
		t := event.Time
		m.NewestEvent = &t

		switch event.Type {
		case EventNoteEnriched:
			m.NotesEnriched++
			topics, ok := event.Data["topics"].([]any)
			if !ok || len(topics) == 0 {
				m.NoTopicMatches++
				continue
			}
			for _, raw := range topics {
				if id, ok := raw.(string); ok {
					m.TopicCounts[id]++
				}
			}
		case EventContentClassified:
			if shape, ok := event.Data["shape"].(string); ok {
				m.ShapeCounts[shape]++
			}
		case EventPromptBuilt:
			m.PromptsBuilt++
		}
	}

	return m, nil
}
