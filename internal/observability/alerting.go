package observability

import (
	"fmt"
	"sort"
	"time"
)

// AlertSeverity represents the urgency of an alert.
type AlertSeverity string

const (
	SeverityHigh   AlertSeverity = "high"
	SeverityMedium AlertSeverity = "medium"
	SeverityLow    AlertSeverity = "low"
)

// Alert represents a triggered alert condition.
type Alert struct {
	ID          string        `json:"id"`
	Condition   string        `json:"condition"`
	Severity    AlertSeverity `json:"severity"`
	Message     string        `json:"message"`
	TriggeredAt time.Time     `json:"triggered_at"`
}

// AlertThresholds configures when classification-quality alerts should fire.
type AlertThresholds struct {
	// NoTopicPercent fires when more than this share of enriched notes
	// matched no topic at all.
	NoTopicPercent int `yaml:"no_topic_percent" json:"no_topic_percent"`
	// UnknownShapePercent fires when more than this share of classified
	// content fell through the cascade to the unknown shape.
	UnknownShapePercent int `yaml:"unknown_shape_percent" json:"unknown_shape_percent"`
	// DominancePercent fires when a single topic accounts for more than
	// this share of all topic matches, which usually means one of its
	// patterns is too greedy.
	DominancePercent int `yaml:"dominance_percent" json:"dominance_percent"`
	// MinSample is the minimum number of events a rate condition needs
	// before it is evaluated.
	MinSample int `yaml:"min_sample" json:"min_sample"`
}

// DefaultAlertThresholds returns sensible defaults for alert thresholds.
func DefaultAlertThresholds() AlertThresholds {
	return AlertThresholds{
		NoTopicPercent:      40,
		UnknownShapePercent: 50,
		DominancePercent:    60,
		MinSample:           20,
	}
}

// AlertEngine evaluates alert conditions against the event log.
type AlertEngine interface {
	Evaluate() ([]Alert, error)
}

// alertEngine implements AlertEngine by reading events and checking thresholds.
type alertEngine struct {
	eventLog   EventLog
	thresholds AlertThresholds
}

// NewAlertEngine creates a new AlertEngine with the given EventLog and thresholds.
func NewAlertEngine(eventLog EventLog, thresholds AlertThresholds) AlertEngine {
	return &alertEngine{
		eventLog:   eventLog,
		thresholds: thresholds,
	}
}

// Evaluate reads events and checks all alert conditions, returning any triggered alerts.
func (ae *alertEngine) Evaluate() ([]Alert, error) {
	now := time.Now().UTC()
	var alerts []Alert

	coverageAlerts, err := ae.checkTopicCoverage(now)
	if err != nil {
		return nil, fmt.Errorf("checking topic coverage: %w", err)
	}
	alerts = append(alerts, coverageAlerts...)

	shapeAlerts, err := ae.checkUnknownShapes(now)
	if err != nil {
		return nil, fmt.Errorf("checking unknown shapes: %w", err)
	}
	alerts = append(alerts, shapeAlerts...)

	dominanceAlerts, err := ae.checkTopicDominance(now)
	if err != nil {
		return nil, fmt.Errorf("checking topic dominance: %w", err)
	}
	alerts = append(alerts, dominanceAlerts...)

	return alerts, nil
}

// checkTopicCoverage fires when too many enriched notes matched no topic.
func (ae *alertEngine) checkTopicCoverage(now time.Time) ([]Alert, error) {
	events, err := ae.eventLog.Read(EventFilter{Type: EventNoteEnriched})
	if err != nil {
		return nil, err
	}
	if len(events) < ae.thresholds.MinSample {
		return nil, nil
	}

	noTopic := 0
	for _, event := range events {
		topics, ok := event.Data["topics"].([]any)
		if !ok || len(topics) == 0 {
			noTopic++
		}
	}

	percent := noTopic * 100 / len(events)
	if percent <= ae.thresholds.NoTopicPercent {
		return nil, nil
	}
	return []Alert{{
		ID:          "topic-coverage",
		Condition:   "no_topic_rate_too_high",
		Severity:    SeverityHigh,
		Message:     fmt.Sprintf("%d%% of %d enriched notes matched no topic, exceeding %d%%", percent, len(events), ae.thresholds.NoTopicPercent),
		TriggeredAt: now,
	}}, nil
}

// checkUnknownShapes fires when the shape cascade falls through too often.
func (ae *alertEngine) checkUnknownShapes(now time.Time) ([]Alert, error) {
	events, err := ae.eventLog.Read(EventFilter{Type: EventContentClassified})
	if err != nil {
		return nil, err
	}
	if len(events) < ae.thresholds.MinSample {
		return nil, nil
	}

	unknown := 0
	for _, event := range events {
		if shape, ok := event.Data["shape"].(string); ok && shape == "unknown" {
			unknown++
		}
	}

	percent := unknown * 100 / len(events)
	if percent <= ae.thresholds.UnknownShapePercent {
		return nil, nil
	}
	return []Alert{{
		ID:          "shape-coverage",
		Condition:   "unknown_shape_rate_too_high",
		Severity:    SeverityMedium,
		Message:     fmt.Sprintf("%d%% of %d classified items fell through to the unknown shape, exceeding %d%%", percent, len(events), ae.thresholds.UnknownShapePercent),
		TriggeredAt: now,
	}}, nil
}

// checkTopicDominance fires when one topic swallows a disproportionate
// share of all matches.
func (ae *alertEngine) checkTopicDominance(now time.Time) ([]Alert, error) {
	events, err := ae.eventLog.Read(EventFilter{Type: EventNoteEnriched})
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	total := 0
	for _, event := range events {
		topics, ok := event.Data["topics"].([]any)
		if !ok {
			continue
		}
		for _, raw := range topics {
			if id, ok := raw.(string); ok {
				counts[id]++
				total++
			}
		}
	}
	if total < ae.thresholds.MinSample {
		return nil, nil
	}

	ids := make([]string, 0, len(counts))
	for id := range counts {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var alerts []Alert
	for _, id := range ids {
		percent := counts[id] * 100 / total
		if percent > ae.thresholds.DominancePercent {
			alerts = append(alerts, Alert{
				ID:          fmt.Sprintf("dominance-%s", id),
				Condition:   "topic_dominates_matches",
				Severity:    SeverityLow,
				Message:     fmt.Sprintf("topic %s accounts for %d%% of all matches, exceeding %d%%", id, percent, ae.thresholds.DominancePercent),
				TriggeredAt: now,
			})
		}
	}
	return alerts, nil
}
