package cli

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/valter-silva-au/bookmark-brain/internal/observability"
)

func TestNewDashboardModel(t *testing.T) {
	m := newDashboardModel()

	if m.activePanel != panelTopics {
		t.Errorf("activePanel = %d, want topics panel", m.activePanel)
	}
	if !m.loading {
		t.Error("model should start in loading state")
	}
}

func TestDashboardModel_TabCyclesPanels(t *testing.T) {
	m := newDashboardModel()

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(dashboardModel)
	if m.activePanel != panelShapes {
		t.Errorf("after tab: panel = %d, want shapes", m.activePanel)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(dashboardModel)
	if m.activePanel != panelAlerts {
		t.Errorf("after second tab: panel = %d, want alerts", m.activePanel)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(dashboardModel)
	if m.activePanel != panelTopics {
		t.Errorf("tab should wrap back to topics, got %d", m.activePanel)
	}
}

func TestDashboardModel_ShiftTabWrapsBackwards(t *testing.T) {
	m := newDashboardModel()

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(dashboardModel)
	if m.activePanel != panelAlerts {
		t.Errorf("shift+tab from topics should wrap to alerts, got %d", m.activePanel)
	}
}

func TestDashboardModel_QuitKeys(t *testing.T) {
	for _, key := range []string{"q", "esc", "ctrl+c"} {
		t.Run(key, func(t *testing.T) {
			m := newDashboardModel()

			var msg tea.KeyMsg
			switch key {
			case "q":
				msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}
			case "esc":
				msg = tea.KeyMsg{Type: tea.KeyEsc}
			case "ctrl+c":
				msg = tea.KeyMsg{Type: tea.KeyCtrlC}
			}

			_, cmd := m.Update(msg)
			if cmd == nil {
				t.Fatalf("%s should produce a quit command", key)
			}
		})
	}
}

func TestDashboardModel_WindowSize(t *testing.T) {
	m := newDashboardModel()

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = next.(dashboardModel)
	if m.width != 100 || m.height != 40 {
		t.Errorf("size = %dx%d, want 100x40", m.width, m.height)
	}
}

func TestDashboardModel_DataLoaded(t *testing.T) {
	m := newDashboardModel()

	msg := dataLoadedMsg{
		activity:    &activitySnapshot{notesEnriched: 12, noTopicMatches: 3, promptsBuilt: 5, eventCount: 20},
		topicCounts: map[string]int{"rust": 4},
		shapeCounts: map[string]int{"top_list": 2},
		alerts:      []alertSnapshot{{severity: "high", message: "coverage low"}},
	}
	next, _ := m.Update(msg)
	m = next.(dashboardModel)

	if m.loading {
		t.Error("loading should be false after data arrives")
	}
	if m.activity == nil || m.activity.notesEnriched != 12 {
		t.Errorf("activity = %+v", m.activity)
	}
	if len(m.alerts) != 1 {
		t.Errorf("alerts = %v", m.alerts)
	}
}

func TestDashboardModel_DataLoadError(t *testing.T) {
	m := newDashboardModel()

	next, _ := m.Update(dataLoadedMsg{err: errors.New("log unreadable")})
	m = next.(dashboardModel)

	if m.err == nil {
		t.Fatal("error should be recorded")
	}

	next, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = next.(dashboardModel)
	if view := m.View(); !strings.Contains(view, "log unreadable") {
		t.Errorf("view should surface the error:\n%s", view)
	}
}

func TestDashboardModel_ViewRendersPanels(t *testing.T) {
	m := newDashboardModel()

	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	m = next.(dashboardModel)
	next, _ = m.Update(dataLoadedMsg{
		activity:    &activitySnapshot{notesEnriched: 7, promptsBuilt: 2, eventCount: 10},
		topicCounts: map[string]int{"rust": 3, "llm": 1},
		shapeCounts: map[string]int{"top_list": 2},
	})
	m = next.(dashboardModel)

	view := m.View()
	for _, want := range []string{"BKB Dashboard", "Topics (7d)", "Content Shapes (7d)", "Rule Quality", "rust", "top_list"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestDashboardModel_TopicsPanelTruncates(t *testing.T) {
	m := newDashboardModel()
	m.loading = false
	m.topicCounts = make(map[string]int)
	for i := 0; i < maxDashboardRows+5; i++ {
		m.topicCounts[fmt.Sprintf("topic-%02d", i)] = i + 1
	}

	panel := m.renderTopicsPanel()
	if !strings.Contains(panel, "... and 5 more") {
		t.Errorf("topics panel should truncate past %d rows:\n%s", maxDashboardRows, panel)
	}
}

func TestCountsByFrequency(t *testing.T) {
	rows := countsByFrequency(map[string]int{"b": 2, "a": 2, "c": 5})

	want := []countRow{{"c", 5}, {"a", 2}, {"b", 2}}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("countsByFrequency = %v, want %v", rows, want)
	}
}

func TestSeverityRank(t *testing.T) {
	if !(severityRank("high") < severityRank("medium") && severityRank("medium") < severityRank("low")) {
		t.Error("severity ranks out of order")
	}
	if severityRank("unknown") <= severityRank("low") {
		t.Error("unknown severity should rank last")
	}
}

func TestLoadData(t *testing.T) {
	origCalc, origEngine := MetricsCalc, AlertEngine
	defer func() { MetricsCalc, AlertEngine = origCalc, origEngine }()

	MetricsCalc = &metricsCalcMock{
		calculateFn: func(time.Time) (*observability.Metrics, error) {
			return &observability.Metrics{
				NotesEnriched: 3,
				TopicCounts:   map[string]int{"rust": 2},
				ShapeCounts:   map[string]int{"unknown": 1},
				EventCount:    4,
			}, nil
		},
	}
	AlertEngine = &alertEngineMock{
		evaluateFn: func() ([]observability.Alert, error) {
			return []observability.Alert{
				{Severity: observability.SeverityLow, Message: "low one", TriggeredAt: time.Now()},
				{Severity: observability.SeverityHigh, Message: "high one", TriggeredAt: time.Now()},
			}, nil
		},
	}

	msg, ok := loadData().(dataLoadedMsg)
	if !ok {
		t.Fatal("loadData should return dataLoadedMsg")
	}
	if msg.err != nil {
		t.Fatalf("loadData error: %v", msg.err)
	}
	if msg.activity == nil || msg.activity.notesEnriched != 3 {
		t.Errorf("activity = %+v", msg.activity)
	}
	if len(msg.alerts) != 2 || msg.alerts[0].severity != "high" {
		t.Errorf("alerts = %v, want high severity first", msg.alerts)
	}
}

func TestLoadData_MetricsError(t *testing.T) {
	origCalc, origEngine := MetricsCalc, AlertEngine
	defer func() { MetricsCalc, AlertEngine = origCalc, origEngine }()

	MetricsCalc = &metricsCalcMock{
		calculateFn: func(time.Time) (*observability.Metrics, error) {
			return nil, errors.New("boom")
		},
	}
	AlertEngine = nil

	msg := loadData().(dataLoadedMsg)
	if msg.err == nil {
		t.Error("metrics failure should surface as msg error")
	}
}
