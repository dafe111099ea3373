package cli

import (
	"fmt"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// Dashboard panel indices.
const (
	panelTopics = iota
	panelShapes
	panelAlerts
	panelCount
)

type dashboardModel struct {
	activePanel int
	width       int
	height      int

	// Data.
	activity    *activitySnapshot
	topicCounts map[string]int
	shapeCounts map[string]int
	alerts      []alertSnapshot

	// State.
	loading bool
	err     error
}

type activitySnapshot struct {
	notesEnriched  int
	noTopicMatches int
	promptsBuilt   int
	eventCount     int
}

type alertSnapshot struct {
	severity string
	message  string
	time     string
}

// dataLoadedMsg carries loaded data back to the model.
type dataLoadedMsg struct {
	activity    *activitySnapshot
	topicCounts map[string]int
	shapeCounts map[string]int
	alerts      []alertSnapshot
	err         error
}

// Style definitions.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	panelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 2)

	activePanelStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("62")).
				Padding(1, 2)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")).
			MarginBottom(1)

	severityHigh   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	severityMedium = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))
	severityLow    = lipgloss.NewStyle().Foreground(lipgloss.Color("69"))

	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func newDashboardModel() dashboardModel {
	return dashboardModel{
		activePanel: panelTopics,
		loading:     true,
		topicCounts: make(map[string]int),
		shapeCounts: make(map[string]int),
	}
}

func (m dashboardModel) Init() tea.Cmd {
	return loadData
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "tab":
			m.activePanel = (m.activePanel + 1) % panelCount
			return m, nil
		case "shift+tab":
			m.activePanel = (m.activePanel - 1 + panelCount) % panelCount
			return m, nil
		case "r":
			m.loading = true
			return m, loadData
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case dataLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.activity = msg.activity
		m.topicCounts = msg.topicCounts
		m.shapeCounts = msg.shapeCounts
		m.alerts = msg.alerts
		m.err = nil
		return m, nil
	}

	return m, nil
}

func (m dashboardModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	title := titleStyle.Render(" BKB Dashboard ")
	help := helpStyle.Render("tab: switch panel | r: refresh | q: quit")

	if m.loading {
		return fmt.Sprintf("%s\n\n  Loading data...\n\n%s", title, help)
	}

	if m.err != nil {
		return fmt.Sprintf("%s\n\n  Error: %s\n\n%s", title, m.err, help)
	}

	topicsPanel := m.renderTopicsPanel()
	shapesPanel := m.renderShapesPanel()
	alertsPanel := m.renderAlertsPanel()

	// Available width for panels after accounting for margins.
	availableWidth := m.width - 2

	var body string
	if availableWidth > 120 {
		// Horizontal layout: three columns.
		colWidth := availableWidth / 3
		topicsPanel = m.applyPanelStyle(panelTopics, topicsPanel, colWidth-4)
		shapesPanel = m.applyPanelStyle(panelShapes, shapesPanel, colWidth-4)
		alertsPanel = m.applyPanelStyle(panelAlerts, alertsPanel, colWidth-4)
		body = lipgloss.JoinHorizontal(lipgloss.Top, topicsPanel, shapesPanel, alertsPanel)
	} else {
		// Vertical layout: stacked.
		panelWidth := availableWidth - 4
		if panelWidth < 20 {
			panelWidth = 20
		}
		topicsPanel = m.applyPanelStyle(panelTopics, topicsPanel, panelWidth)
		shapesPanel = m.applyPanelStyle(panelShapes, shapesPanel, panelWidth)
		alertsPanel = m.applyPanelStyle(panelAlerts, alertsPanel, panelWidth)
		body = lipgloss.JoinVertical(lipgloss.Left, topicsPanel, shapesPanel, alertsPanel)
	}

	return fmt.Sprintf("%s\n\n%s\n\n%s", title, body, help)
}

func (m dashboardModel) applyPanelStyle(panel int, content string, width int) string {
	style := panelStyle
	if m.activePanel == panel {
		style = activePanelStyle
	}
	return style.Width(width).Render(content)
}

// maxDashboardRows caps the topic list so the panel stays readable.
const maxDashboardRows = 12

func (m dashboardModel) renderTopicsPanel() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Topics (7d)"))
	b.WriteString("\n")

	if len(m.topicCounts) == 0 {
		b.WriteString("  No topic matches recorded.")
		return b.String()
	}

	for i, entry := range countsByFrequency(m.topicCounts) {
		if i == maxDashboardRows {
			b.WriteString(fmt.Sprintf("  ... and %d more\n", len(m.topicCounts)-maxDashboardRows))
			break
		}
		b.WriteString(fmt.Sprintf("  %-22s %d\n", entry.key, entry.count))
	}

	if m.activity != nil {
		b.WriteString(fmt.Sprintf("\n  Notes enriched: %d", m.activity.notesEnriched))
		if m.activity.noTopicMatches > 0 {
			b.WriteString(fmt.Sprintf(" (%d unmatched)", m.activity.noTopicMatches))
		}
	}

	return b.String()
}

func (m dashboardModel) renderShapesPanel() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Content Shapes (7d)"))
	b.WriteString("\n")

	if len(m.shapeCounts) == 0 {
		b.WriteString("  No classifications recorded.")
		return b.String()
	}

	for _, entry := range countsByFrequency(m.shapeCounts) {
		b.WriteString(fmt.Sprintf("  %-22s %d\n", entry.key, entry.count))
	}

	if m.activity != nil {
		b.WriteString(fmt.Sprintf("\n  Prompts built: %d", m.activity.promptsBuilt))
		b.WriteString(fmt.Sprintf("\n  Events: %d", m.activity.eventCount))
	}

	return b.String()
}

func (m dashboardModel) renderAlertsPanel() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Rule Quality"))
	b.WriteString("\n")

	if len(m.alerts) == 0 {
		b.WriteString("  No active alerts.")
		return b.String()
	}

	for _, a := range m.alerts {
		sev := styleForSeverity(a.severity).Render(fmt.Sprintf("[%s]", strings.ToUpper(a.severity)))
		b.WriteString(fmt.Sprintf("  %s %s\n", sev, a.message))
	}

	b.WriteString(fmt.Sprintf("\n  Total: %d alert(s)", len(m.alerts)))

	return b.String()
}

type countRow struct {
	key   string
	count int
}

// countsByFrequency sorts a count map by descending count, ties by key, so
// the panels render the same way on every refresh.
func countsByFrequency(m map[string]int) []countRow {
	rows := make([]countRow, 0, len(m))
	for k, c := range m {
		rows = append(rows, countRow{key: k, count: c})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].count != rows[j].count {
			return rows[i].count > rows[j].count
		}
		return rows[i].key < rows[j].key
	})
	return rows
}

func styleForSeverity(severity string) lipgloss.Style {
	switch strings.ToLower(severity) {
	case "high":
		return severityHigh
	case "medium":
		return severityMedium
	case "low":
		return severityLow
	default:
		return lipgloss.NewStyle()
	}
}

func loadData() tea.Msg {
	result := dataLoadedMsg{
		topicCounts: make(map[string]int),
		shapeCounts: make(map[string]int),
	}

	// Load metrics from MetricsCalc.
	if MetricsCalc != nil {
		since := time.Now().UTC().AddDate(0, 0, -7)
		metrics, err := MetricsCalc.Calculate(since)
		if err != nil {
			result.err = fmt.Errorf("loading metrics: %w", err)
			return result
		}
		result.activity = &activitySnapshot{
			notesEnriched:  metrics.NotesEnriched,
			noTopicMatches: metrics.NoTopicMatches,
			promptsBuilt:   metrics.PromptsBuilt,
			eventCount:     metrics.EventCount,
		}
		result.topicCounts = metrics.TopicCounts
		result.shapeCounts = metrics.ShapeCounts
	}

	// Load alerts from AlertEngine.
	if AlertEngine != nil {
		alerts, err := AlertEngine.Evaluate()
		if err != nil {
			result.err = fmt.Errorf("loading alerts: %w", err)
			return result
		}
		result.alerts = make([]alertSnapshot, 0, len(alerts))

		// Sort alerts by severity: high first, then medium, then low.
		sort.Slice(alerts, func(i, j int) bool {
			return severityRank(string(alerts[i].Severity)) < severityRank(string(alerts[j].Severity))
		})

		for _, a := range alerts {
			result.alerts = append(result.alerts, alertSnapshot{
				severity: string(a.Severity),
				message:  a.Message,
				time:     a.TriggeredAt.Format("2006-01-02 15:04 UTC"),
			})
		}
	}

	return result
}

func severityRank(s string) int {
	switch s {
	case "high":
		return 0
	case "medium":
		return 1
	case "low":
		return 2
	default:
		return 3
	}
}

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Interactive TUI dashboard for enrichment metrics and alerts",
	Long: `Launch an interactive terminal dashboard showing topic match
frequencies, content shape distribution, and rule-quality alerts.

Navigate between panels with Tab, refresh with r, quit with q.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if MetricsCalc == nil {
			return fmt.Errorf("metrics calculator not initialized (observability may be disabled)")
		}
		p := tea.NewProgram(newDashboardModel(), tea.WithAltScreen())
		_, err := p.Run()
		return err
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
