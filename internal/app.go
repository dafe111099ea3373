// Package internal provides the App struct that wires all components of the
// bookmark-brain system together and initializes the CLI layer.
package internal

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/valter-silva-au/bookmark-brain/internal/cli"
	"github.com/valter-silva-au/bookmark-brain/internal/core"
	"github.com/valter-silva-au/bookmark-brain/internal/observability"
	"github.com/valter-silva-au/bookmark-brain/internal/storage"
)

// App holds all service dependencies for the bookmark-brain system.
type App struct {
	BasePath string

	// Configuration
	ConfigMgr core.ConfigurationManager

	// Storage layer
	NoteStore storage.NoteStore
	RuleStore storage.RuleStore

	// Core services
	Matcher       core.TopicMatcher
	Graph         *core.GraphBuilder
	Rewriter      *core.Rewriter
	Classifier    *core.ShapeClassifier
	PromptEngine  *core.PromptEngine
	Enricher      *core.Enricher
	BatchEnricher *core.BatchEnricher

	// Observability
	EventLog    observability.EventLog
	AlertEngine observability.AlertEngine
	MetricsCalc observability.MetricsCalculator
	Notifier    observability.Notifier
}

// NewApp creates and wires all components of the bookmark-brain system.
// basePath is the directory containing .bkbrc and the event log (typically
// the vault root).
func NewApp(basePath string) (*App, error) {
	app := &App{BasePath: basePath}

	// --- Configuration ---
	app.ConfigMgr = core.NewConfigurationManager(basePath)
	cfg, err := app.ConfigMgr.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := app.ConfigMgr.ValidateConfig(cfg); err != nil {
		return nil, err
	}

	// --- Storage layer ---
	app.NoteStore = storage.NewNoteStore()
	app.RuleStore = storage.NewRuleStore()

	// --- Rule tables ---
	topics := core.DefaultTopics()
	people := core.DefaultPeople()
	shapeRules := core.DefaultShapeRules()

	if cfg.TopicRulesPath != "" {
		rules, err := app.RuleStore.Load(cfg.TopicRulesPath)
		if err != nil {
			return nil, fmt.Errorf("loading topic rules: %w", err)
		}
		if len(rules.Topics) > 0 {
			topics = rules.Topics
		}
		if len(rules.People) > 0 {
			people = rules.People
		}
	}
	if cfg.ShapeRulesPath != "" {
		rules, err := app.RuleStore.Load(cfg.ShapeRulesPath)
		if err != nil {
			return nil, fmt.Errorf("loading shape rules: %w", err)
		}
		if len(rules.Shapes) > 0 {
			shapeRules = rules.Shapes
		}
	}

	// --- Core services ---
	app.Matcher, err = core.NewTopicMatcher(topics)
	if err != nil {
		return nil, fmt.Errorf("compiling topic registry: %w", err)
	}
	app.Graph = core.NewGraphBuilder(people)
	app.Rewriter = core.NewRewriter(cfg.FooterVersion)
	app.Classifier, err = core.NewShapeClassifier(shapeRules)
	if err != nil {
		return nil, fmt.Errorf("compiling shape rules: %w", err)
	}
	app.PromptEngine = core.NewPromptEngine(app.Classifier)
	app.Enricher = core.NewEnricher(app.Matcher, app.Graph, app.Rewriter)
	app.BatchEnricher = core.NewBatchEnricher(app.Enricher, app.NoteStore)

	// --- Observability ---
	if cfg.ObservabilityEnabled {
		eventLogPath := filepath.Join(basePath, ".bkb_events.jsonl")
		app.EventLog, err = observability.NewJSONLEventLog(eventLogPath)
		if err != nil {
			// Non-fatal: disable observability if log can't be created.
			app.EventLog = nil
		}
	}
	if app.EventLog != nil {
		app.AlertEngine = observability.NewAlertEngine(app.EventLog, observability.DefaultAlertThresholds())
		app.MetricsCalc = observability.NewMetricsCalculator(app.EventLog)
	}
	if cfg.SlackWebhookURL != "" {
		app.Notifier = observability.NewSlackNotifier(cfg.SlackWebhookURL)
	}

	// --- Wire CLI package-level variables ---
	cli.BasePath = basePath
	cli.Enricher = app.Enricher
	cli.BatchEnricher = app.BatchEnricher
	cli.Classifier = app.Classifier
	cli.PromptEngine = app.PromptEngine
	cli.NoteStore = app.NoteStore

	cli.EventLog = app.EventLog
	cli.AlertEngine = app.AlertEngine
	cli.MetricsCalc = app.MetricsCalc
	cli.Notifier = app.Notifier

	return app, nil
}

// ResolveBasePath determines the directory containing .bkbrc. It honors the
// BKB_HOME environment variable, then walks up from the current directory
// looking for a .bkbrc file, falling back to the current directory.
func ResolveBasePath() string {
	if home := os.Getenv("BKB_HOME"); home != "" {
		return home
	}
	dir, err := os.Getwd()
	if err != nil {
		return "."
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, ".bkbrc")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	cwd, _ := os.Getwd()
	return cwd
}
