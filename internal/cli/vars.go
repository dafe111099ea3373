package cli

import (
	"github.com/valter-silva-au/bookmark-brain/internal/core"
	"github.com/valter-silva-au/bookmark-brain/internal/observability"
	"github.com/valter-silva-au/bookmark-brain/internal/storage"
)

// Service instances, set during app initialization in app.go.
var (
	BasePath string

	Enricher      *core.Enricher
	BatchEnricher *core.BatchEnricher
	Classifier    *core.ShapeClassifier
	PromptEngine  *core.PromptEngine
	NoteStore     storage.NoteStore

	EventLog    observability.EventLog
	AlertEngine observability.AlertEngine
	MetricsCalc observability.MetricsCalculator
	Notifier    observability.Notifier
)
