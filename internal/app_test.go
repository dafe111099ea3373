package internal

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/valter-silva-au/bookmark-brain/pkg/models"
)

func TestNewApp_Defaults(t *testing.T) {
	app, err := NewApp(t.TempDir())
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}

	if app.Matcher == nil || app.Classifier == nil || app.PromptEngine == nil {
		t.Error("core services not wired")
	}
	if app.Enricher == nil || app.BatchEnricher == nil {
		t.Error("enrichment services not wired")
	}
	if app.NoteStore == nil || app.RuleStore == nil {
		t.Error("storage layer not wired")
	}
	if app.EventLog == nil || app.AlertEngine == nil || app.MetricsCalc == nil {
		t.Error("observability should be enabled by default")
	}
	if app.Notifier != nil {
		t.Error("notifier should be nil without a webhook URL")
	}
}

func TestNewApp_CreatesEventLog(t *testing.T) {
	dir := t.TempDir()
	app, err := NewApp(dir)
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}
	if app.EventLog == nil {
		t.Fatal("event log not created")
	}
	if _, err := os.Stat(filepath.Join(dir, ".bkb_events.jsonl")); err != nil {
		t.Errorf("event log file missing: %v", err)
	}
}

func TestNewApp_ObservabilityDisabled(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "observability:\n  enabled: false\n")

	app, err := NewApp(dir)
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}
	if app.EventLog != nil || app.AlertEngine != nil || app.MetricsCalc != nil {
		t.Error("observability services should be nil when disabled")
	}
}

func TestNewApp_NotifierFromConfig(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "notifications:\n  slack:\n    webhook_url: https://hooks.slack.com/services/T/B/X\n")

	app, err := NewApp(dir)
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}
	if app.Notifier == nil {
		t.Error("notifier should be wired when a webhook URL is configured")
	}
}

func TestNewApp_CustomTopicRules(t *testing.T) {
	dir := t.TempDir()
	rulesPath := filepath.Join(dir, "topics.yml")
	rulesContent := `topics:
  - id: zig
    patterns:
      - \bzig\b
    tag: topic/zig
    wikilink: Zig
`
	if err := os.WriteFile(rulesPath, []byte(rulesContent), 0o600); err != nil {
		t.Fatalf("writing rules: %v", err)
	}
	writeConfig(t, dir, "rules:\n  topics: "+rulesPath+"\n")

	app, err := NewApp(dir)
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}

	// Custom registry replaces the built-in one.
	if matched := app.Matcher.Match("zig comptime tricks", ""); len(matched) != 1 || matched[0].ID != "zig" {
		t.Errorf("custom topic not matched: %v", matched)
	}
	if matched := app.Matcher.Match("learning rust", ""); len(matched) != 0 {
		t.Errorf("built-in topics should be replaced, got %v", matched)
	}
}

func TestNewApp_InvalidTopicRules(t *testing.T) {
	dir := t.TempDir()
	rulesPath := filepath.Join(dir, "topics.yml")
	if err := os.WriteFile(rulesPath, []byte("topics:\n  - id: bad\n    patterns:\n      - '[unclosed'\n"), 0o600); err != nil {
		t.Fatalf("writing rules: %v", err)
	}
	writeConfig(t, dir, "rules:\n  topics: "+rulesPath+"\n")

	if _, err := NewApp(dir); err == nil {
		t.Error("expected error for invalid topic patterns")
	}
}

func TestNewApp_InvalidConfig(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "footer:\n  version: \"\"\n")

	_, err := NewApp(dir)
	if err == nil {
		t.Fatal("expected validation error for empty footer version")
	}
	if !strings.Contains(err.Error(), "footer.version") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestResolveBasePath_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("BKB_HOME", dir)

	if got := ResolveBasePath(); got != dir {
		t.Errorf("ResolveBasePath = %q, want %q", got, dir)
	}
}

func TestResolveBasePath_WalksUpToConfig(t *testing.T) {
	t.Setenv("BKB_HOME", "")

	root := t.TempDir()
	writeConfig(t, root, "footer:\n  version: 0.2.0\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	defer func() { _ = os.Chdir(cwd) }()
	if err := os.Chdir(nested); err != nil {
		t.Fatalf("chdir: %v", err)
	}

	got := ResolveBasePath()
	// Resolve symlinks for comparison; temp dirs are often symlinked.
	wantResolved, _ := filepath.EvalSymlinks(root)
	gotResolved, _ := filepath.EvalSymlinks(got)
	if gotResolved != wantResolved {
		t.Errorf("ResolveBasePath = %q, want %q", got, root)
	}
}

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, ".bkbrc"), []byte(content), 0o600); err != nil {
		t.Fatalf("writing .bkbrc: %v", err)
	}
}

func TestNewApp_FooterVersionFlowsToRewriter(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "footer:\n  version: 9.9.9\n")

	app, err := NewApp(dir)
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}

	var note models.Note
	note.Body = "body"
	out := app.Rewriter.Rewrite(&note, []string{"source/twitter"}, nil, "")
	if !strings.Contains(out, "v9.9.9") {
		t.Errorf("rewriter not using configured footer version:\n%s", out)
	}
}
