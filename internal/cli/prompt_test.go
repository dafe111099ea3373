package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/valter-silva-au/bookmark-brain/internal/core"
)

func setupTestPromptEngine(t *testing.T) {
	t.Helper()
	orig := PromptEngine
	t.Cleanup(func() { PromptEngine = orig })

	classifier, err := core.NewShapeClassifier(core.DefaultShapeRules())
	if err != nil {
		t.Fatalf("NewShapeClassifier: %v", err)
	}
	PromptEngine = core.NewPromptEngine(classifier)
}

func TestPromptCmd_NilEngine(t *testing.T) {
	orig := PromptEngine
	defer func() { PromptEngine = orig }()
	PromptEngine = nil

	err := promptCmd.RunE(promptCmd, []string{"some text"})
	if err == nil {
		t.Fatal("expected error when PromptEngine is nil")
	}
	if !strings.Contains(err.Error(), "not initialized") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestPromptCmd_BasicRun(t *testing.T) {
	setupTestPromptEngine(t)

	if err := promptCmd.RunE(promptCmd, []string{"Top 10 AI tools for 2025"}); err != nil {
		t.Fatalf("RunE: %v", err)
	}
}

func TestPromptCmd_MissingFragmentFile(t *testing.T) {
	setupTestPromptEngine(t)

	origFile := promptLinkFile
	defer func() { promptLinkFile = origFile }()
	promptLinkFile = filepath.Join(t.TempDir(), "missing.txt")

	err := promptCmd.RunE(promptCmd, []string{"some text"})
	if err == nil {
		t.Fatal("expected error for missing fragment file")
	}
	if !strings.Contains(err.Error(), "fragment file") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestReadFragmentFile(t *testing.T) {
	t.Run("EmptyPath", func(t *testing.T) {
		got, err := readFragmentFile("")
		if err != nil || got != "" {
			t.Errorf("readFragmentFile(\"\") = %q, %v", got, err)
		}
	})

	t.Run("ExistingFile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "fragment.txt")
		if err := os.WriteFile(path, []byte("fetched page content"), 0o600); err != nil {
			t.Fatalf("writing fragment: %v", err)
		}

		got, err := readFragmentFile(path)
		if err != nil {
			t.Fatalf("readFragmentFile: %v", err)
		}
		if got != "fetched page content" {
			t.Errorf("content = %q", got)
		}
	})
}

func TestPromptCmd_Registration(t *testing.T) {
	found := false
	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() == "prompt" {
			found = true
			break
		}
	}
	if !found {
		t.Error("prompt command not registered on root")
	}
}
