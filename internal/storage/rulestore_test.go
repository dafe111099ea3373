package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/valter-silva-au/bookmark-brain/pkg/models"
)

func TestRuleStoreLoadMissingFile(t *testing.T) {
	store := NewRuleStore()

	rules, err := store.Load(filepath.Join(t.TempDir(), "rules.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if rules == nil {
		t.Fatal("missing file should yield an empty rule set, not nil")
	}
	if len(rules.Topics) != 0 || len(rules.People) != 0 || len(rules.Shapes) != 0 {
		t.Errorf("rule set not empty: %+v", rules)
	}
}

func TestRuleStoreLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yml")
	content := `topics:
  - id: zig
    patterns:
      - \bzig\b
    tag: topic/zig
    wikilink: Zig
    index_target: +Atlas/Software-Engineering
  - id: odin
    patterns:
      - \bodin\b
    exclude:
      - \bgod\b
    tag: topic/odin
    wikilink: Odin
people:
  mitchellh: Mitchell Hashimoto
shapes:
  - shape: top_list
    patterns:
      - best\s+\d+
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing rules: %v", err)
	}

	rules, err := NewRuleStore().Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if len(rules.Topics) != 2 {
		t.Fatalf("topics = %d, want 2", len(rules.Topics))
	}
	first := rules.Topics[0]
	if first.ID != "zig" || first.Tag != "topic/zig" || first.IndexTarget != "+Atlas/Software-Engineering" {
		t.Errorf("first topic = %+v", first)
	}
	if rules.Topics[1].Exclude[0] != `\bgod\b` {
		t.Errorf("exclude = %v", rules.Topics[1].Exclude)
	}
	if rules.People["mitchellh"] != "Mitchell Hashimoto" {
		t.Errorf("people = %v", rules.People)
	}
	if len(rules.Shapes) != 1 || rules.Shapes[0].Shape != models.ShapeTopList {
		t.Errorf("shapes = %+v", rules.Shapes)
	}
}

func TestRuleStoreLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yml")
	if err := os.WriteFile(path, []byte("topics: [unclosed"), 0o600); err != nil {
		t.Fatalf("writing rules: %v", err)
	}

	if _, err := NewRuleStore().Load(path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestRuleStoreSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yml")
	store := NewRuleStore()

	in := &models.RuleSet{
		Topics: []models.Topic{
			{ID: "zig", Patterns: []string{`\bzig\b`}, Tag: "topic/zig", Wikilink: "Zig"},
		},
		People: map[string]string{"mitchellh": "Mitchell Hashimoto"},
		Shapes: []models.ShapeRule{
			{Shape: models.ShapeTutorialGuide, Patterns: []string{`how\s+to`}},
		},
	}

	if err := store.Save(path, in); err != nil {
		t.Fatalf("Save: %v", err)
	}
	out, err := store.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if out.Topics[0].ID != "zig" || out.People["mitchellh"] != "Mitchell Hashimoto" {
		t.Errorf("round trip lost data: %+v", out)
	}
	if out.Shapes[0].Shape != models.ShapeTutorialGuide {
		t.Errorf("shapes = %+v", out.Shapes)
	}
}
