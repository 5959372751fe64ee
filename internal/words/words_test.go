package words

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedRandom(t *testing.T) {
	w, err := Embedded().Random()
	if err != nil {
		t.Fatalf("random: %v", err)
	}
	if w == "" {
		t.Fatal("expected a non-empty root word")
	}
}

func TestFromFileFiltersJunk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "start.txt")
	content := "# comment\nSilkworm\n\nnot a word\nab3\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	list, err := FromFile(path).Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(list) != 1 || list[0] != "silkworm" {
		t.Fatalf("expected [silkworm], got %v", list)
	}
}

func TestMissingFileIsErrNoWords(t *testing.T) {
	_, err := FromFile(filepath.Join(t.TempDir(), "missing.txt")).Random()
	if !errors.Is(err, ErrNoWords) {
		t.Fatalf("expected ErrNoWords, got %v", err)
	}
}

func TestEmptyListIsErrNoWords(t *testing.T) {
	src := NewSource("empty", func() ([]string, error) { return []string{"", "   "}, nil })
	if _, err := src.Random(); !errors.Is(err, ErrNoWords) {
		t.Fatalf("expected ErrNoWords, got %v", err)
	}
}

func TestRandomCoversList(t *testing.T) {
	list := []string{"alpha", "bravo", "charlie"}
	src := NewSource("fixed", func() ([]string, error) { return list, nil })

	seen := map[string]bool{}
	for i := 0; i < 300; i++ {
		w, err := src.Random()
		if err != nil {
			t.Fatalf("random: %v", err)
		}
		seen[w] = true
	}
	for _, w := range list {
		if !seen[w] {
			t.Errorf("word %q never picked", w)
		}
	}
}

func TestRandomReloadsEachCall(t *testing.T) {
	calls := 0
	src := NewSource("counting", func() ([]string, error) {
		calls++
		return []string{"silkworm"}, nil
	})
	for i := 0; i < 3; i++ {
		if _, err := src.Random(); err != nil {
			t.Fatalf("random: %v", err)
		}
	}
	if calls != 3 {
		t.Fatalf("expected 3 loads, got %d", calls)
	}
}

func TestConfigured(t *testing.T) {
	if got := Configured("").Name(); got != "embedded:start.txt" {
		t.Errorf("expected embedded source, got %s", got)
	}
	if got := Configured("/tmp/x.txt").Name(); got != "/tmp/x.txt" {
		t.Errorf("expected file source, got %s", got)
	}
}
