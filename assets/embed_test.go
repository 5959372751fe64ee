package assets

import (
	"strings"
	"testing"
)

func TestReadLinesSkipsBlankAndComments(t *testing.T) {
	in := "# header\nSilkworm\n\n  Cat  \n#another\n"
	got, err := ReadLines(strings.NewReader(in))
	if err != nil {
		t.Fatalf("read lines: %v", err)
	}
	if len(got) != 2 || got[0] != "silkworm" || got[1] != "cat" {
		t.Fatalf("unexpected lines: %v", got)
	}
}

func TestRootWordsEmbedded(t *testing.T) {
	list, err := RootWords()
	if err != nil {
		t.Fatalf("root words: %v", err)
	}
	if len(list) == 0 {
		t.Fatal("expected bundled root words")
	}
	for _, w := range list {
		if w != strings.ToLower(w) || strings.TrimSpace(w) != w {
			t.Errorf("root word %q is not normalized", w)
		}
	}
}

func TestDictionariesContainEnglish(t *testing.T) {
	dicts, err := Dictionaries()
	if err != nil {
		t.Fatalf("dictionaries: %v", err)
	}
	en, ok := dicts["en"]
	if !ok || len(en) == 0 {
		t.Fatalf("expected an en dictionary, got keys %v", len(dicts))
	}
}

func TestMigrationsOrdered(t *testing.T) {
	migs, err := Migrations()
	if err != nil {
		t.Fatalf("migrations: %v", err)
	}
	if len(migs) == 0 {
		t.Fatal("expected at least one migration")
	}
	for i := 1; i < len(migs); i++ {
		if migs[i-1].Name >= migs[i].Name {
			t.Errorf("migrations out of order: %s before %s", migs[i-1].Name, migs[i].Name)
		}
	}
	if !strings.Contains(migs[0].SQL, "dictionary") {
		t.Errorf("first migration should create the dictionary table")
	}
}
