package spell

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/text/language"
)

func TestDictionaryCheck(t *testing.T) {
	d := NewDictionary()
	d.Add(language.English, "Silk", "worm", " milk ")

	ctx := context.Background()
	for _, w := range []string{"silk", "worm", "milk", "SILK"} {
		ok, err := d.Check(ctx, w, language.English)
		if err != nil {
			t.Fatalf("check %q: %v", w, err)
		}
		if !ok {
			t.Errorf("expected %q to be recognized", w)
		}
	}
	if ok, _ := d.Check(ctx, "wormslik", language.English); ok {
		t.Error("expected wormslik to be rejected")
	}
}

func TestDictionaryMatchesRegionalTags(t *testing.T) {
	d := NewDictionary()
	d.Add(language.English, "colour")

	ok, err := d.Check(context.Background(), "colour", language.BritishEnglish)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !ok {
		t.Error("expected en-GB to resolve to the en dictionary")
	}
}

func TestDictionaryUnsupportedLanguage(t *testing.T) {
	d := NewDictionary()
	d.Add(language.English, "silk")

	ok, err := d.Check(context.Background(), "silk", language.Japanese)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if ok {
		t.Error("expected no match for an unsupported language")
	}
}

func TestEmptyDictionaryRecognizesNothing(t *testing.T) {
	ok, err := NewDictionary().Check(context.Background(), "silk", language.English)
	if err != nil || ok {
		t.Fatalf("expected (false, nil), got (%v, %v)", ok, err)
	}
}

func TestEmbeddedDictionary(t *testing.T) {
	d, err := Embedded()
	if err != nil {
		t.Fatalf("embedded: %v", err)
	}
	ctx := context.Background()
	if ok, _ := d.Check(ctx, "silk", language.English); !ok {
		t.Error("expected silk in the bundled dictionary")
	}
	if ok, _ := d.Check(ctx, "wormslik", language.English); ok {
		t.Error("expected wormslik to be missing from the bundled dictionary")
	}
	if d.Len(language.English) == 0 {
		t.Error("expected words for en")
	}
}

func TestAddFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extra.txt")
	if err := os.WriteFile(path, []byte("# extra\nZyzzyva\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	d := NewDictionary()
	if err := d.AddFile(language.English, path); err != nil {
		t.Fatalf("add file: %v", err)
	}
	if ok, _ := d.Check(context.Background(), "zyzzyva", language.English); !ok {
		t.Error("expected word from file")
	}
	if err := d.AddFile(language.English, filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestAddRegionalExtendsBaseDictionary(t *testing.T) {
	d := NewDictionary()
	d.Add(language.English, "silk")
	d.Add(language.BritishEnglish, "colour")

	ctx := context.Background()
	for _, w := range []string{"silk", "colour"} {
		if ok, _ := d.Check(ctx, w, language.BritishEnglish); !ok {
			t.Errorf("expected %q for en-GB", w)
		}
		if ok, _ := d.Check(ctx, w, language.English); !ok {
			t.Errorf("expected %q for en", w)
		}
	}
	if got := len(d.Languages()); got != 1 {
		t.Errorf("expected a single dictionary, got %d", got)
	}
}

func TestAddNewLanguage(t *testing.T) {
	d := NewDictionary()
	d.Add(language.English, "silk")
	d.Add(language.French, "soie")

	if ok, _ := d.Check(context.Background(), "soie", language.English); ok {
		t.Error("french word leaked into en")
	}
	if ok, _ := d.Check(context.Background(), "soie", language.French); !ok {
		t.Error("expected soie for fr")
	}
}

func TestEmbeddedDictionaryHasInflections(t *testing.T) {
	d, err := Embedded()
	if err != nil {
		t.Fatalf("embedded: %v", err)
	}
	ctx := context.Background()
	for _, w := range []string{"rows", "owls", "works", "mows", "worms", "milked", "walking", "warmer", "wolves", "mice"} {
		if ok, _ := d.Check(ctx, w, language.English); !ok {
			t.Errorf("expected %q in the bundled dictionary", w)
		}
	}
}
