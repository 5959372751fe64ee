package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/language"

	"github.com/robalobadob/wordscramble/internal/game"
	"github.com/robalobadob/wordscramble/internal/spell"
	"github.com/robalobadob/wordscramble/internal/words"
)

type stubChecker struct{}

func (stubChecker) Check(context.Context, string, language.Tag) (bool, error) {
	return false, errors.New("offline")
}

func newTestModel(t *testing.T, roots ...string) (Model, *bool) {
	t.Helper()
	fail := false
	src := words.NewSource("test", func() ([]string, error) {
		if fail {
			return nil, errors.New("gone")
		}
		return roots, nil
	})
	dict := spell.NewDictionary()
	dict.Add(language.English, "silk", "worm", "silkworm")
	engine := game.NewEngine(src, dict, language.English)
	round, err := engine.NewRound()
	if err != nil {
		t.Fatalf("new round: %v", err)
	}
	return NewModel(engine, round), &fail
}

func send(t *testing.T, m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(Model)
	}
	return m, cmd
}

func typeText(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var enter = tea.KeyMsg{Type: tea.KeyEnter}

func TestSubmitAcceptedClearsInput(t *testing.T) {
	m, _ := newTestModel(t, "silkworm")
	m, _ = send(t, m, typeText("silk"), enter)

	if m.Input() != "" {
		t.Errorf("expected input cleared, got %q", m.Input())
	}
	if m.Alert() != nil {
		t.Errorf("unexpected alert %+v", m.Alert())
	}
	if got := m.Round().UsedWords; len(got) != 1 || got[0] != "silk" {
		t.Fatalf("expected [silk], got %v", got)
	}
	if !strings.Contains(m.View(), "(4) silk") {
		t.Errorf("view should list the word with its letter count:\n%s", m.View())
	}
}

func TestRejectionShowsAlertAndKeepsInput(t *testing.T) {
	m, _ := newTestModel(t, "silkworm")
	m, _ = send(t, m, typeText("silkworm"), enter)

	if m.Alert() == nil || m.Alert().Title != "Used the root word!" {
		t.Fatalf("expected root word alert, got %+v", m.Alert())
	}
	if m.Input() != "silkworm" {
		t.Errorf("expected input kept, got %q", m.Input())
	}
	if !strings.Contains(m.View(), "Used the root word!") {
		t.Errorf("alert should be rendered")
	}

	// Keys other than dismiss are ignored while the alert is up.
	m, _ = send(t, m, typeText("x"))
	if m.Input() != "silkworm" {
		t.Errorf("typing behind the alert changed input: %q", m.Input())
	}

	m, _ = send(t, m, enter)
	if m.Alert() != nil {
		t.Fatal("enter should dismiss the alert")
	}
	if len(m.Round().UsedWords) != 0 {
		t.Errorf("dismissing must not change state: %v", m.Round().UsedWords)
	}
}

func TestBlankSubmitDoesNothing(t *testing.T) {
	m, _ := newTestModel(t, "silkworm")
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, enter)
	if m.Alert() != nil || len(m.Round().UsedWords) != 0 {
		t.Fatalf("blank submit should be a no-op")
	}
}

func TestEditing(t *testing.T) {
	m, _ := newTestModel(t, "silkworm")
	m, _ = send(t, m,
		typeText("slk"),
		tea.KeyMsg{Type: tea.KeyLeft},
		tea.KeyMsg{Type: tea.KeyLeft},
		typeText("i"),
		tea.KeyMsg{Type: tea.KeyRight},
		tea.KeyMsg{Type: tea.KeyRight},
		tea.KeyMsg{Type: tea.KeyBackspace},
	)
	if m.Input() != "sil" {
		t.Fatalf("expected sil, got %q", m.Input())
	}
}

func TestRestartClearsWords(t *testing.T) {
	m, _ := newTestModel(t, "silkworm")
	m, _ = send(t, m, typeText("silk"), enter, typeText("wor"))
	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})

	if cmd != nil {
		t.Fatal("restart should not quit")
	}
	if len(m.Round().UsedWords) != 0 || m.Input() != "" {
		t.Fatalf("expected a clean round, got words %v input %q", m.Round().UsedWords, m.Input())
	}
	if m.Round().RootWord == "" {
		t.Fatal("expected a root word")
	}
}

func TestRestartWithoutWordListQuits(t *testing.T) {
	m, fail := newTestModel(t, "silkworm")
	*fail = true
	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if !errors.Is(m.Err(), words.ErrNoWords) {
		t.Fatalf("expected ErrNoWords, got %v", m.Err())
	}
}

func TestCheckerFailureShowsAlert(t *testing.T) {
	src := words.NewSource("test", func() ([]string, error) { return []string{"silkworm"}, nil })
	engine := game.NewEngine(src, stubChecker{}, language.English)
	round, _ := engine.NewRound()
	m, _ := send(t, NewModel(engine, round), typeText("silk"), enter)
	if m.Alert() == nil {
		t.Fatal("expected an alert for a checker failure")
	}
}

func TestQuitKeys(t *testing.T) {
	m, _ := newTestModel(t, "silkworm")
	if _, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyCtrlC}); cmd == nil {
		t.Error("ctrl+c should quit")
	}
}

func TestWindowResize(t *testing.T) {
	m, _ := newTestModel(t, "silkworm")
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if m.width != 100 || m.height != 40 {
		t.Fatalf("size not applied: %dx%d", m.width, m.height)
	}
	if !strings.Contains(m.View(), "silkworm") {
		t.Error("title should show the root word")
	}
}
