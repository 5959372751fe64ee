// internal/tui/model.go
//
// Terminal front end: root word title, text entry, alert with OK, and the
// accepted words with their letter counts. Ctrl+R restarts the round.

package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordscramble/internal/game"
)

// Model is the single game screen: root word title, text entry, accepted
// words list and an alert shown after a rejected submission.
type Model struct {
	width, height int
	engine        *game.Engine
	round         *game.Round
	input         []rune
	cursorPos     int
	alert         *game.Alert
	err           error
	styles        styles
}

// NewModel creates the screen for an already started round.
func NewModel(engine *game.Engine, round *game.Round) Model {
	return Model{
		engine: engine,
		round:  round,
		width:  60,
		height: 24,
		styles: newStyles(),
	}
}

// Err returns the error that ended the program, if any.
func (model Model) Err() error { return model.err }

// Round returns the round being played.
func (model Model) Round() *game.Round { return model.round }

// Alert returns the visible alert, or nil.
func (model Model) Alert() *game.Alert { return model.alert }

// Input returns the current text entry contents.
func (model Model) Input() string { return string(model.input) }

// Init has nothing to load; the round is started before the program runs.
func (model Model) Init() tea.Cmd {
	return nil
}

// Update handles all incoming messages and updates the model state accordingly.
func (model Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch message := msg.(type) {
	case tea.KeyMsg:
		if model.alert != nil {
			return model.handleAlertKey(message)
		}
		return model.handleKeyPress(message)

	case tea.WindowSizeMsg:
		model.width = message.Width
		model.height = message.Height
	}
	return model, nil
}

// handleAlertKey lets the player dismiss the alert; everything else waits.
func (model Model) handleAlertKey(keyMessage tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMessage.String() {
	case "ctrl+c":
		return model, tea.Quit
	case "enter", "esc", " ":
		model.alert = nil
	}
	return model, nil
}

// handleKeyPress processes keyboard input and returns the updated model and any commands.
func (model Model) handleKeyPress(keyMessage tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMessage.String() {
	case "ctrl+c", "esc":
		return model, tea.Quit

	case "enter":
		return model.handleSubmit()

	case "ctrl+r":
		return model.handleRestart()

	case "backspace":
		if model.cursorPos > 0 {
			model.input = append(model.input[:model.cursorPos-1:model.cursorPos-1], model.input[model.cursorPos:]...)
			model.cursorPos--
		}

	case "left":
		if model.cursorPos > 0 {
			model.cursorPos--
		}

	case "right":
		if model.cursorPos < len(model.input) {
			model.cursorPos++
		}

	default:
		if keyMessage.Type == tea.KeyRunes || keyMessage.Type == tea.KeySpace {
			model.insert(keyMessage.Runes)
		}
	}
	return model, nil
}

// insert places runes at the cursor.
func (model *Model) insert(runes []rune) {
	if len(runes) == 0 {
		return
	}
	next := make([]rune, 0, len(model.input)+len(runes))
	next = append(next, model.input[:model.cursorPos]...)
	next = append(next, runes...)
	next = append(next, model.input[model.cursorPos:]...)
	model.input = next
	model.cursorPos += len(runes)
}

// handleSubmit validates the entry. Accepted words clear the entry;
// rejections raise the alert and keep the text for editing.
func (model Model) handleSubmit() (tea.Model, tea.Cmd) {
	res, err := model.engine.Submit(context.Background(), model.round, string(model.input))
	if err != nil {
		log.Error().Err(err).Msg("submit")
		model.alert = &game.Alert{Title: "Something went wrong", Message: err.Error()}
		return model, nil
	}
	switch {
	case res.Accepted():
		model.input = nil
		model.cursorPos = 0
	case res.Alert != nil:
		model.alert = res.Alert
	}
	return model, nil
}

// handleRestart starts over with a new root word. Losing the word list is
// fatal: the program quits and main reports the error.
func (model Model) handleRestart() (tea.Model, tea.Cmd) {
	model.input = nil
	model.cursorPos = 0
	if err := model.engine.Restart(model.round); err != nil {
		model.err = fmt.Errorf("restart: %w", err)
		return model, tea.Quit
	}
	log.Info().Str("root", model.round.RootWord).Msg("round restarted")
	return model, nil
}

// View renders the complete UI as a string.
func (model Model) View() string {
	width := model.width - 2
	if width < 30 {
		width = 30
	}

	var b strings.Builder
	b.WriteString(model.styles.title.Render(model.round.RootWord))
	b.WriteString("\n")
	b.WriteString(model.styles.input.Width(width - 4).Render(model.renderInput()))
	b.WriteString("\n")

	if model.alert != nil {
		b.WriteString(model.renderAlert(width))
		b.WriteString("\n")
	}

	b.WriteString(model.renderWords(model.listHeight()))
	b.WriteString("\n")
	b.WriteString(model.styles.help.Render("enter submit • ctrl+r restart • esc quit"))
	return b.String()
}

// renderInput shows the entry with a cursor, or a placeholder when empty.
func (model Model) renderInput() string {
	if len(model.input) == 0 && model.alert == nil {
		return model.styles.cursor.Render(" ") + model.styles.placeholder.Render("Enter your word")
	}
	before := string(model.input[:model.cursorPos])
	at := " "
	after := ""
	if model.cursorPos < len(model.input) {
		at = string(model.input[model.cursorPos])
		after = string(model.input[model.cursorPos+1:])
	}
	return before + model.styles.cursor.Render(at) + after
}

// renderAlert draws the modal alert box with its OK action.
func (model Model) renderAlert(width int) string {
	body := model.styles.alertTitle.Render(model.alert.Title) + "\n" +
		model.alert.Message + "\n\n" +
		model.styles.button.Render("OK")
	return model.styles.alert.Width(width - 4).Render(body)
}

// renderWords lists accepted words, most recent first, each with its letter count.
func (model Model) renderWords(maxRows int) string {
	entries := model.round.Entries()
	if len(entries) == 0 {
		return model.styles.placeholder.Render("No words yet")
	}
	var lines []string
	for i, e := range entries {
		if i >= maxRows {
			lines = append(lines, model.styles.placeholder.Render(fmt.Sprintf("… %d more", len(entries)-i)))
			break
		}
		lines = append(lines, model.styles.count.Render(fmt.Sprintf("(%d)", e.Letters))+" "+e.Word)
	}
	return strings.Join(lines, "\n")
}

func (model Model) listHeight() int {
	h := model.height - 8
	if model.alert != nil {
		h -= 6
	}
	if h < 3 {
		h = 3
	}
	return h
}
