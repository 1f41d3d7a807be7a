// explore is an interactive terminal explorer: type Greeklish and
// watch the canonical keys and the ranked candidate list update live.
// Useful for tuning spelling conventions and debugging the index.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fsantini/lishgreek/internal/dict/stores"
	"github.com/fsantini/lishgreek/internal/translit"
	"github.com/joho/godotenv"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
)

const maxShown = 8

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	keyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	bestStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("82"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

type model struct {
	input      textinput.Model
	translator *translit.Translator
}

func newModel(translator *translit.Translator) model {
	input := textinput.New()
	input.Placeholder = "type greeklish…"
	input.Focus()
	return model{input: input, translator: translator}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("lishgreek explorer"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	word := strings.TrimSpace(m.input.Value())
	if word == "" {
		b.WriteString(dimStyle.Render("candidates appear here"))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(labelStyle.Render("translation: "))
	b.WriteString(bestStyle.Render(m.translator.Translate(word)))
	b.WriteString("\n")

	last := word
	if i := strings.LastIndexByte(word, ' '); i >= 0 {
		last = word[i+1:]
	}
	b.WriteString(labelStyle.Render("keys: "))
	b.WriteString(keyStyle.Render(strings.Join(m.translator.Keys(last), " ")))
	b.WriteString("\n")

	candidates := m.translator.Candidates(last)
	if len(candidates) == 0 {
		b.WriteString(dimStyle.Render("no candidates"))
		b.WriteString("\n")
		return b.String()
	}
	for i, c := range candidates {
		if i == maxShown {
			b.WriteString(dimStyle.Render(fmt.Sprintf("… %d more", len(candidates)-maxShown)))
			b.WriteString("\n")
			break
		}
		line := fmt.Sprintf("%2d. %s", i+1, c)
		if i == 0 {
			b.WriteString(bestStyle.Render(line))
		} else {
			b.WriteString(line)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func main() {
	if err := mainE(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func mainE() error {
	_ = godotenv.Load()

	fs := ff.NewFlagSet("lishgreek-explore")
	dictPath := fs.StringLong("dict", "uglish-dict.json.gz", "Canonical index artifact (gzip JSON, sqlite:// path, or postgres:// URL)")

	if err := ff.Parse(fs, os.Args[1:], ff.WithEnvVarPrefix("LISHGREEK")); err != nil {
		fmt.Printf("%s\n", ffhelp.Flags(fs))
		return fmt.Errorf("parsing flags: %w", err)
	}

	ctx := context.Background()
	store, cleanup, err := stores.Open(ctx, *dictPath)
	if err != nil {
		return fmt.Errorf("opening index store: %w", err)
	}
	defer cleanup()

	index, err := store.Load(ctx)
	if err != nil {
		return fmt.Errorf("loading canonical index: %w", err)
	}

	_, err = tea.NewProgram(newModel(translit.New(index))).Run()
	return err
}
