package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/7ammad/saudi-standards-api/internal/adapters/driving/tui/keymap"
	"github.com/7ammad/saudi-standards-api/internal/adapters/driving/tui/styles"
	"github.com/7ammad/saudi-standards-api/internal/core/domain"
)

// searchCompleted carries search results back into the update loop.
type searchCompleted struct {
	results []domain.Requirement
	err     error
}

// App is the root bubbletea model: a query input above a navigable
// result list, with the selected requirement rendered in full below.
type App struct {
	ports  *Ports
	styles *styles.Styles
	keymap *keymap.KeyMap
	ctx    context.Context

	input    textinput.Model
	results  []domain.Requirement
	selected int
	err      error
	status   string

	width      int
	height     int
	ready      bool
	focusInput bool
}

// NewApp creates the TUI application.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, err
	}

	ti := textinput.New()
	ti.Placeholder = "Search requirements..."
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50

	return &App{
		ports:      ports,
		styles:     styles.DefaultStyles(),
		keymap:     keymap.DefaultKeyMap(),
		ctx:        context.Background(),
		input:      ti,
		status:     "Type a query and press enter",
		width:      80,
		height:     24,
		focusInput: true,
	}, nil
}

// WithContext sets the context used for queries.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init initialises the application.
func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case searchCompleted:
		if msg.err != nil {
			a.err = msg.err
			a.status = msg.err.Error()
			return a, nil
		}
		a.err = nil
		a.results = msg.results
		a.selected = 0
		a.status = fmt.Sprintf("%d results", len(msg.results))
		a.focusInput = false
		a.input.Blur()
		return a, nil
	}

	if a.focusInput {
		var cmd tea.Cmd
		a.input, cmd = a.input.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, a.keymap.Quit) {
		return a, tea.Quit
	}

	if a.focusInput {
		if key.Matches(msg, a.keymap.Search) {
			query := strings.TrimSpace(a.input.Value())
			if query == "" {
				return a, nil
			}
			a.status = "Searching..."
			return a, a.performSearch(query)
		}
		if key.Matches(msg, a.keymap.Back) {
			return a, tea.Quit
		}

		var cmd tea.Cmd
		a.input, cmd = a.input.Update(msg)
		return a, cmd
	}

	switch {
	case key.Matches(msg, a.keymap.Up):
		if a.selected > 0 {
			a.selected--
		}
	case key.Matches(msg, a.keymap.Down):
		if a.selected < len(a.results)-1 {
			a.selected++
		}
	case key.Matches(msg, a.keymap.NewSearch):
		a.focusInput = true
		a.input.SetValue("")
		a.input.Focus()
		a.status = "Type a query and press enter"
	case key.Matches(msg, a.keymap.Back):
		a.focusInput = true
		a.input.Focus()
	case msg.String() == "q":
		return a, tea.Quit
	}
	return a, nil
}

// performSearch runs a free-text query against the corpus.
func (a *App) performSearch(query string) tea.Cmd {
	return func() tea.Msg {
		results, err := a.ports.Requirements.Search(a.ctx, domain.SearchFilter{Query: query})
		return searchCompleted{results: results, err: err}
	}
}

// View renders the application.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 8)
	sections = append(sections, a.styles.Title.Render("Saudi Standards"), "")
	sections = append(sections, a.styles.InputField.Render(a.input.View()), "")

	if a.err != nil {
		sections = append(sections, a.styles.Error.Render("Error: "+a.err.Error()), "")
	}

	sections = append(sections, a.renderResults())

	if detail := a.renderDetail(); detail != "" {
		sections = append(sections, "", detail)
	}

	sections = append(sections, "", a.styles.StatusBar.Render(a.statusLine()))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (a *App) renderResults() string {
	if len(a.results) == 0 {
		return a.styles.Muted.Render("  No results")
	}

	visible := a.height / 3
	if visible < 5 {
		visible = 5
	}
	start := 0
	if a.selected >= visible {
		start = a.selected - visible + 1
	}
	end := start + visible
	if end > len(a.results) {
		end = len(a.results)
	}

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		line := fmt.Sprintf("  %s  %s", a.results[i].Reference, a.results[i].Title)
		if i == a.selected {
			line = a.styles.Selected.Render("> " + strings.TrimPrefix(line, "  "))
		} else {
			line = a.styles.Normal.Render(line)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (a *App) renderDetail() string {
	req := a.SelectedRequirement()
	if req == nil || a.focusInput {
		return ""
	}

	var b strings.Builder
	b.WriteString(a.styles.Subtitle.Render(req.Reference))
	b.WriteString("\n")
	b.WriteString(a.styles.Normal.Render(req.Title))
	b.WriteString("\n\n")
	b.WriteString(a.styles.Normal.Render(wrap(req.Text, a.width-6)))
	if req.FacilityClass != "" || req.Domain != "" {
		b.WriteString("\n\n")
		b.WriteString(a.styles.Muted.Render(
			strings.TrimSpace(req.FacilityClass + " " + req.Domain)))
	}

	return a.styles.Border.Padding(0, 1).Width(a.width - 4).Render(b.String())
}

func (a *App) statusLine() string {
	help := "enter search · ↑/↓ navigate · n new search · ctrl+c quit"
	return a.status + "  " + a.styles.Muted.Render(help)
}

// SelectedRequirement returns the currently selected result.
func (a *App) SelectedRequirement() *domain.Requirement {
	if a.selected < 0 || a.selected >= len(a.results) {
		return nil
	}
	return &a.results[a.selected]
}

// Results returns the current result set.
func (a *App) Results() []domain.Requirement {
	return a.results
}

// InputFocused reports whether the query input has focus.
func (a *App) InputFocused() bool {
	return a.focusInput
}

// wrap breaks text into lines no longer than width.
func wrap(text string, width int) string {
	if width < 20 {
		width = 20
	}

	var b strings.Builder
	line := 0
	for _, word := range strings.Fields(text) {
		if line > 0 && line+len(word)+1 > width {
			b.WriteString("\n")
			line = 0
		} else if line > 0 {
			b.WriteString(" ")
			line++
		}
		b.WriteString(word)
		line += len(word)
	}
	return b.String()
}
