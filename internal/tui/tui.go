package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/lox/janken/internal/janken"
)

// Model is the Bubble Tea model for the janken screen. It owns the session's
// engine and is the only thing that mutates it.
type Model struct {
	engine *janken.Engine
	labels Labels
	logger *log.Logger

	keys keyMap
	help help.Model

	showResults bool
	quitting    bool
	width       int
}

// NewModel creates a model driving the given engine
func NewModel(engine *janken.Engine, labels Labels, logger *log.Logger) *Model {
	m := &Model{
		engine: engine,
		labels: labels,
		logger: logger.WithPrefix("tui"),
		keys:   newKeyMap(labels),
		help:   help.New(),
	}
	m.keys.sync(engine)
	return m
}

// Init implements tea.Model. Ticks come from an external Ticker.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages in the TUI
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		m.engine.Tick()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.PlayAgain):
			m.logger.Debug("Starting new round", "round", m.engine.Round()+1)
			m.engine.Reset()
			m.showResults = false
		case key.Matches(msg, m.keys.Results):
			m.showResults = !m.showResults
		default:
			for _, hb := range m.keys.hands() {
				if key.Matches(msg, hb.binding) {
					m.selectHand(hb.hand)
					break
				}
			}
		}
	}

	m.keys.sync(m.engine)
	return m, nil
}

func (m *Model) selectHand(h janken.Hand) {
	outcome, err := m.engine.SelectHand(h)
	if err != nil {
		m.logger.Debug("Ignoring hand selection", "hand", h, "error", err)
		return
	}
	opponent, _ := m.engine.Opponent()
	m.logger.Info("Round result",
		"player", h,
		"opponent", opponent,
		"outcome", outcome)
}

// Quitting reports whether the user asked to leave
func (m *Model) Quitting() bool {
	return m.quitting
}

// View renders the TUI
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		HeaderStyle.Render(m.labels.Title),
		m.renderBanner(),
		m.renderOpponent(),
		m.renderButtons(),
	}
	if m.showResults && m.engine.Finished() {
		sections = append(sections, m.renderResults())
	}
	sections = append(sections, m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Center, sections...)
}

// renderBanner shows the round outcome once the player has chosen
func (m *Model) renderBanner() string {
	outcome, ok := m.engine.Outcome()
	if !ok {
		return ""
	}
	return BannerStyle.Render(outcomeStyle(outcome).Render(m.labels.Outcomes[outcome]))
}

func (m *Model) renderOpponent() string {
	content := "?"
	if h, ok := m.engine.Opponent(); ok {
		content = fmt.Sprintf("%s\n%s", handGlyph(h), m.labels.Hands[h])
	}
	return OpponentStyle.Render(content)
}

func (m *Model) renderButtons() string {
	chosen, finished := m.engine.Player()
	_, shown := m.engine.Opponent()

	var buttons []string
	for _, hb := range m.keys.hands() {
		selected := finished && chosen == hb.hand
		disabled := finished || !shown
		label := fmt.Sprintf("%s %s\n[%s]", handGlyph(hb.hand), m.labels.Hands[hb.hand], hb.binding.Help().Key)
		buttons = append(buttons, buttonStyle(hb.hand, selected, disabled).Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, buttons...)
}

// renderResults renders the session tally panel
func (m *Model) renderResults() string {
	tally := m.engine.Tally()

	var content strings.Builder
	content.WriteString(lipgloss.NewStyle().Bold(true).Render(m.labels.Results))
	content.WriteString("\n")
	content.WriteString(WinStyle.Render(fmt.Sprintf("%s : %d", m.labels.Wins, tally.Wins)))
	content.WriteString("\n")
	content.WriteString(LoseStyle.Render(fmt.Sprintf("%s : %d", m.labels.Losses, tally.Losses)))
	content.WriteString("\n")
	content.WriteString(DrawStyle.Render(fmt.Sprintf("%s : %d", m.labels.Draws, tally.Draws)))

	return ResultsStyle.Render(content.String())
}

func handGlyph(h janken.Hand) string {
	switch h {
	case janken.Rock:
		return "✊"
	case janken.Scissors:
		return "✌"
	case janken.Paper:
		return "✋"
	default:
		return "?"
	}
}
