package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/okarpov/cowherd/internal/storage"
)

const maxScoreboardRows = 100

// ScoreboardKeyMap defines the key bindings for the scoreboard view.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Quit}}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

var (
	scoreboardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")).Padding(0, 1)
	scoreboardStatsStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1)
	scoreboardBoxStyle   = lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240"))
)

// ScoreboardModel is a Bubble Tea model showing the recorded high scores.
type ScoreboardModel struct {
	table table.Model
	keys  ScoreboardKeyMap
	help  help.Model
	stats *storage.Stats
}

// NewScoreboardModel loads scores from the store and builds the view.
func NewScoreboardModel(store *storage.Store) (ScoreboardModel, error) {
	entries, err := store.TopScores(maxScoreboardRows)
	if err != nil {
		return ScoreboardModel{}, err
	}
	stats, err := store.GetStats()
	if err != nil {
		return ScoreboardModel{}, err
	}

	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 8},
		{Title: "Survived", Width: 10},
		{Title: "Date", Width: 18},
	}

	rows := make([]table.Row, 0, len(entries))
	for i, e := range entries {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", e.Score),
			fmt.Sprintf("%.0fs", e.Duration),
			e.CreatedAt.Format("2006-01-02 15:04"),
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	return ScoreboardModel{
		table: t,
		keys:  DefaultScoreboardKeyMap(),
		help:  help.New(),
		stats: stats,
	}, nil
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles input for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	title := scoreboardTitleStyle.Render("Cowherd - High Scores")
	stats := ""
	if m.stats != nil && m.stats.GamesCount > 0 {
		stats = scoreboardStatsStyle.Render(fmt.Sprintf(
			"%d games  |  best %d  |  avg %.1f",
			m.stats.GamesCount, m.stats.HighScore, m.stats.AvgScore,
		))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		stats,
		scoreboardBoxStyle.Render(m.table.View()),
		m.help.View(m.keys),
	)
}

// RunScoreboard shows the scoreboard until the user quits.
func RunScoreboard(store *storage.Store) error {
	model, err := NewScoreboardModel(store)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}
