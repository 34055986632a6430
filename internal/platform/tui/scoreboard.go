package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/rocket-dodge/internal/registry"
	"github.com/vovakirdan/rocket-dodge/internal/storage"
)

// maxRows caps how many runs or matches a board loads.
const maxRows = 100

// versusTab is the board ID of the match history.
const versusTab = "versus"

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Next key.Binding
	Prev key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Next, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Next, k.Prev}, {k.Back, k.Quit}}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("up/k", "scroll")),
		Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("down/j", "scroll")),
		Next: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next board")),
		Prev: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab", "prev board")),
		Back: key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// board is one scoreboard page: the runs of a solo game, or the match
// history every two-player game shares.
type board struct {
	ID    string
	Title string
}

func (b board) versus() bool { return b.ID == versusTab }

// ScoreboardModel is the Bubble Tea model for the scoreboard screen.
type ScoreboardModel struct {
	boards    []board
	cursor    int
	store     *storage.Store
	scores    []storage.ScoreEntry
	stats     *storage.GameStats
	matches   []storage.VersusResult
	tally     storage.VersusTally
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	var boards []board
	hasVersus := false
	for _, g := range registry.List() {
		if g.Players > 1 {
			hasVersus = true
			continue
		}
		boards = append(boards, board{ID: g.ID, Title: g.Title})
	}
	if hasVersus {
		boards = append(boards, board{ID: versusTab, Title: "Versus Matches"})
	}

	m := ScoreboardModel{
		boards: boards,
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.newTable()
	m.load()
	return m
}

func (m *ScoreboardModel) current() board {
	if len(m.boards) == 0 {
		return board{}
	}
	return m.boards[m.cursor]
}

// onVersusTab reports whether the match history is shown.
func (m *ScoreboardModel) onVersusTab() bool {
	return m.current().versus()
}

// columns returns the table layout for the current board.
func (m *ScoreboardModel) columns() []table.Column {
	date := min(max(m.width-54, 12), 18)
	if m.onVersusTab() {
		return []table.Column{
			{Title: "Winner", Width: 8},
			{Title: "P1", Width: 6},
			{Title: "P2", Width: 6},
			{Title: "Passed", Width: 8},
			{Title: "Time", Width: 8},
			{Title: "Date", Width: date},
		}
	}
	return []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 10},
		{Title: "Level", Width: 7},
		{Title: "Won", Width: 5},
		{Title: "Date", Width: date},
	}
}

func (m *ScoreboardModel) newTable() table.Model {
	t := table.New(
		table.WithColumns(m.columns()),
		table.WithFocused(true),
		table.WithHeight(max(m.height-11, 3)), // Title, tabs, summary and help
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// load reads the current board from storage. Without a store every board is
// empty.
func (m *ScoreboardModel) load() {
	m.scores, m.stats = nil, nil
	m.matches, m.tally = nil, storage.VersusTally{}

	b := m.current()
	if m.store != nil && b.ID != "" {
		if b.versus() {
			if matches, err := m.store.RecentVersusResults(maxRows); err == nil {
				m.matches = matches
			}
			if tally, err := m.store.Tally(); err == nil {
				m.tally = tally
			}
		} else {
			if scores, err := m.store.TopScores(b.ID, maxRows); err == nil {
				m.scores = scores
			}
			if stats, err := m.store.Stats(b.ID); err == nil {
				m.stats = stats
			}
		}
	}
	m.fillTable()
}

func (m *ScoreboardModel) fillTable() {
	var rows []table.Row
	if m.onVersusTab() {
		for _, r := range m.matches {
			winner := "Draw"
			if r.Winner > 0 {
				winner = fmt.Sprintf("P%d", r.Winner)
			}
			rows = append(rows, table.Row{
				winner,
				hearts(r.P1Lives),
				hearts(r.P2Lives),
				fmt.Sprint(r.Passed),
				r.Duration.Round(time.Second).String(),
				r.CreatedAt.Format("Jan 02 15:04"),
			})
		}
	} else {
		for i, s := range m.scores {
			won := ""
			if s.Won {
				won = "yes"
			}
			rows = append(rows, table.Row{
				fmt.Sprintf("#%d", i+1),
				fmt.Sprint(s.Score),
				fmt.Sprint(s.Level),
				won,
				s.CreatedAt.Format("Jan 02 15:04"),
			})
		}
	}

	// Clear rows first so a narrower column set never indexes past a row.
	m.table.SetRows(nil)
	m.table.SetColumns(m.columns())
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// hearts renders remaining lives compactly.
func hearts(n int) string {
	if n <= 0 {
		return "-"
	}
	return strings.Repeat("♥", min(n, 5))
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.flip(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.flip(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.newTable()
		m.fillTable()
		m.help.Width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// flip moves to another board, wrapping at both ends.
func (m *ScoreboardModel) flip(delta int) {
	if len(m.boards) == 0 {
		return
	}
	m.cursor = (m.cursor + delta + len(m.boards)) % len(m.boards)
	m.load()
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	title := "HIGH SCORES"
	if m.onVersusTab() {
		title = "MATCH HISTORY"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.tabs(), m.width))
	b.WriteString("\n\n")
	b.WriteString(panelBorder.Render(m.body()))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// tabs renders the board names with the current one highlighted.
func (m ScoreboardModel) tabs() string {
	parts := make([]string, len(m.boards))
	for i, bd := range m.boards {
		if i == m.cursor {
			parts[i] = activeStyle.Render("[" + bd.Title + "]")
		} else {
			parts[i] = dimStyle.Render(" " + bd.Title + " ")
		}
	}
	return strings.Join(parts, "  ")
}

// body renders the table with its summary line, or the empty message.
func (m ScoreboardModel) body() string {
	empty := dimStyle.Italic(true).Padding(1, 4)

	if m.onVersusTab() {
		if len(m.matches) == 0 {
			return empty.Render("No matches recorded yet.\nGrab a friend and play versus!")
		}
		tally := fmt.Sprintf("P1 wins: %d   P2 wins: %d   Draws: %d", m.tally.P1Wins, m.tally.P2Wins, m.tally.Draws)
		return m.table.View() + "\n" + dimStyle.Render(tally)
	}

	if len(m.scores) == 0 {
		return empty.Render("No scores recorded yet.\nPlay a game to set a high score!")
	}
	if m.stats == nil {
		return m.table.View()
	}
	summary := fmt.Sprintf("Runs: %d   Best level: %d   Victories: %d   Average: %.1f",
		m.stats.GamesCount, m.stats.BestLevel, m.stats.Victories, m.stats.AvgScore)
	return m.table.View() + "\n" + dimStyle.Render(summary)
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
