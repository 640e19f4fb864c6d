package tui

import (
	"context"

	"wrestler_elo/internal/app"
	"wrestler_elo/internal/domain/elo"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
)

// Fetcher produces query results for the table.
// processing.QueryBinding implements it.
type Fetcher interface {
	Fetch(ctx context.Context) app.QueryResult
	Refetch(ctx context.Context) app.QueryResult
}

type focusArea int

const (
	focusName focusArea = iota
	focusBrands
	focusTable
	focusCount
)

// fetchedMsg delivers a finished fetch. seq ties it to the fetch that was
// issued so a result from a superseded fetch is dropped.
type fetchedMsg struct {
	seq    int
	result app.QueryResult
}

// Model is the Bubble Tea model of the Elo table screen
type Model struct {
	ctx     context.Context
	fetcher Fetcher
	columns elo.ColumnModel

	state    elo.ViewState
	result   app.QueryResult
	fetchSeq int

	nameInput    textinput.Model
	focus        focusArea
	brandCursor  int
	columnCursor int

	help  help.Model
	width int
}

// New creates the table screen. The first fetch starts from Init.
func New(ctx context.Context, fetcher Fetcher, columns elo.ColumnModel, state elo.ViewState) Model {
	ni := textinput.New()
	ni.Placeholder = "Filter by name"
	ni.Prompt = ""
	ni.CharLimit = 0
	ni.Width = 30
	ni.SetValue(state.NameFilter)
	ni.Focus()

	return Model{
		ctx:       ctx,
		fetcher:   fetcher,
		columns:   columns,
		state:     state,
		result:    app.PendingResult(),
		nameInput: ni,
		focus:     focusName,
		help:      help.New(),
	}
}

// Init starts the initial fetch (required by Bubbletea)
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.fetchCmd(false), textinput.Blink)
}

// State returns the current view state
func (m Model) State() elo.ViewState {
	return m.state
}

// Result returns the current query result
func (m Model) Result() app.QueryResult {
	return m.result
}

// fetchCmd runs the fetcher off the event loop
func (m Model) fetchCmd(refetch bool) tea.Cmd {
	ctx, fetcher, seq := m.ctx, m.fetcher, m.fetchSeq
	return func() tea.Msg {
		if refetch {
			return fetchedMsg{seq: seq, result: fetcher.Refetch(ctx)}
		}
		return fetchedMsg{seq: seq, result: fetcher.Fetch(ctx)}
	}
}

// Update handles messages and updates the model (required by Bubbletea)
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case fetchedMsg:
		if msg.seq != m.fetchSeq {
			log.Debug().Int("seq", msg.seq).Msg("Dropping superseded fetch result")
			return m, nil
		}
		m.result = msg.result
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, keys.Refresh):
			m.fetchSeq++
			m.result = app.PendingResult()
			return m, m.fetchCmd(true)

		case key.Matches(msg, keys.NextFocus):
			return m.setFocus((m.focus + 1) % focusCount)

		case key.Matches(msg, keys.PrevFocus):
			return m.setFocus((m.focus + focusCount - 1) % focusCount)
		}

		switch m.focus {
		case focusName:
			return m.updateName(msg)
		case focusBrands:
			return m.updateBrands(msg), nil
		case focusTable:
			return m.updateTable(msg), nil
		}
	}

	if m.focus == focusName {
		var cmd tea.Cmd
		m.nameInput, cmd = m.nameInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) setFocus(focus focusArea) (tea.Model, tea.Cmd) {
	m.focus = focus
	if focus == focusName {
		return m, m.nameInput.Focus()
	}
	m.nameInput.Blur()
	return m, nil
}

// updateName forwards the key to the text input and passes its full value on
func (m Model) updateName(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	m.state = m.state.OnNameInput(m.nameInput.Value())
	return m, cmd
}

func (m Model) updateBrands(msg tea.KeyMsg) Model {
	options := elo.BrandOptions()

	switch {
	case key.Matches(msg, keys.Left):
		if m.brandCursor > 0 {
			m.brandCursor--
		}
	case key.Matches(msg, keys.Right):
		if m.brandCursor < len(options)-1 {
			m.brandCursor++
		}
	case key.Matches(msg, keys.ToggleBrand):
		selection := elo.ToggleBrand(m.state.SelectedBrands, options[m.brandCursor].Value)
		m.state = m.state.OnBrandSelectionChange(selection)
	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m
}

func (m Model) updateTable(msg tea.KeyMsg) Model {
	leaves := m.columns.Leaves()
	view := m.view()

	switch {
	case key.Matches(msg, keys.Left):
		if m.columnCursor > 0 {
			m.columnCursor--
		}
	case key.Matches(msg, keys.Right):
		if m.columnCursor < len(leaves)-1 {
			m.columnCursor++
		}
	case key.Matches(msg, keys.Sort):
		m.state = m.state.OnSortToggle(leaves[m.columnCursor].ID, false)
	case key.Matches(msg, keys.MultiSort):
		m.state = m.state.OnSortToggle(leaves[m.columnCursor].ID, true)
	case key.Matches(msg, keys.NextPage):
		m.state = m.state.OnPageChange(min(view.Page+1, view.PageCount-1))
	case key.Matches(msg, keys.PrevPage):
		m.state = m.state.OnPageChange(view.Page - 1)
	case key.Matches(msg, keys.FirstPage):
		m.state = m.state.OnPageChange(0)
	case key.Matches(msg, keys.LastPage):
		m.state = m.state.OnPageChange(view.PageCount - 1)
	case key.Matches(msg, keys.LargerPages):
		m.state = m.state.OnPageChange(view.Page).OnPageSizeChange(elo.NextPageSize(view.PageSize, true))
	case key.Matches(msg, keys.SmallerPages):
		m.state = m.state.OnPageChange(view.Page).OnPageSizeChange(elo.NextPageSize(view.PageSize, false))
	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m
}

// view renders the table for the current result and state
func (m Model) view() elo.TableView {
	return elo.Render(m.columns, m.result, m.state)
}

// Run starts the interactive program on the alternate screen and blocks until it quits
func Run(ctx context.Context, fetcher Fetcher, columns elo.ColumnModel, state elo.ViewState) error {
	p := tea.NewProgram(New(ctx, fetcher, columns, state), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
