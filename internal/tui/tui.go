package tui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/Zuo-Peng/i3icons/internal/block"
	"github.com/Zuo-Peng/i3icons/internal/render"
	"github.com/Zuo-Peng/i3icons/internal/stream"
)

// maxHistory bounds the output lines kept for scrolling.
const maxHistory = 1000

type Options struct {
	// InputTTY reads keys from /dev/tty, for when stdin carries the stream.
	InputTTY bool
	Title    string
}

// message types

type lineMsg struct {
	res stream.Result
}

type streamDoneMsg struct {
	err error
}

// model

type model struct {
	reader   *bufio.Reader
	tr       *stream.Transformer
	title    string
	current  block.Sequence
	history  []string
	view     viewport.Model
	help     help.Model
	lines    int
	frames   int
	follow   bool
	done     bool
	err      error
	width    int
	height   int
	ready    bool
	quitting bool
}

func newModel(src io.Reader, tr *stream.Transformer, title string) model {
	if title == "" {
		title = "i3icons preview"
	}
	return model{
		reader: bufio.NewReader(src),
		tr:     tr,
		title:  title,
		view:   viewport.New(0, 0),
		help:   help.New(),
		follow: true,
	}
}

// Run shows the transformed stream live until the user quits. It returns
// the decode error that stopped the stream, if any.
func Run(src io.Reader, tr *stream.Transformer, opts Options) error {
	progOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.InputTTY {
		progOpts = append(progOpts, tea.WithInputTTY())
	}

	p := tea.NewProgram(newModel(src, tr, opts.Title), progOpts...)
	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}

	fm := finalModel.(model)
	return fm.err
}

// readLine transforms the next line of the stream off the UI loop.
func readLine(r *bufio.Reader, tr *stream.Transformer) tea.Cmd {
	return func() tea.Msg {
		line, err := r.ReadBytes('\n')
		if len(line) > 0 {
			res, terr := tr.Transform(line)
			if terr != nil {
				return streamDoneMsg{err: terr}
			}
			return lineMsg{res: res}
		}
		if errors.Is(err, io.EOF) {
			return streamDoneMsg{}
		}
		return streamDoneMsg{err: err}
	}
}

func (m model) Init() tea.Cmd {
	return readLine(m.reader, m.tr)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.view.Width = m.panelWidth()
		m.view.Height = m.panelHeight()
		m.help.Width = m.width
		if m.follow {
			m.view.GotoBottom()
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, keys.Up):
			m.follow = false
			m.view.LineUp(1)
		case key.Matches(msg, keys.Down):
			m.view.LineDown(1)
		case key.Matches(msg, keys.PageUp):
			m.follow = false
			m.view.LineUp(m.panelHeight())
		case key.Matches(msg, keys.PageDown):
			m.view.LineDown(m.panelHeight())
		case key.Matches(msg, keys.Top):
			m.follow = false
			m.view.GotoTop()
		case key.Matches(msg, keys.Bottom):
			m.view.GotoBottom()
		case key.Matches(msg, keys.Follow):
			m.follow = !m.follow
			if m.follow {
				m.view.GotoBottom()
			}
		}
		return m, nil

	case lineMsg:
		m.lines++
		if msg.res.Blocks != nil {
			m.current = msg.res.Blocks
			m.frames++
		}
		m.history = append(m.history, strings.TrimRight(string(msg.res.Output), "\r\n"))
		if len(m.history) > maxHistory {
			m.history = m.history[len(m.history)-maxHistory:]
		}
		m.view.SetContent(strings.Join(m.history, "\n"))
		if m.follow {
			m.view.GotoBottom()
		}
		return m, readLine(m.reader, m.tr)

	case streamDoneMsg:
		m.done = true
		if msg.err != nil {
			m.err = fmt.Errorf("line %d: %w", m.lines+1, msg.err)
		}
		return m, nil
	}

	return m, nil
}

func (m model) View() string {
	if m.quitting || !m.ready {
		return ""
	}

	title := styleTitle.Render(m.title)

	barWidth := m.width - 2
	if barWidth < 1 {
		barWidth = 1
	}
	bar := styleBar.Width(m.width).Render(render.Bar(m.current, render.Options{Width: barWidth, Color: true}))

	history := stylePanelBorder.
		Width(m.panelWidth()).
		Height(m.panelHeight()).
		Render(m.view.View())

	return lipgloss.JoinVertical(lipgloss.Left, title, bar, history, m.statusBar())
}

// helper methods

func (m model) panelWidth() int {
	// minus the border
	w := m.width - 2
	if w < 20 {
		w = 20
	}
	return w
}

func (m model) panelHeight() int {
	// title (1) + bar (1) + borders (2) + status bar (1)
	h := m.height - 5
	if h < 3 {
		h = 3
	}
	return h
}

func (m model) statusBar() string {
	var state string
	switch {
	case m.err != nil:
		return styleError.Render("stopped: " + m.err.Error())
	case m.done:
		state = "end of stream"
	case m.follow:
		state = "following"
	default:
		state = "paused scroll"
	}

	parts := []string{
		humanize.Comma(int64(m.lines)) + " lines",
		humanize.Comma(int64(m.frames)) + " updates",
		state,
		m.help.View(keys),
	}
	return styleStatusBar.Render(strings.Join(parts, " | "))
}
