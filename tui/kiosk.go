// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package tui runs the balance game as a terminal kiosk.
//
// The model is meant for the single-threaded bubbletea event loop. It owns
// one survey session and feeds completed records into a shared stats store.
package tui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/danielhkuo/balance-game/models"
	"github.com/danielhkuo/balance-game/stats"
	"github.com/danielhkuo/balance-game/survey"
)

var (
	colorTeal  = lipgloss.Color("#20B9B4")
	colorMuted = lipgloss.Color("#2C4A54")
	colorError = lipgloss.Color("#E74C3C")

	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorTeal)
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorTeal)
	mutedStyle    = lipgloss.NewStyle().Foreground(colorMuted)
	errorStyle    = lipgloss.NewStyle().Foreground(colorError)
	optionStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 2)
	activeOptionStyle = optionStyle.BorderForeground(colorTeal)
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	chromeHeight  = 4 // title + blank + footer lines around the viewport
)

// Model is the bubbletea model for the kiosk.
type Model struct {
	session *survey.Session
	store   *stats.Store

	// cursor is the highlighted option on the current screen
	cursor int

	showingReport bool
	viewport      viewport.Model

	err      error
	quitting bool
}

// NewModel creates a kiosk model over the given question table.
func NewModel(store *stats.Store, questions []models.Question) (Model, error) {
	s, err := survey.New(questions)
	if err != nil {
		return Model{}, err
	}
	return Model{
		session:  s,
		store:    store,
		viewport: viewport.New(defaultWidth, defaultHeight-chromeHeight),
	}, nil
}

// Run blocks until the respondent quits.
func Run(store *stats.Store, questions []models.Question) error {
	m, err := NewModel(store, questions)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width
		m.viewport.Height = max(1, msg.Height-chromeHeight)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "Q":
			if !m.showingReport {
				slog.Info("kiosk closed with unfinished session", "state", m.session.State().String(), "answered", m.session.Index())
			}
			m.quitting = true
			return m, tea.Quit
		}

		if m.showingReport {
			return m.updateReport(msg)
		}
		return m.updateSurvey(msg), nil
	}
	return m, nil
}

func (m Model) updateReport(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "n", "N", "enter":
		m.session.StartNewSession()
		m.showingReport = false
		m.cursor = 0
		m.err = nil
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) updateSurvey(msg tea.KeyMsg) Model {
	key := msg.String()

	switch m.session.State() {
	case survey.StateAsking:
		switch key {
		case "1":
			return m.submit(m.session.SubmitChoice(models.ChoiceOne))
		case "2":
			return m.submit(m.session.SubmitChoice(models.ChoiceTwo))
		case "left", "h":
			m.cursor = 0
		case "right", "l":
			m.cursor = 1
		case "enter":
			return m.submit(m.session.SubmitChoice(models.Choice(m.cursor + 1)))
		}

	case survey.StateCollectGrade:
		switch key {
		case "up", "k":
			m.cursor = max(0, m.cursor-1)
		case "down", "j":
			m.cursor = min(len(models.Grades)-1, m.cursor+1)
		case "enter":
			return m.submit(m.session.SubmitGrade(models.Grades[m.cursor]))
		}

	case survey.StateCollectGender:
		switch key {
		case "up", "k":
			m.cursor = max(0, m.cursor-1)
		case "down", "j":
			m.cursor = min(len(models.Genders)-1, m.cursor+1)
		case "enter":
			m = m.submit(m.session.SubmitGender(models.Genders[m.cursor]))
			if m.err == nil {
				m = m.finish()
			}
			return m
		}
	}
	return m
}

// submit resets the cursor after a successful step and keeps the error
// for display otherwise.
func (m Model) submit(err error) Model {
	if err != nil {
		slog.Warn("rejected kiosk input", "error", err)
		m.err = err
		return m
	}
	m.err = nil
	m.cursor = 0
	return m
}

// finish folds the completed record into the store and switches to the
// results screen.
func (m Model) finish() Model {
	record, err := m.session.Finalize()
	if err == nil {
		err = m.store.Ingest(record)
	}
	if err != nil {
		slog.Error("failed to record respondent", "error", err)
		m.err = err
		return m
	}

	slog.Info("respondent ingested", "grade", record.Grade.String(), "gender", record.Gender.String())

	m.viewport.SetContent(FormatReport(m.store.Report()))
	m.viewport.GotoTop()
	m.showingReport = true
	return m
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return "Bye.\n"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Balance Game"))
	b.WriteString("\n\n")

	switch {
	case m.showingReport:
		b.WriteString(m.viewport.View())
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render("↑/↓ scroll • n new respondent • q quit"))
	default:
		b.WriteString(m.surveyView())
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.err.Error()))
	}
	b.WriteString("\n")
	return b.String()
}

func (m Model) surveyView() string {
	var b strings.Builder
	p := m.session.CurrentPrompt()

	switch p.Kind {
	case survey.PromptQuestion:
		fmt.Fprintf(&b, "Question %d/%d\n\n", p.Index+1, p.Total)
		left, right := optionStyle, optionStyle
		if m.cursor == 0 {
			left = activeOptionStyle
		} else {
			right = activeOptionStyle
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			left.Render("1  "+p.Question.OptionA),
			"   ",
			right.Render("2  "+p.Question.OptionB),
		))
		b.WriteString("\n\n")
		b.WriteString(mutedStyle.Render("1/2 choose • ←/→ + enter • q quit"))

	case survey.PromptGrade:
		b.WriteString("Select your grade:\n\n")
		for i, g := range models.Grades {
			b.WriteString(m.listItem(i, g.String()))
		}
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render("↑/↓ move • enter next • q quit"))

	case survey.PromptGender:
		b.WriteString("Select your gender:\n\n")
		for i, g := range models.Genders {
			b.WriteString(m.listItem(i, g.String()))
		}
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render("↑/↓ move • enter submit • q quit"))
	}
	return b.String()
}

func (m Model) listItem(i int, label string) string {
	if i == m.cursor {
		return selectedStyle.Render("(•) "+label) + "\n"
	}
	return "( ) " + label + "\n"
}

// FormatReport renders the cumulative statistics as plain text.
func FormatReport(r models.Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Total participants: %d\n\n", r.GrandTotal)

	for _, br := range r.Buckets {
		fmt.Fprintf(&b, "%s (%d):\n", br.Bucket, br.Total)
		for _, q := range br.Questions {
			fmt.Fprintf(&b, "Question %d: choice 1 - %.2f%%, choice 2 - %.2f%%\n", q.Index+1, q.PctOne, q.PctTwo)
		}
		b.WriteString("\n")
	}
	return b.String()
}
