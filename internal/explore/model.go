// ============================================================================
// meinDENKWERK (mDW) - Numerik
// ============================================================================
//
// Package:     explore
// Description: Bubbletea model to step through subdivision counts
// Author:      Mike Stoffels
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package explore

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/msto63/mdw-simpson/internal/capacitor"
	"github.com/msto63/mdw-simpson/internal/study"
)

// MinSubdivisions is the smallest count Simpson's rule accepts
const MinSubdivisions = 2

// Model is the Bubbletea model of the explore view
type Model struct {
	problem  capacitor.Problem
	initialN int

	n        int
	current  study.Record
	previous *study.Record
	err      error

	keys keyMap
	help help.Model
}

// New creates the model starting at n. Odd or too small values are raised
// to the next valid count.
func New(p capacitor.Problem, n int) Model {
	n = normalize(n)
	m := Model{
		problem:  p,
		initialN: n,
		keys:     defaultKeys,
		help:     help.New(),
	}
	m.setN(n)
	return m
}

// Run starts the interactive view and blocks until the user quits
func Run(p capacitor.Problem, n int) error {
	_, err := tea.NewProgram(New(p, n), tea.WithAltScreen()).Run()
	return err
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Increase):
			m.setN(m.n + 2)
		case key.Matches(msg, m.keys.Decrease):
			if m.n-2 >= MinSubdivisions {
				m.setN(m.n - 2)
			}
		case key.Matches(msg, m.keys.Reset):
			m.setN(m.initialN)
			m.previous = nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}
	return m, nil
}

// View renders the UI
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Regla de Simpson · Carga en el capacitor"))
	b.WriteString("\n")

	var body strings.Builder
	row := func(label, value string) {
		body.WriteString(labelStyle.Render(label))
		body.WriteString(value)
		body.WriteString("\n")
	}

	row("n", valueStyle.Render(fmt.Sprintf("%d", m.n)))
	if m.err != nil {
		row("Fehler", errorStyle.Render(m.err.Error()))
	} else {
		row("Carga", valueStyle.Render(fmt.Sprintf("%.8e C", m.current.Charge)))
		row("Error", valueStyle.Render(fmt.Sprintf("%.8e C", m.current.Error)))
		row("Solución analítica", fmt.Sprintf("%.8e C", m.problem.AnalyticalCharge()))
		order := "-"
		if m.previous != nil {
			if o := study.ObservedOrder(*m.previous, m.current); !math.IsNaN(o) {
				order = fmt.Sprintf("%.3f (n = %d → %d)", o, m.previous.N, m.current.N)
			}
		}
		row("Orden observado", orderStyle.Render(order))
	}
	b.WriteString(boxStyle.Render(strings.TrimSuffix(body.String(), "\n")))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	b.WriteString("\n")

	return b.String()
}

// N returns the current subdivision count
func (m Model) N() int {
	return m.n
}

// Current returns the record for the current n
func (m Model) Current() study.Record {
	return m.current
}

// Err returns the last computation error
func (m Model) Err() error {
	return m.err
}

func (m *Model) setN(n int) {
	if m.err == nil && m.current.N != 0 {
		prev := m.current
		m.previous = &prev
	}

	m.n = n
	charge, err := m.problem.SimpsonCharge(n)
	if err != nil {
		m.err = err
		m.current = study.Record{N: n}
		return
	}
	m.err = nil
	m.current = study.Record{
		N:      n,
		Charge: charge,
		Error:  math.Abs(charge - m.problem.AnalyticalCharge()),
	}
}

func normalize(n int) int {
	if n < MinSubdivisions {
		return MinSubdivisions
	}
	if n%2 != 0 {
		return n + 1
	}
	return n
}
