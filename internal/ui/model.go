package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"tama/internal/save"
	"tama/internal/sim"
)

// Model is the Bubble Tea model bridging the simulation engine to the
// terminal. It only ever reads engine snapshots; every mutation goes
// through the engine's command surface.
type Model struct {
	Engine   *sim.Engine
	Store    *save.Store
	TickRate time.Duration

	Snap               sim.Snapshot
	Choice             int
	Quitting           bool
	ShowingAdoptPrompt bool
	Message            string
	MessageExpires     time.Time
}

type tickMsg time.Time

// ChatMsg is display text pushed in from outside (e.g. a companion chat
// process via Program.Send). It never touches the simulation.
type ChatMsg string

var menuChoices = []string{"Eat", "Play", "Sleep", "Poke", "Quit"}

// NewModel wires a model around a restored engine.
func NewModel(engine *sim.Engine, store *save.Store, tickRate time.Duration) Model {
	snap := engine.Snapshot()
	return Model{
		Engine:             engine,
		Store:              store,
		TickRate:           tickRate,
		Snap:               snap,
		ShowingAdoptPrompt: snap.Dead,
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.TickRate, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKeys(msg)

	case tea.MouseMsg:
		m.updateHover(msg)
		return m, nil

	case tickMsg:
		m.Engine.Tick(time.Time(msg).UTC())
		m.Snap = m.Engine.Snapshot()
		if m.Snap.Dead && !m.ShowingAdoptPrompt {
			m.ShowingAdoptPrompt = true
		}
		return m, m.tick()

	case ChatMsg:
		m.setMessage(string(msg))
		return m, nil
	}

	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.Quitting = true
		return m, tea.Quit

	case "y":
		if m.Snap.Dead && m.ShowingAdoptPrompt {
			m.Engine.Reset(sim.TimeNow())
			m.Snap = m.Engine.Snapshot()
			m.ShowingAdoptPrompt = false
			m.Choice = 0
		}
		return m, nil

	case "n":
		if m.Snap.Dead && m.ShowingAdoptPrompt {
			m.ShowingAdoptPrompt = false
		}
		return m, nil

	case "up", "k":
		if m.Choice > 0 {
			m.Choice--
		}
	case "down", "j":
		if m.Choice < len(menuChoices)-1 {
			m.Choice++
		}
	case "enter", " ":
		if m.Snap.Dead {
			return m, nil
		}
		switch m.Choice {
		case 0:
			m.doAction(m.Engine.Eat, "🍖 Yum!", "🍽️ Not right now!")
		case 1:
			m.doAction(m.Engine.Play, "🎾 Wheee!", "😾 Not in the mood...")
		case 2:
			m.doAction(m.Engine.Sleep, "💤 Nap time...", "😴 Already snoozing!")
		case 3:
			m.doAction(m.Engine.Poke, "👉 Hey!", "🙅 Leave me alone!")
		case 4:
			m.Quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// doAction runs a command against the engine and surfaces the accepted or
// refused feedback. Refusals are purely cosmetic; the engine guarantees
// nothing changed.
func (m *Model) doAction(action func() bool, okMsg, refuseMsg string) {
	if action() {
		m.setMessage(okMsg)
	} else {
		m.setMessage(refuseMsg)
	}
	m.Snap = m.Engine.Snapshot()
	if m.Snap.Dead && !m.ShowingAdoptPrompt {
		m.ShowingAdoptPrompt = true
	}
}

// updateHover maps pointer motion over the pet art into the engine's hover
// toggle.
func (m *Model) updateHover(msg tea.MouseMsg) {
	if overPet(msg.X, msg.Y) {
		m.Engine.HoverStart()
	} else {
		m.Engine.HoverEnd()
	}
}

func (m *Model) setMessage(msg string) {
	m.Message = msg
	m.MessageExpires = sim.TimeNow().Add(3 * time.Second)
}
