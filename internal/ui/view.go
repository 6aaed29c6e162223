package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"tama/internal/sim"
)

var gameStyles = struct {
	title   lipgloss.Style
	status  lipgloss.Style
	stats   lipgloss.Style
	pet     lipgloss.Style
	menuBox lipgloss.Style
}{
	title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FF75B5")).
		Padding(0, 1),

	status: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FF75B5")).
		Width(40),

	stats: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FF75B5")).
		Width(40),

	pet: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFD700")),

	menuBox: lipgloss.NewStyle().
		Padding(0, 2),
}

// View implements tea.Model
func (m Model) View() string {
	if m.Quitting {
		return "Thanks for playing!\n"
	}
	if m.Snap.Dead {
		return m.deadView()
	}

	title := gameStyles.title.Render("🐾 " + sim.DefaultPetName + " 🐾")
	art := gameStyles.pet.Render(strings.TrimRight(Art(m.Snap), "\n"))
	stats := m.renderStats()
	status := gameStyles.status.Render("Status: " + sim.StatusLabel(m.Snap))
	menu := m.renderMenu()

	sections := []string{
		title,
		art,
		"",
		stats,
		"",
		status,
	}

	if m.Message != "" && sim.TimeNow().Before(m.MessageExpires) {
		sections = append(sections, "", gameStyles.status.Render(m.Message))
	}

	sections = append(sections,
		"",
		menu,
		"",
		gameStyles.status.Render("Arrows to move • enter to select • hover the cat to pet it • q to quit"),
	)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func makeBar(value int) string {
	filled := value / 10
	var bar strings.Builder
	for i := 0; i < 10; i++ {
		if i < filled {
			bar.WriteString("█")
		} else {
			bar.WriteString("░")
		}
	}
	return bar.String()
}

func (m Model) renderStats() string {
	lines := []string{
		fmt.Sprintf("Health: [%s] %3d%%", makeBar(m.Snap.Health), m.Snap.Health),
		fmt.Sprintf("Sleep:  [%s] %3d%%", makeBar(m.Snap.Sleep), m.Snap.Sleep),
		fmt.Sprintf("Fun:    [%s] %3d%%", makeBar(m.Snap.Fun), m.Snap.Fun),
		"",
		fmt.Sprintf("Alive:  %s", formatAlive(m.Snap.AliveFor)),
	}

	if m.Store != nil {
		if best, ok := m.Store.BestTime(); ok {
			lines = append(lines, fmt.Sprintf("Best:   %s", formatAlive(best)))
		}
	}

	return gameStyles.stats.Render(strings.Join(lines, "\n"))
}

func (m Model) renderMenu() string {
	var menuItems []string
	for i, choice := range menuChoices {
		cursor := " "
		if m.Choice == i {
			cursor = ">"
		}
		label := choice
		if cd := cooldownFor(m.Snap.Cooldowns, i); cd > 0 {
			label = fmt.Sprintf("%s (%.1fs)", choice, cd.Seconds())
		}
		menuItems = append(menuItems, fmt.Sprintf("%s %s", cursor, label))
	}
	return gameStyles.menuBox.Render(strings.Join(menuItems, "\n"))
}

// cooldownFor maps a menu index to its remaining cooldown.
func cooldownFor(c sim.Cooldowns, choice int) time.Duration {
	switch choice {
	case 0:
		return c.Eat
	case 1:
		return c.Play
	case 2:
		return c.Sleep
	case 3:
		return c.Poke
	default:
		return 0
	}
}

func formatAlive(d time.Duration) string {
	d = d.Truncate(time.Second)
	if d < 0 {
		d = 0
	}
	return d.String()
}

func (m Model) deadView() string {
	header := gameStyles.title.Render("💀 " + sim.DefaultPetName + " 💀")
	art := gameStyles.pet.Render(strings.TrimRight(deadArt, "\n"))

	lines := []string{
		header,
		art,
		"",
		gameStyles.status.Render("Your pet has passed away..."),
		gameStyles.status.Render("They were alive for " + formatAlive(m.Snap.AliveFor)),
	}

	if m.Store != nil {
		if best, ok := m.Store.BestTime(); ok {
			lines = append(lines, gameStyles.status.Render("Best time alive: "+formatAlive(best)))
		}
	}

	if m.ShowingAdoptPrompt {
		lines = append(lines,
			"",
			gameStyles.menuBox.Render("Would you like to adopt a new pet?"),
			"",
			gameStyles.status.Render("Press 'y' for yes, 'n' for no"),
		)
	} else {
		lines = append(lines,
			"",
			gameStyles.status.Render("Press q to exit"),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
