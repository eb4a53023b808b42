package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Sprout theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconDewdrop = "💧"
	IconSprout  = "🌱"
	IconFlower  = "🌸"
	IconPet     = "🐾"
	IconShop    = "🛍️"
	IconSparkle = "✨"
	IconDone    = "✅"
	IconWarn    = "⚠️"
	IconError   = "🥀"
	IconScroll  = "📜"
	IconSwap    = "🔁"
	IconTag     = "🏷️"
)

var (
	cPrimary = lipgloss.Color("35")  // leaf green
	cAccent  = lipgloss.Color("213") // blossom pink
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cWater   = lipgloss.Color("39")  // dewdrop blue
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Water = lipgloss.NewStyle().Bold(true).Foreground(cWater)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// Dewdrops renders an amount with the currency icon.
func Dewdrops(amount int) string {
	return Water.Render(fmt.Sprintf("%s %d", IconDewdrop, amount))
}

// ItemLabel formats an item for display: "Custom (Original)" when a custom
// name is set, the original name otherwise.
func ItemLabel(originalName, customName string) string {
	customName = strings.TrimSpace(customName)
	if customName == "" {
		return originalName
	}
	return fmt.Sprintf("%s (%s)", customName, originalName)
}

// StageBar renders a plant growth bar, stage out of max.
func StageBar(stage, max int) string {
	if max <= 0 {
		max = 1
	}
	if stage < 0 {
		stage = 0
	}
	if stage > max {
		stage = max
	}
	filled := strings.Repeat("●", stage)
	empty := strings.Repeat("○", max-stage)
	return Good.Render(filled) + Muted.Render(empty) + Muted.Render(fmt.Sprintf(" stage %d/%d", stage, max))
}
