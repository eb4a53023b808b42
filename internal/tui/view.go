package tui

import (
	"fmt"
	"strings"

	"sprout/internal/engine"
	"sprout/internal/ui"
)

// Pet glyphs by catalog id. Two cells wide, matching petSprite.
var petGlyphs = map[string]string{
	"pet_person":   "🧍",
	"pet_mushroom": "🍄",
	"pet_cat":      "🐈",
	"pet_slime":    "🟢",
}

// Plant glyphs by stage, seed through fully flowering.
var plantGlyphs = [engine.MaxStage + 1]string{"··", "🌱", "🌿", "🪴", "🌷", "🌸"}

func (m sceneModel) View() string {
	if m.width == 0 {
		return "Loading…"
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderScene())
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m sceneModel) renderHeader() string {
	stage := m.snap.PlantStages[m.snap.ActivePlantID]
	plant := engine.DisplayName(m.snap.ActivePlantID)
	for _, e := range m.snap.Inventory {
		if e.ItemID == m.snap.ActivePlantID {
			plant = ui.ItemLabel(plant, e.CustomName)
		}
	}
	left := fmt.Sprintf("%s Sprout  %s", ui.IconSprout, ui.Dewdrops(m.snap.CurrencyBalance))
	right := fmt.Sprintf("%s  %s", ui.H2.Render(plant), ui.StageBar(stage, engine.MaxStage))
	return left + "   " + right + "\n" + ui.Muted.Render(strings.Repeat("─", max(m.width, 1)))
}

// renderScene draws the bounded pet area as a cell grid with the plant at
// the bottom center, or the open overlay panel instead.
func (m sceneModel) renderScene() string {
	bounds := m.sceneBounds()
	w := int(bounds.Width)
	h := int(bounds.Height)

	if m.overlay != overlayNone {
		return m.renderOverlay(h + 2)
	}

	grid := make([][]string, h)
	for y := range grid {
		grid[y] = make([]string, w)
		for x := range grid[y] {
			grid[y][x] = " "
		}
	}

	// Plant sits on the bottom row, centered.
	stage := m.snap.PlantStages[m.snap.ActivePlantID]
	placeGlyph(grid, w/2-1, h-1, plantGlyphs[clampStage(stage)])

	for _, c := range m.herd.All() {
		glyph, ok := petGlyphs[c.PetID()]
		if !ok {
			glyph = ui.IconPet
		}
		pos := c.Position()
		placeGlyph(grid, int(pos.X), int(pos.Y), glyph)
	}

	var b strings.Builder
	border := ui.Muted.Render("│")
	for y := 0; y < h; y++ {
		b.WriteString(border)
		b.WriteString(strings.Join(grid[y], ""))
		b.WriteString(border)
		b.WriteString("\n")
	}
	b.WriteString(ui.Muted.Render("└" + strings.Repeat("─", w) + "┘"))
	b.WriteString("\n")
	return b.String()
}

// placeGlyph writes a two-cell glyph at (x, y), dropping the neighbor cell
// so columns stay aligned.
func placeGlyph(grid [][]string, x, y int, glyph string) {
	if y < 0 || y >= len(grid) || x < 0 || x >= len(grid[y]) {
		return
	}
	grid[y][x] = glyph
	if x+1 < len(grid[y]) {
		grid[y][x+1] = ""
	}
}

func (m sceneModel) renderOverlay(height int) string {
	titles := map[overlay]string{
		overlayTasks:  ui.Heading(ui.IconDone, "Log a task"),
		overlayShop:   ui.Heading(ui.IconShop, "Shop"),
		overlayGrow:   ui.Heading(ui.IconSprout, "Grow"),
		overlayPlants: ui.Heading(ui.IconSwap, "Switch plant"),
	}

	var lines []string
	lines = append(lines, titles[m.overlay], "")
	for i, row := range m.overlayRows() {
		cursor := "  "
		label := row.label
		if i == m.selected {
			cursor = "> "
			label = ui.SelectedRow.Render(label)
		}
		lines = append(lines, cursor+label)
	}
	lines = append(lines, "", ui.Muted.Render("enter: confirm · esc: close"))

	panel := ui.Panel.Render(strings.Join(lines, "\n"))
	pad := height - strings.Count(panel, "\n") - 1
	if pad < 0 {
		pad = 0
	}
	return panel + strings.Repeat("\n", pad+1)
}

func (m sceneModel) renderFooter() string {
	keys := ui.Muted.Render("t: tasks · s: shop · g: grow · p: plants · drag pets with the mouse · q: quit")
	return keys + "\n" + m.lastLog
}

func clampStage(stage int) int {
	if stage < 0 {
		return 0
	}
	if stage > engine.MaxStage {
		return engine.MaxStage
	}
	return stage
}
