package tui

import (
	"context"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"sprout/internal/engine"
)

// RunScene opens the live companion scene: the active plant plus every
// owned pet wandering the bounded area. Pets can be dragged with the mouse.
func RunScene(ctx context.Context, svc *engine.Service, tickInterval time.Duration, out io.Writer) error {
	m := newSceneModel(ctx, svc, tickInterval)
	p := tea.NewProgram(m,
		tea.WithOutput(out),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	_, err := p.Run()
	return err
}
