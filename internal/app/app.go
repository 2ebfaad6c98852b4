package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/atomicstack/term-glossary/internal/api"
	"github.com/atomicstack/term-glossary/internal/backend"
	"github.com/atomicstack/term-glossary/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	ServerURL  string
	Width      int
	Height     int
	ShowFooter bool
	Font       string
	Contact    string
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	client, err := api.New(cfg.ServerURL)
	if err != nil {
		return fmt.Errorf("create api client: %w", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	loader := backend.NewLoader(client, backend.DefaultReloadInterval)
	defer func() {
		loader.Stop()
		loader.Wait()
	}()

	model := ui.NewModel(ui.Options{
		Loader:     loader,
		Reporter:   client,
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
		Font:       cfg.Font,
		Contact:    cfg.Contact,
	})
	model.SetContext(ctx)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
