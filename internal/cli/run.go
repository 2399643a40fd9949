package cli

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"amphi/internal/eventbus"
	"amphi/internal/logging"
	"amphi/internal/ui"
)

// runTUI starts the terminal page and blocks until it exits
func runTUI(cmd *cobra.Command, opts *options) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	logger, cleanup, err := logging.New(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("set up logging: %w", err)
	}
	defer cleanup()

	applyColor(cfg)

	bus := eventbus.New(logger)
	defer bus.Close()

	// Keep a trace of what the page reports upward
	bus.Subscribe(eventbus.EventSearchSubmitted, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.SearchSubmittedEvent); ok {
			logger.Info("search submitted", zap.String("query", ev.Query))
		}
	})
	bus.Subscribe(eventbus.EventResultActivated, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.ResultActivatedEvent); ok {
			logger.Info("result activated", zap.String("id", ev.Result.ID), zap.String("url", ev.Result.URL))
		}
	})

	model := ui.NewModel(cfg, bus, newBackend(cfg), logger)
	defer model.Close()

	programOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(cmd.Context())}
	if cfg.UI.Mouse {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(model, programOpts...)
	model.SetProgram(p)

	logger.Info("starting UI",
		zap.String("backend", cfg.Search.Backend),
		zap.Bool("mouse", cfg.UI.Mouse))

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run UI: %w", err)
	}
	return nil
}
