package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"llmsbrowse/internal/clipboard"
	"llmsbrowse/internal/config"
	"llmsbrowse/internal/eventbus"
	"llmsbrowse/internal/source"
	"llmsbrowse/internal/ui"
	"llmsbrowse/internal/ui/browser"
	"llmsbrowse/internal/ui/gallery"
	"llmsbrowse/internal/ui/logic"
	"llmsbrowse/internal/ui/prompts"
	"llmsbrowse/internal/watcher"
)

// clipboardFileEnv redirects copies to a file instead of the clipboard
const clipboardFileEnv = "LLMSBROWSE_CLIPBOARD_FILE"

var promptsCmd = &cobra.Command{
	Use:   "prompts [SOURCE]",
	Short: "Browse a prompt library",
	Long: `Browse a prompt library. SOURCE is a file path or URL of a JSON array of
{id, name, value} objects and defaults to [prompts] source from the config.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, []string{prompts.Name}, firstArg(args))
	},
}

var galleryCmd = &cobra.Command{
	Use:     "gallery [SOURCE]",
	Aliases: []string{"screenshots"},
	Short:   "Browse a screenshot gallery",
	Long: `Browse a screenshot gallery. SOURCE is a file path or URL of a JSON object
mapping titles to image URLs and defaults to [gallery] source from the config.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, []string{gallery.Name}, firstArg(args))
	},
}

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse prompts and screenshots side by side",
	Args:  cobra.NoArgs,
	RunE:  runBrowse,
}

func runBrowse(cmd *cobra.Command, args []string) error {
	return runApp(cmd, []string{prompts.Name, gallery.Name}, "")
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

// runApp mounts the named collections and runs the program until it quits.
// A non-empty src replaces the configured source of the single collection.
func runApp(cmd *cobra.Command, names []string, src string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	eventChan := make(chan eventbus.DomainEvent, 100)
	bus := eventbus.New()
	defer func() {
		bus.Close()
		close(eventChan)
	}()

	// Subscribe before the config is loaded so a first-run save is reported
	forwardEvent := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			log.Warn().Str("type", string(e.Type())).Msg("event channel full, dropping event")
		}
	}
	for _, t := range []eventbus.EventType{
		eventbus.EventSourceChanged,
		eventbus.EventItemCopied,
		eventbus.EventError,
		eventbus.EventConfigSaved,
	} {
		bus.Subscribe(t, forwardEvent)
	}

	cfg, err := loadOrCreateConfig(bus)
	if err != nil {
		return err
	}
	if src != "" && len(names) == 1 {
		overrideSource(cfg, names[0], src)
	}

	logFile, err := setupLogging(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}
	defer logFile.Close()

	lock := logic.NewScrollLock()
	opts := browser.Options{
		Context: ctx,
		PerPage: cfg.PageSize,
		Columns: cfg.Columns,
		Match:   logic.ParseMatchMode(cfg.Match),
		Lock:    lock,
		Writer:  clipboardWriter(cfg),
		AckTTL:  cfg.CopyAckDuration(),
		Bus:     bus,
	}

	panes := buildPanes(names, cfg, opts)
	model := ui.NewModel(lock, panes...)

	programOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if cfg.UI.Mouse {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(model, programOpts...)
	model.SetProgram(p)

	go func() {
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	if GlobalOpts.Watch {
		w, err := startWatcher(bus, panes)
		if err != nil {
			log.Warn().Err(err).Msg("live reload disabled")
		} else {
			defer func() {
				if err := w.Stop(); err != nil {
					log.Warn().Err(err).Msg("failed to stop watcher")
				}
			}()
		}
	}

	log.Info().Strs("panes", names).Int("page_size", cfg.PageSize).Msg("starting UI")
	_, err = p.Run()
	model.Close()

	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, tea.ErrInterrupted) {
		log.Error().Err(err).Msg("program failed")
		return fmt.Errorf("error running program: %w", err)
	}
	log.Info().Msg("UI exited normally")
	return nil
}

func overrideSource(cfg *config.Config, name, src string) {
	switch name {
	case prompts.Name:
		cfg.Prompts.Source = src
	case gallery.Name:
		cfg.Gallery.Source = src
	}
}

func buildPanes(names []string, cfg *config.Config, opts browser.Options) []ui.Pane {
	panes := make([]ui.Pane, 0, len(names))
	for _, name := range names {
		switch name {
		case prompts.Name:
			panes = append(panes, prompts.New(cfg.Prompts.Source, cfg, opts))
		case gallery.Name:
			panes = append(panes, gallery.New(cfg.Gallery.Source, cfg, opts))
		}
	}
	return panes
}

func clipboardWriter(cfg *config.Config) clipboard.Writer {
	if path := os.Getenv(clipboardFileEnv); path != "" {
		return clipboard.FileWriter{Path: path}
	}
	return clipboard.New(cfg.Clipboard, os.Stderr)
}

// startWatcher watches every file source among panes
func startWatcher(bus eventbus.EventBus, panes []ui.Pane) (*watcher.Watcher, error) {
	w, err := watcher.New(bus)
	if err != nil {
		return nil, err
	}
	for _, p := range panes {
		if p.Source() == "" || source.IsRemote(p.Source()) {
			continue
		}
		if err := w.Watch(p.Source()); err != nil {
			log.Warn().Err(err).Str("path", p.Source()).Msg("cannot watch source")
		}
	}
	w.Start()
	return w, nil
}
