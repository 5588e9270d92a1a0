package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"battletower/internal/config"
	"battletower/internal/eventbus"
	"battletower/internal/logging"
	"battletower/internal/pokeapi"
	"battletower/internal/summary"
	"battletower/internal/ui"
	"battletower/internal/ui/combobox"
	"battletower/internal/ui/services/events"
	"battletower/internal/ui/services/search"
	"battletower/internal/ui/services/selection"
	"battletower/internal/ui/services/source"
)

// envE2E makes the binary announce readiness for the pty test suite
const envE2E = "BATTLETOWER_E2E_TEST"

type options struct {
	baseURL    string
	configPath string
	logFile    string
	pageSize   int
	teamSize   int
	timeout    time.Duration
	summary    bool
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "battletower",
		Short: "Register as a Pokémon trainer and build your Battle Tower team",
		Long: `battletower is a terminal registration form for the Battle Tower.

Enter your name, pick your team from the searchable list (it loads more
Pokémon as you scroll) and view your team summary.

The listing service defaults to https://pokeapi.co/api/v2 and can be
changed with ` + config.EnvBaseURL + ` or --base-url.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Nothing may reach the terminal before the log file is open
			logging.Discard()

			bus := eventbus.New()
			defer bus.Close()
			subscribeDomainLog(bus)

			cfg, err := loadConfig(cmd, opts, bus)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cmd, cfg, bus, opts.summary)
		},
	}

	bindFlags(cmd, opts)
	return cmd
}

func bindFlags(cmd *cobra.Command, opts *options) {
	flags := cmd.Flags()
	flags.StringVar(&opts.baseURL, "base-url", "", "listing service base URL (overrides "+config.EnvBaseURL+")")
	flags.StringVarP(&opts.configPath, "config", "c", "", "config file (default "+config.DefaultPath()+")")
	flags.StringVar(&opts.logFile, "log-file", "", "log file path")
	flags.IntVar(&opts.pageSize, "page-size", 0, "Pokémon fetched per page")
	flags.IntVar(&opts.teamSize, "team-size", 0, "number of Pokémon a team must have")
	flags.DurationVar(&opts.timeout, "timeout", 0, "request timeout, e.g. 10s")
	flags.BoolVar(&opts.summary, "summary", false, "print the registered team as markdown on exit")
}

// loadConfig reads the config file, then applies the environment and
// finally any flags that were set explicitly
func loadConfig(cmd *cobra.Command, opts *options, bus eventbus.EventBus) (*config.Config, error) {
	configSvc := config.NewConfigServiceWithBus(opts.configPath, bus)
	cfg, err := configSvc.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	cfg.ApplyEnv(os.Getenv)

	flags := cmd.Flags()
	if flags.Changed("base-url") {
		cfg.API.BaseURL = opts.baseURL
	}
	if flags.Changed("page-size") {
		cfg.Form.PageSize = opts.pageSize
	}
	if flags.Changed("team-size") {
		cfg.Form.TeamSize = opts.teamSize
	}
	if flags.Changed("timeout") {
		cfg.API.Timeout = config.Duration{Duration: opts.timeout}
	}
	if flags.Changed("log-file") {
		cfg.Log.File = opts.logFile
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(parent context.Context, cmd *cobra.Command, cfg *config.Config, bus eventbus.EventBus, printSummary bool) error {
	// Set up logging
	logFile, err := logging.Setup(cfg.Log)
	if err != nil {
		logging.Discard()
	} else {
		defer logFile.Close()
	}

	if parent == nil {
		parent = context.Background()
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
	}()

	uiBus := events.NewBus()
	subscribeUILog(uiBus)

	// Initialize services
	client := pokeapi.New(cfg.API.BaseURL, cfg.API.Timeout.Duration)
	defer client.Close()
	optionSource := source.NewService(client, bus, cfg.Form.PageSize, cfg.API.SpriteBaseURL)
	resolver := pokeapi.NewTeamResolver(client, bus)

	log.Printf("Creating UI model (base URL %s, page size %d, team size %d)",
		cfg.API.BaseURL, cfg.Form.PageSize, cfg.Form.TeamSize)
	uiModel := ui.NewModel(ctx, cfg, ui.Deps{
		Source:   optionSource,
		Resolver: resolver,
		Bus:      bus,
		UIBus:    uiBus,
	})

	p := tea.NewProgram(uiModel,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	uiModel.SetProgram(p)

	if os.Getenv(envE2E) == "1" {
		fmt.Fprintln(cmd.OutOrStdout(), "__READY__")
	}

	// Run the UI
	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil {
		if !errors.Is(err, tea.ErrProgramKilled) || ctx.Err() == nil {
			log.Printf("Error running program: %v", err)
			return fmt.Errorf("run program: %w", err)
		}
		log.Printf("UI interrupted")
	}
	log.Printf("UI exited normally")

	if printSummary {
		if trainer := uiModel.Trainer(); trainer != nil {
			out, err := summary.Render(*trainer, 100, "")
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
		}
	}
	return nil
}

func subscribeDomainLog(bus eventbus.EventBus) {
	bus.Subscribe(eventbus.EventPageLoaded, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.PageLoadedEvent); ok {
			log.Printf("Page at offset %d: %d fetched, %d new, more=%t",
				event.Offset, event.Fetched, event.Added, event.HasMore)
		}
	})
	bus.Subscribe(eventbus.EventPageFailed, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.PageFailedEvent); ok {
			log.Printf("Page at offset %d failed: %v", event.Offset, event.Err)
		}
	})
	bus.Subscribe(eventbus.EventTeamResolved, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.TeamResolvedEvent); ok {
			log.Printf("Team resolved: %d of %d", event.Resolved, event.Requested)
		}
	})
	bus.Subscribe(eventbus.EventTrainerCreated, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.TrainerCreatedEvent); ok {
			log.Printf("Trainer registered: %s %s with %d Pokémon",
				event.Trainer.FirstName, event.Trainer.LastName, len(event.Trainer.Team))
		}
	})
	bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ErrorEvent); ok {
			log.Printf("Error: %s: %v", event.Message, event.Err)
		}
	})
	bus.Subscribe(eventbus.EventConfigLoaded, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ConfigLoadedEvent); ok {
			log.Printf("Loaded config from %s", event.Path)
		}
	})
}

func subscribeUILog(bus *events.Bus) {
	bus.Subscribe(events.NameOf(selection.SelectionChangedEvent{}), func(e interface{}) {
		if event, ok := e.(selection.SelectionChangedEvent); ok {
			log.Printf("Selection changed: %+v", event)
		}
	})
	bus.Subscribe(events.NameOf(search.QueryChangedEvent{}), func(e interface{}) {
		if event, ok := e.(search.QueryChangedEvent); ok {
			log.Printf("Query changed: %+v", event)
		}
	})
	bus.Subscribe(events.NameOf(combobox.OpenedEvent{}), func(e interface{}) {
		if event, ok := e.(combobox.OpenedEvent); ok {
			log.Printf("Team list opened with %d cached options", event.Cached)
		}
	})
	bus.Subscribe(events.NameOf(combobox.ClosedEvent{}), func(e interface{}) {
		if event, ok := e.(combobox.ClosedEvent); ok {
			log.Printf("Team list closed with %d selected", event.Selected)
		}
	})
}
