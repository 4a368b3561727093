package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"multiselect/internal/config"
	"multiselect/internal/eventbus"
	"multiselect/internal/logging"
	"multiselect/internal/ui"
)

var (
	cfgFile string
	logFile string
	noMouse bool
)

// rootCmd runs the demo page when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "multiselect",
	Short: "Dropdown multi-select widget demo",
	Long: `multiselect shows a dropdown multi-selection widget in the terminal.

Click the control or press tab to open the list, type to filter it,
use the arrow keys and enter to toggle options, and click outside the
widget to close it. The chosen values are printed when you quit.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	RunE:          runDemo,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default $"+config.EnvConfigPath+" or the user config dir)")
	rootCmd.Flags().StringVar(&logFile, "log", logging.DefaultFile, "log file")
	rootCmd.Flags().BoolVar(&noMouse, "no-mouse", false, "disable mouse reporting")

	rootCmd.AddCommand(initCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	closer, err := logging.Setup(logFile)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer closer.Close()

	path := config.ResolvePath(cfgFile)
	cfg, loadedFrom, err := config.Load(path)
	if err != nil {
		return err
	}
	if loadedFrom == "" {
		log.Printf("No config at %s, using defaults", path)
	} else {
		log.Printf("Loaded config from %s", loadedFrom)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	bus := eventbus.New()
	defer bus.Close()
	subscribeLogging(bus)
	bus.Publish(eventbus.ConfigLoadedEvent{Path: loadedFrom, OptionCount: len(cfg.Options)})

	model := ui.NewModel(cfg, bus)
	defer model.Close()

	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if !noMouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(model, opts...)

	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		log.Printf("Error running program: %v", err)
		return fmt.Errorf("error running program: %w", err)
	}
	log.Printf("UI exited normally")

	printSelection(cmd.OutOrStdout(), model)
	return nil
}

func subscribeLogging(bus eventbus.EventBus) {
	bus.Subscribe(eventbus.EventConfigLoaded, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ConfigLoadedEvent); ok {
			log.Printf("Config ready: %d options (file %q)", event.OptionCount, event.Path)
		}
	})
	bus.Subscribe(eventbus.EventSelectionChanged, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SelectionChangedEvent); ok {
			log.Printf("Selection changed: +%v -%v (%d selected)", event.Added, event.Removed, event.Total)
		}
	})
	bus.Subscribe(eventbus.EventDropdownToggled, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.DropdownToggledEvent); ok {
			log.Printf("Dropdown open=%v", event.Open)
		}
	})
	bus.Subscribe(eventbus.EventAppReady, func(e eventbus.DomainEvent) {
		log.Printf("UI ready")
	})
}

func printSelection(w io.Writer, model *ui.Model) {
	selected := model.Selected()
	if len(selected) == 0 {
		fmt.Fprintln(w, "No options selected")
		return
	}
	fmt.Fprintln(w, "Selected Values:")
	for _, opt := range selected {
		fmt.Fprintf(w, "  %s (%s)\n", opt.Label, opt.Value)
	}
}
