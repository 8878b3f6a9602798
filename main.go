package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"archhelper/internal/config"
	"archhelper/internal/diagram"
	"archhelper/internal/export"
	"archhelper/internal/logging"
	"archhelper/internal/refdata"
	"archhelper/internal/storage"
)

var (
	cfgFile string
	verbose bool

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "archhelper",
	Short: "Terminal helper for architecture decisions",
	Long: `archhelper places domains on a strategy chart and stakeholders on an
influence matrix, and compares architecture styles and database families
against the characteristics you care about.

Run without arguments to start the interactive interface.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = loadConfig()
		if err != nil {
			return err
		}
		level := cfg.Log.Level
		if verbose {
			level = "debug"
		}
		// The UI owns the terminal, so only subcommands may log to stderr.
		logger, err = logging.New(cfg.LogPath(), level, verbose && cmd.HasParent())
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runUI(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath(), "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	c, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `archhelper config init` to create a config file", err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", cfgFile, err)
	}
	return c, nil
}

func openStore() (storage.Store, error) {
	store, err := storage.Open(cfg.Storage, cfg.DataPath())
	if err != nil {
		return nil, fmt.Errorf("opening %s storage: %w", cfg.Storage, err)
	}
	return store, nil
}

func newExporter(c *config.Config, log *zap.Logger) (export.Exporter, error) {
	format, err := export.ParseFormat(c.ExportFormat)
	if err != nil {
		return export.Exporter{}, err
	}
	return export.Exporter{Dir: c.ExportPath(), Format: format, Log: log}, nil
}

func runUI(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	m, err := newModel(ctx, cfg, store, logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(model); ok && fm.anyDirty() {
		logger.Warn("quit with unsaved changes")
	}
	return nil
}

// newModel loads every diagram slot once and prepares the table views.
func newModel(ctx context.Context, c *config.Config, store storage.Store, log *zap.Logger) (model, error) {
	if log == nil {
		log = zap.NewNop()
	}
	exporter, err := newExporter(c, log)
	if err != nil {
		return model{}, err
	}

	panes := map[View]*Pane{
		ViewDomainChart:     {board: diagram.Load(ctx, store, diagram.DomainChart(), log)},
		ViewInfluenceMatrix: {board: diagram.Load(ctx, store, diagram.InfluenceMatrix(), log)},
	}

	archs, err := refdata.Architectures()
	if err != nil {
		return model{}, fmt.Errorf("loading architecture table: %w", err)
	}
	dbs, err := refdata.Databases()
	if err != nil {
		return model{}, fmt.Errorf("loading database table: %w", err)
	}

	label := textinput.New()
	label.Placeholder = "name"
	label.CharLimit = 60
	label.Width = panelWidth - 10

	color := textinput.New()
	color.Placeholder = "#ffcc00"
	color.CharLimit = 7
	color.Width = 9

	concern := textinput.New()
	concern.Placeholder = "what do they care about?"
	concern.CharLimit = 120
	concern.Width = panelWidth - 4

	view, _ := viewByName(c.StartView)

	return model{
		ctx:   ctx,
		view:  view,
		mode:  ModeNormal,
		panes: panes,
		tables: map[View]*TablePane{
			ViewArchitectures: newTablePane(archs, true),
			ViewDatabases:     newTablePane(dbs, false),
		},
		labelInput:   label,
		colorInput:   color,
		concernInput: concern,
		concernType:  diagram.ConcernImportant,
		config:       c,
		store:        store,
		exporter:     exporter,
		log:          log,
	}, nil
}
