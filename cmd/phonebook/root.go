package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jask/phonebook/internal/config"
	"github.com/jask/phonebook/internal/contacts"
	"github.com/jask/phonebook/internal/logging"
	"github.com/jask/phonebook/internal/service"
	"github.com/jask/phonebook/internal/tui"
)

type rootOptions struct {
	configPath string
	debug      bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:          "phonebook",
		Short:        "In-memory contact book for the terminal",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context(), opts)
		},
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default ~/.config/phonebook/config.toml)")
	root.PersistentFlags().BoolVar(&opts.debug, "debug", false, "log at debug level")

	root.AddCommand(configCmd(opts))
	return root
}

func configCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}
	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.Save(opts.configPath, config.Default(), force)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	cmd.AddCommand(initCmd)
	return cmd
}

// session is everything the TUI needs, built from configuration.
type session struct {
	cfg      config.Config
	logger   *zap.Logger
	registry *contacts.Registry
	app      *tui.App
}

func setup(ctx context.Context, opts *rootOptions) (*session, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	logger, err := logging.New(cfg.Log, opts.debug)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}

	gen, err := contacts.GeneratorFor(cfg.Contacts.IDStrategy)
	if err != nil {
		_ = logger.Sync()
		return nil, fmt.Errorf("config: %w", err)
	}
	reg := contacts.NewRegistry(contacts.WithIDGenerator(gen))

	seeder := &service.SeedService{Registry: reg, Logger: logger}
	res, err := seeder.Seed(ctx, cfg.Seed)
	if err != nil {
		_ = logger.Sync()
		return nil, fmt.Errorf("seed: %w", err)
	}
	for _, e := range res.Errors {
		logger.Warn("invalid seed contact", zap.Error(e))
	}

	return &session{
		cfg:      cfg,
		logger:   logger,
		registry: reg,
		app:      tui.New(cfg.UI, reg, logger),
	}, nil
}

func runTUI(ctx context.Context, opts *rootOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	s, err := setup(ctx, opts)
	if err != nil {
		return err
	}
	defer func() { _ = s.logger.Sync() }()

	s.logger.Info("starting", zap.Int("contacts", s.registry.Len()))
	p := tea.NewProgram(s.app, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	s.logger.Info("exiting", zap.Int("contacts", s.registry.Len()))
	return nil
}
