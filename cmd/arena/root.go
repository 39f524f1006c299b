package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/cory-johannsen/arena/internal/config"
	"github.com/cory-johannsen/arena/internal/frontend/console"
	"github.com/cory-johannsen/arena/internal/frontend/handlers"
	"github.com/cory-johannsen/arena/internal/game/catalog"
	"github.com/cory-johannsen/arena/internal/game/dice"
	"github.com/cory-johannsen/arena/internal/observability"
)

// app bundles what every subcommand needs once configuration is resolved.
type app struct {
	cfg    config.Config
	logger *zap.Logger
	loader *catalog.Loader
	roller *dice.Roller
	prompt *console.Prompter
}

func newRootCmd() *cobra.Command {
	v := config.New()

	root := &cobra.Command{
		Use:   "arena",
		Short: "Random PvP team generator for Arena: The Contest",
		Long: `arena rolls for pick order and randomly drafts two teams of 3 or 4 heroes
from a shared roster, one hero per class per team and no hero on both teams.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd, v)
			if err != nil {
				return err
			}
			defer func() { _ = a.logger.Sync() }()
			flow := handlers.NewDraftFlow(a.cfg.Draft, a.loader, a.roller, a.prompt, a.logger)
			return flow.Run(cmd.Context())
		},
	}

	flags := root.PersistentFlags()
	flags.StringP("config", "c", "", "path to a YAML configuration file")
	flags.String("heroes", "res/heroes.txt", "path to the hero roster (.txt lines or .yaml)")
	flags.Int("team-size", 0, "heroes per team: 3 or 4 (0 asks)")
	flags.String("special", config.SpecialAsk, "include the Special class: ask, yes, or no")
	flags.Uint64("seed", 0, "fix the random sequence (0 uses crypto/rand)")
	flags.String("log-level", "warn", "log level: debug, info, warn, error")
	flags.String("log-format", "console", "log format: json or console")
	flags.Bool("no-color", false, "disable ANSI color output")

	_ = v.BindPFlag("heroes.file", flags.Lookup("heroes"))
	_ = v.BindPFlag("draft.team_size", flags.Lookup("team-size"))
	_ = v.BindPFlag("draft.special", flags.Lookup("special"))
	_ = v.BindPFlag("draft.seed", flags.Lookup("seed"))
	_ = v.BindPFlag("logging.level", flags.Lookup("log-level"))
	_ = v.BindPFlag("logging.format", flags.Lookup("log-format"))

	root.AddCommand(newCatalogCmd(v))
	return root
}

func newCatalogCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "Print the hero roster grouped by class",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd, v)
			if err != nil {
				return err
			}
			defer func() { _ = a.logger.Sync() }()
			if a.cfg.Draft.Special == config.SpecialNo {
				a.loader.ExcludeSpecialClass()
			}
			c, err := a.loader.Load()
			if err != nil {
				return err
			}
			return a.prompt.WriteLine(handlers.RenderCatalog(a.prompt, c))
		},
	}
}

// setup resolves configuration from defaults, the optional config file, the
// environment, and flags, then builds the logger, roster loader, and roller.
func setup(cmd *cobra.Command, v *viper.Viper) (*app, error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	if err := config.ReadFile(v, cfgPath); err != nil {
		return nil, err
	}
	cfg, err := config.LoadFromViper(v)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("initializing logger: %w", err)
	}

	loader := catalog.NewLoader(logger)
	if err := loader.SetSourcePath(cfg.Heroes.File); err != nil {
		return nil, err
	}
	logger.Debug("roster configured", zap.String("path", loader.SourcePath()))

	var src dice.Source
	if cfg.Draft.Seed != 0 {
		src = dice.NewSeededSource(cfg.Draft.Seed)
		logger.Info("using seeded random source", zap.Uint64("seed", cfg.Draft.Seed))
	} else {
		src = dice.NewCryptoSource()
	}

	noColor, _ := cmd.Flags().GetBool("no-color")
	out := cmd.OutOrStdout()
	prompt := console.NewPrompter(cmd.InOrStdin(), out, !noColor && isTerminal(out))

	return &app{
		cfg:    cfg,
		logger: logger,
		loader: loader,
		roller: dice.NewLoggedRoller(src, logger),
		prompt: prompt,
	}, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
