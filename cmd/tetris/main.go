package main

import (
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/huynhanx03/go-tetris/pkg/console"
	"github.com/huynhanx03/go-tetris/pkg/engine"
	"github.com/huynhanx03/go-tetris/pkg/logger"
	"github.com/huynhanx03/go-tetris/pkg/piece"
	"github.com/huynhanx03/go-tetris/pkg/settings"
)

type flags struct {
	configPath string
	envFile    string
	variant    string
	seed       uint64
	verbose    bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "tetris",
		Short: "Next-piece queue and reserve simulator",
		Long: `Simulates the upcoming-piece queue of a Tetris-like game.

Variants:
  classic  queue only: play from the front, insert at the back
  reserve  always-full queue with a reserve of 3 pieces
  swap     reserve plus front/top and block swaps`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, f)
		},
	}

	cmd.Flags().StringVarP(&f.configPath, "config", "c", "config.yaml", "path to the YAML config file")
	cmd.Flags().StringVar(&f.envFile, "env-file", ".env", "optional file with TETRIS_* variables")
	cmd.Flags().StringVar(&f.variant, "variant", "", "classic, reserve or swap (overrides config)")
	cmd.Flags().Uint64Var(&f.seed, "seed", 0, "fixed seed for the piece stream (0 seeds from the clock)")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "log at debug level")

	return cmd
}

func run(cmd *cobra.Command, f flags) error {
	cfg, err := settings.Load(f.configPath, f.envFile)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("variant") {
		cfg.Game.Variant = f.variant
	}
	if cmd.Flags().Changed("seed") {
		cfg.Game.Seed = f.seed
	}
	if f.verbose {
		cfg.Logger.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logger.New(cfg.Logger, zap.Fields(zap.String("session", uuid.NewString())))
	if err != nil {
		return err
	}
	defer log.Close()

	game, err := newGame(cfg.Game, log.Logger)
	if err != nil {
		return err
	}

	log.Info("game started", zap.String("variant", cfg.Game.Variant), zap.Uint64("seed", cfg.Game.Seed))
	return console.NewSession(game, cmd.InOrStdin(), cmd.OutOrStdout(), console.WithLogger(log.Logger)).
		Run(cmd.Context())
}

func newGame(cfg settings.Game, log *zap.Logger) (console.Game, error) {
	alphabet, err := cfg.PieceAlphabet()
	if err != nil {
		return nil, err
	}

	var opts []piece.Option
	if cfg.Seed != 0 {
		opts = append(opts, piece.WithSeed(cfg.Seed))
	}
	gen := piece.NewGenerator(alphabet, opts...)
	log.Debug("piece generator ready", zap.String("variant", cfg.Variant), zap.Stringer("alphabet", gen.Alphabet()))

	switch cfg.Variant {
	case settings.VariantClassic:
		return console.NewClassicGame(gen, engine.QueueCapacity), nil
	case settings.VariantReserve:
		return console.NewReserveGame(engine.New(gen, engine.WithLogger(log)), false), nil
	default:
		return console.NewReserveGame(engine.New(gen, engine.WithLogger(log)), true), nil
	}
}
