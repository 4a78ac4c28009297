package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/beka-birhanu/dfs-maze/config"
	"github.com/beka-birhanu/dfs-maze/maze"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type options struct {
	length int
	width  int
	seed   int64
	verify bool
}

func initLogger(level logrus.Level, out io.Writer) *logrus.Logger {
	appLogger := logrus.New()
	appLogger.SetOutput(out)
	appLogger.SetLevel(level)
	appLogger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return appLogger
}

func newRootCmd(cfg config.Config) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "dfs-maze",
		Short: "Generate a perfect maze",
		Long: `Generate a perfect maze with a randomized depth-first traversal and print it.

Examples:
  dfs-maze --length 8 --width 20
  dfs-maze -l 5 -w 5 --seed 42 --verify`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, cfg, opts)
		},
	}

	rootCmd.Flags().IntVarP(&opts.length, "length", "l", cfg.Length, "Number of rows")
	rootCmd.Flags().IntVarP(&opts.width, "width", "w", cfg.Width, "Number of columns")
	rootCmd.Flags().Int64VarP(&opts.seed, "seed", "s", cfg.Seed, "Seed for reproducible mazes (0 = random)")
	rootCmd.Flags().BoolVar(&opts.verify, "verify", false, "Check the perfect maze property before printing")

	return rootCmd
}

func run(cmd *cobra.Command, cfg config.Config, opts *options) error {
	appLogger := initLogger(cfg.LogLevel, cmd.ErrOrStderr())

	seed := opts.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	grid, err := maze.New(opts.length, opts.width)
	if err != nil {
		return err
	}

	generator, err := maze.NewGenerator(rand.New(rand.NewSource(seed)), appLogger.WithField("component", "GENERATOR"))
	if err != nil {
		return err
	}

	if err := generator.Generate(grid); err != nil {
		return fmt.Errorf("generating maze: %w", err)
	}

	if opts.verify {
		if err := maze.Validate(grid); err != nil {
			return fmt.Errorf("verifying maze: %w", err)
		}
		appLogger.WithField("maze_id", grid.ID()).Info("maze verified")
	}

	start, _ := grid.Start()
	end, _ := grid.End()

	out := cmd.OutOrStdout()
	fmt.Fprint(out, grid)
	fmt.Fprintf(out, "seed:  %d\n", seed)
	fmt.Fprintf(out, "start: %s\n", start)
	fmt.Fprintf(out, "end:   %s\n", end)
	return nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading configuration: %v\n", err)
		os.Exit(1)
	}

	if err := newRootCmd(cfg).Execute(); err != nil {
		os.Exit(1)
	}
}
