package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"careergps/internal/bootstrap"
	"careergps/internal/domain/recommendation"
	"careergps/internal/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	app = "careergps-bootstrap"

	defaultSamples = 50000
	defaultOut     = "data/bootstrap.jsonl"
)

var rootCmd = &cobra.Command{
	Use:           app,
	Short:         "Generate a labelled synthetic survey dataset from the rule-based recommender",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return run(cmd.Context())
	},
}

// Execute executes the root command.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	return nil
}

func init() {
	if err := viper.BindEnv("samples", "SAMPLE_SIZE"); err != nil {
		panic(fmt.Sprintf("binding SAMPLE_SIZE environment variable: %v", err))
	}

	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	rootCmd.Flags().IntP("samples", "n", defaultSamples, "number of samples to generate")
	rootCmd.Flags().StringP("out", "o", defaultOut, "output JSONL file")
	rootCmd.Flags().Uint32("seed", bootstrap.DefaultSeed, "generator seed")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	viper.BindPFlag("samples", rootCmd.Flags().Lookup("samples"))
	viper.BindPFlag("out", rootCmd.Flags().Lookup("out"))
	viper.BindPFlag("seed", rootCmd.Flags().Lookup("seed"))
}

func run(ctx context.Context) error {
	level := "info"
	if viper.GetBool("debug") {
		level = "debug"
	}
	format := "console"
	if viper.GetBool("json") {
		format = "json"
	}
	zl := logger.New(level, format)
	defer zl.Sync()

	samples := viper.GetInt("samples")
	out := viper.GetString("out")
	seed := viper.GetUint32("seed")

	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer f.Close()

	zl.Info("generating samples", zap.Int("samples", samples), zap.String("out", out), zap.Uint32("seed", seed))

	gen := bootstrap.NewGenerator(recommendation.DefaultEngine(), logger.NewZapAdapter(zl))
	n, err := gen.Generate(ctx, f, bootstrap.NewSampler(seed), samples)
	if err != nil {
		zl.Error("generation stopped", zap.Int("written", n), zap.Error(err))
		return err
	}

	zl.Info("generation complete", zap.Int("written", n))
	return nil
}
