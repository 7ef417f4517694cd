// Package cli implements the fakeword commands.
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	fakeword "github.com/ieee0824/fakeword-go"
	"github.com/ieee0824/fakeword-go/connection"
	"github.com/ieee0824/fakeword-go/generator"
	"github.com/ieee0824/fakeword-go/internal/app"
	"github.com/ieee0824/fakeword-go/internal/config"
)

// ConfigLoader reads the configuration from an optional file path.
type ConfigLoader func(path string) (*config.Config, error)

// ModelLoader produces a ready generator for a command.
type ModelLoader interface {
	Load(ctx context.Context, cfg *config.Config, opts ...fakeword.Option) (*fakeword.Generator, error)
}

// state is shared by every command of one invocation.
type state struct {
	configPath string
	cfg        *config.Config
	logger     *slog.Logger
}

// NewRootCmd creates the root fakeword command with all subcommands registered.
func NewRootCmd() *cobra.Command {
	return newRootCmd(config.Load, newDefaultModelLoader())
}

func newRootCmd(loadConfig ConfigLoader, models ModelLoader) *cobra.Command {
	st := &state{}
	root := &cobra.Command{
		Use:           "fakeword",
		Short:         "fakeword - generate pronounceable invented English words",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(st.configPath)
			if err != nil {
				return err
			}
			st.cfg = cfg
			st.logger = app.NewLogger(cfg.Log, cmd.ErrOrStderr())
			return nil
		},
	}
	root.PersistentFlags().StringVar(&st.configPath, "config", "", "config file (default $FAKEWORD_CONFIG or ./fakeword.yaml)")

	root.AddCommand(newGenerateCmd(st, models))
	root.AddCommand(newBuildCmd(st, models))
	root.AddCommand(newRespellCmd())
	return root
}

// Options maps the configuration onto generator options.
func Options(cfg *config.Config) ([]fakeword.Option, error) {
	policy, err := connection.ParsePolicy(cfg.Generator.ConnectionPolicy)
	if err != nil {
		return nil, err
	}
	limit := cfg.Corpus.FrequencyLimit
	if limit == 0 {
		limit = -1
	}
	opts := []fakeword.Option{
		fakeword.WithGeneratorConfig(generator.Config{
			WordLengthDecay: cfg.Generator.WordLengthDecay,
			WordLengthBias:  cfg.Generator.WordLengthBias,
			WordLengthMax:   cfg.Generator.WordLengthMax,
		}),
		fakeword.WithConnectionPolicy(policy),
		fakeword.WithMaxWalkSteps(cfg.Generator.MaxWalkSteps),
		fakeword.WithNovelty(cfg.Generator.MinNovelty, cfg.Generator.MaxAttempts),
		fakeword.WithWorkers(cfg.Corpus.Workers),
		fakeword.WithFrequencyLimit(limit),
	}
	if !cfg.Cache.Disabled {
		opts = append(opts, fakeword.WithCacheDir(cfg.Cache.Dir))
	}
	return opts, nil
}

// fileModelLoader builds models from the configured dictionary files.
type fileModelLoader struct{}

func newDefaultModelLoader() *fileModelLoader {
	return &fileModelLoader{}
}

func (l *fileModelLoader) Load(ctx context.Context, cfg *config.Config, extra ...fakeword.Option) (*fakeword.Generator, error) {
	opts, err := Options(cfg)
	if err != nil {
		return nil, err
	}
	opts = append(opts, extra...)
	g, err := fakeword.New(ctx, cfg.Corpus.DictionaryPath, cfg.Corpus.FrequencyPath, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading models: %w", err)
	}
	return g, nil
}
