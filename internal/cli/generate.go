package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	fakeword "github.com/ieee0824/fakeword-go"
	"github.com/ieee0824/fakeword-go/generator"
	"github.com/ieee0824/fakeword-go/syllable"
)

// wordOutput is the JSON/YAML schema of one generated word.
type wordOutput struct {
	English   string   `json:"english"   yaml:"english"`
	IPA       string   `json:"ipa"       yaml:"ipa"`
	Arpabet   string   `json:"arpabet"   yaml:"arpabet"`
	Syllables []string `json:"syllables" yaml:"syllables"`
}

func toOutput(w syllable.Word) wordOutput {
	out := wordOutput{
		English:   w.English(),
		IPA:       w.IPA(),
		Arpabet:   w.Arpabet(),
		Syllables: make([]string, len(w)),
	}
	for i, s := range w {
		out.Syllables[i] = s.English()
	}
	return out
}

func newGenerateCmd(st *state, models ModelLoader) *cobra.Command {
	var (
		count   int
		seed    uint64
		decay   float64
		bias    float64
		maxLen  int
		novelty int
		format  string
	)
	cmd := &cobra.Command{
		Use:          "generate",
		Short:        "Generate invented words",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if count < 0 {
				return fmt.Errorf("count must be >= 0")
			}
			switch format {
			case "text", "json", "yaml":
			default:
				return fmt.Errorf("unknown format %q (want text, json or yaml)", format)
			}

			genCfg := generator.Config{
				WordLengthDecay: st.cfg.Generator.WordLengthDecay,
				WordLengthBias:  st.cfg.Generator.WordLengthBias,
				WordLengthMax:   st.cfg.Generator.WordLengthMax,
			}
			flags := cmd.Flags()
			if flags.Changed("decay") {
				genCfg.WordLengthDecay = decay
			}
			if flags.Changed("bias") {
				genCfg.WordLengthBias = bias
			}
			if flags.Changed("max") {
				genCfg.WordLengthMax = maxLen
			}
			if err := genCfg.Validate(); err != nil {
				return err
			}

			opts := []fakeword.Option{
				fakeword.WithGeneratorConfig(genCfg),
				fakeword.WithLogger(st.logger),
			}
			if flags.Changed("seed") {
				opts = append(opts, fakeword.WithSeed(seed))
			}
			if flags.Changed("novelty") {
				opts = append(opts, fakeword.WithNovelty(novelty, st.cfg.Generator.MaxAttempts))
			}

			g, err := models.Load(cmd.Context(), st.cfg, opts...)
			if err != nil {
				return err
			}
			words, err := g.GenerateN(count)
			if err != nil {
				return err
			}
			return writeWords(cmd.OutOrStdout(), format, words)
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of words")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed for reproducible output")
	cmd.Flags().Float64Var(&decay, "decay", 0, "word length decay (overrides config)")
	cmd.Flags().Float64Var(&bias, "bias", 0, "word length bias (overrides config)")
	cmd.Flags().IntVar(&maxLen, "max", 0, "maximum syllables per word (overrides config)")
	cmd.Flags().IntVar(&novelty, "novelty", 0, "minimum phoneme edit distance from any dictionary word")
	cmd.Flags().StringVar(&format, "format", "text", "output format: text, json or yaml")

	return cmd
}

func writeWords(w io.Writer, format string, words []syllable.Word) error {
	switch format {
	case "json":
		out := make([]wordOutput, len(words))
		for i, wd := range words {
			out[i] = toOutput(wd)
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			return fmt.Errorf("encoding output: %w", err)
		}
	case "yaml":
		out := make([]wordOutput, len(words))
		for i, wd := range words {
			out[i] = toOutput(wd)
		}
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(out); err != nil {
			return fmt.Errorf("encoding output: %w", err)
		}
		return enc.Close()
	default:
		for _, wd := range words {
			if _, err := fmt.Fprintln(w, wd.String()); err != nil {
				return err
			}
		}
	}
	return nil
}
