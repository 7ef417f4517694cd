package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ieee0824/fakeword-go/syllable"
)

func newRespellCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "respell <syllable>...",
		Short:        "Render ARPAbet syllables as English respelling and IPA",
		Example:      "  fakeword respell \"HH AW1 S\" \"B IH0\"\n  fakeword respell \"HH AW1 S . B IH0\"",
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		// No config or models needed.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			var word syllable.Word
			for _, a := range args {
				for _, group := range strings.Split(a, ".") {
					if strings.TrimSpace(group) == "" {
						continue
					}
					s, err := syllable.Parse(group)
					if err != nil {
						return fmt.Errorf("syllable %d: %w", len(word)+1, err)
					}
					if !s.Valid() {
						return fmt.Errorf("syllable %d: %q does not split into onset, nucleus and coda", len(word)+1, group)
					}
					word = append(word, s)
				}
			}
			if len(word) == 0 {
				return fmt.Errorf("no syllables given")
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), word.String())
			return err
		},
	}
}
