package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	fakeword "github.com/ieee0824/fakeword-go"
)

func newBuildCmd(st *state, models ModelLoader) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:          "build",
		Short:        "Build the corpus and models and refresh the snapshot cache",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := models.Load(cmd.Context(), st.cfg,
				fakeword.WithForceRebuild(force),
				fakeword.WithLogger(st.logger),
			)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "corpus: %d words\n", g.Corpus.Len())
			fmt.Fprintf(out, "sonority graph: %d nodes\n", g.Graph.Len())
			fmt.Fprintf(out, "connection table: %d boundaries (%s)\n", g.Table.Len(), g.Table.Policy())
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "ignore existing snapshots")
	return cmd
}
