package cli

import (
	"github.com/spf13/cobra"

	"github.com/akwilson/join"
	"github.com/akwilson/join/internal/compare"
	"github.com/akwilson/join/internal/source"
)

// NewJoinCommand creates the join command: full outer join of two sorted
// line files, one row per key alignment.
func NewJoinCommand(opts *RootOptions) *cobra.Command {
	var compareName string

	cmd := &cobra.Command{
		Use:   "join LEFT RIGHT",
		Short: "Outer-join two sorted line files by key",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmp, err := compare.ForName(compareName)
			if err != nil {
				return err
			}

			logger := opts.Logger()
			logger.Debug("starting join",
				"run", newRunToken(),
				"left", args[0],
				"right", args[1],
				"compare", compareName,
			)

			left := source.NewLines(args[0])
			right := source.NewLines(args[1])

			out := newRenderer(cmd.OutOrStdout(), opts.Format)
			for row := range join.JoinFunc(left.Seq(), right.Seq(), cmp) {
				if err := out.Row(row); err != nil {
					return err
				}
			}

			if err := left.Err(); err != nil {
				return err
			}
			return right.Err()
		},
	}

	cmd.Flags().StringVar(&compareName, "compare", "natural", "comparator (natural|length|collate:<lang>)")
	return cmd
}
