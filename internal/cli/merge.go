package cli

import (
	"github.com/spf13/cobra"

	"github.com/akwilson/join"
	"github.com/akwilson/join/internal/compare"
	"github.com/akwilson/join/internal/source"
)

// NewMergeCommand creates the merge command: interleave two sorted line
// files into one sorted stream on stdout.
func NewMergeCommand(opts *RootOptions) *cobra.Command {
	var compareName string

	cmd := &cobra.Command{
		Use:   "merge LEFT RIGHT",
		Short: "Merge two sorted line files into one sorted stream",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmp, err := compare.ForName(compareName)
			if err != nil {
				return err
			}

			logger := opts.Logger()
			logger.Debug("starting merge",
				"run", newRunToken(),
				"left", args[0],
				"right", args[1],
				"compare", compareName,
			)

			left := source.NewLines(args[0])
			right := source.NewLines(args[1])

			out := newRenderer(cmd.OutOrStdout(), opts.Format)
			for v := range join.MergeFunc(left.Seq(), right.Seq(), cmp) {
				if err := out.Value(v); err != nil {
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
