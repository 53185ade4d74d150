package cli

import (
	"fmt"
	"iter"

	"github.com/spf13/cobra"

	"github.com/akwilson/join"
	"github.com/akwilson/join/internal/compare"
	"github.com/akwilson/join/internal/source"
)

// NewRunCommand creates the run command: execute a merge or join described
// by a CUE job file.
func NewRunCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run JOB",
		Short: "Run a merge or join described by a CUE job file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			job, err := LoadJob(args[0])
			if err != nil {
				return err
			}

			cmp, err := compare.ForName(job.Compare)
			if err != nil {
				return err
			}

			left, err := openInput(job.Left)
			if err != nil {
				return fmt.Errorf("left input: %w", err)
			}
			defer left.close()

			right, err := openInput(job.Right)
			if err != nil {
				return fmt.Errorf("right input: %w", err)
			}
			defer right.close()

			logger := opts.Logger()
			logger.Debug("starting job",
				"run", newRunToken(),
				"job", args[0],
				"view", job.View,
				"compare", job.Compare,
			)

			out := newRenderer(cmd.OutOrStdout(), opts.Format)
			switch job.View {
			case "join":
				for row := range join.JoinFunc(left.seq, right.seq, cmp) {
					if err := out.Row(row); err != nil {
						return err
					}
				}
			default:
				for v := range join.MergeFunc(left.seq, right.seq, cmp) {
					if err := out.Value(v); err != nil {
						return err
					}
				}
			}

			if err := left.err(); err != nil {
				return fmt.Errorf("left input: %w", err)
			}
			if err := right.err(); err != nil {
				return fmt.Errorf("right input: %w", err)
			}
			return nil
		},
	}
}

// openedInput bundles a source sequence with its deferred-error check and
// resource release.
type openedInput struct {
	seq   iter.Seq[string]
	err   func() error
	close func() error
}

func openInput(in Input) (*openedInput, error) {
	switch {
	case in.SQLite != nil:
		db, err := source.OpenSQLite(in.SQLite.Path)
		if err != nil {
			return nil, err
		}
		q := source.NewQuery(db, in.SQLite.Query)
		return &openedInput{seq: q.Seq(), err: q.Err, close: db.Close}, nil
	case in.File != "":
		l := source.NewLines(in.File)
		return &openedInput{seq: l.Seq(), err: l.Err, close: func() error { return nil }}, nil
	default:
		return nil, fmt.Errorf("input names neither a file nor a sqlite query")
	}
}
