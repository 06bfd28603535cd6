package cli

import (
	"github.com/cxykevin/tinyjson/internal/query"
	"github.com/cxykevin/tinyjson/library/json"
	"github.com/spf13/cobra"
)

func (c *CLI) evalCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "eval FILE EXPR",
		Short: "Evaluate an expression over a JSON file",
		Long:  "Evaluate an expr-lang expression. The root value is bound to doc; members of a root object are also bound by name.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := query.Compile(args[1])
			if err != nil {
				return err
			}
			doc, err := c.decodeFile(args[0])
			if err != nil {
				return err
			}
			defer doc.Free()
			result, err := q.Run(&doc)
			if err != nil {
				return err
			}
			defer result.Free()
			out, err := json.NewEncoder(c.cfg.Codec.Options()).Encode(&result)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(append(out, '\n'))
			return err
		},
	}
}
