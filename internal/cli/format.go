package cli

import (
	"fmt"
	"os"

	"github.com/cxykevin/tinyjson/library/json"
	"github.com/spf13/cobra"
)

func (c *CLI) fmtCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "fmt FILE",
		Short: "Rewrite a JSON file in compact form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := c.decodeFile(args[0])
			if err != nil {
				return err
			}
			defer v.Free()
			out, err := json.NewEncoder(c.cfg.Codec.Options()).Encode(&v)
			if err != nil {
				return err
			}
			if output != "" {
				if err := os.WriteFile(output, out, 0644); err != nil {
					return fmt.Errorf("write %s: %w", output, err)
				}
				c.logger.Info("formatted %s into %s (%d bytes)", args[0], output, len(out))
				return nil
			}
			out = append(out, '\n')
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")
	return cmd
}

func (c *CLI) printCommand() *cobra.Command {
	var indent string

	cmd := &cobra.Command{
		Use:   "print FILE",
		Short: "Dump a JSON file as an indented tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := c.decodeFile(args[0])
			if err != nil {
				return err
			}
			defer v.Free()
			return json.FprintStyle(cmd.OutOrStdout(), &v, indent, c.style())
		},
	}

	cmd.Flags().StringVar(&indent, "indent", c.cfg.Output.Indent, "indent per level")
	return cmd
}
