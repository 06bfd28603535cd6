package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/cxykevin/tinyjson/library/json"
	"github.com/spf13/cobra"
)

func (c *CLI) storeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "store",
		Short: "Manage the document store",
	}
	cmd.AddCommand(c.storePutCommand())
	cmd.AddCommand(c.storeGetCommand())
	cmd.AddCommand(c.storeListCommand())
	cmd.AddCommand(c.storeRemoveCommand())
	return cmd
}

func (c *CLI) storePutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "put NAME FILE",
		Short: "Validate a file and store it under NAME",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.openStore()
			if err != nil {
				return err
			}
			d, err := c.readInput(args[1])
			if err != nil {
				return err
			}
			defer d.Close()
			doc, err := s.Put(cmd.Context(), args[0], d.Bytes)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "stored %s (%s, %d bytes)\n", doc.Name, doc.Type, doc.Size)
			return nil
		},
	}
}

func (c *CLI) storeGetCommand() *cobra.Command {
	var tree bool

	cmd := &cobra.Command{
		Use:   "get NAME",
		Short: "Print a stored document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.openStore()
			if err != nil {
				return err
			}
			if !tree {
				doc, err := s.GetRaw(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(append(doc.Body, '\n'))
				return err
			}
			v, err := s.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			defer v.Free()
			return json.FprintStyle(cmd.OutOrStdout(), &v, c.cfg.Output.Indent, c.style())
		},
	}

	cmd.Flags().BoolVar(&tree, "tree", false, "dump as an indented tree")
	return cmd
}

func (c *CLI) storeListCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List stored documents",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.openStore()
			if err != nil {
				return err
			}
			docs, err := s.List(cmd.Context())
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(docs))
			for _, doc := range docs {
				rows = append(rows, []string{
					doc.Name,
					doc.Type,
					strconv.FormatInt(doc.Size, 10),
					doc.UpdatedAt.Format("2006-01-02 15:04:05"),
				})
			}
			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("Name", "Type", "Size", "Updated").
				Rows(rows...)
			if c.color {
				t = t.BorderStyle(lipgloss.NewStyle().Foreground(colorGray))
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.String())
			return nil
		},
	}
}

func (c *CLI) storeRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "rm NAME...",
		Aliases: []string{"remove"},
		Short:   "Remove stored documents",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.openStore()
			if err != nil {
				return err
			}
			for _, name := range args {
				if err := s.Delete(cmd.Context(), name); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", name)
			}
			return nil
		},
	}
}
