package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/bartolsthoorn/gosimplex/lpfile"
)

func newExamplesCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "examples [NAME]",
		Short: "List bundled example problems, or print one",
		Long: `Without arguments, lists the bundled example problems. With a NAME,
prints that problem as a YAML document that can be edited and passed
to "lpsolve solve".`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 1 {
				p, err := lpfile.LoadExample(args[0])
				if err != nil {
					return err
				}
				data, err := p.Encode()
				if err != nil {
					return err
				}
				_, err = out.Write(data)
				return err
			}

			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			for _, name := range lpfile.Examples() {
				p, err := lpfile.LoadExample(name)
				if err != nil {
					c.logger.Warn("skipping example", "name", name, "error", err)
					continue
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\n", name, p.Sense, p.Description)
			}
			return tw.Flush()
		},
	}
}
