package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/LukeMurphey/splunk-insteon-alert/pkg/insteon"
	"github.com/spf13/cobra"
)

var commandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "List the named commands",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tCMD1\tCMD2\tTIMES\tRESPONSE\tEXTENDED")
		for _, d := range insteon.Commands() {
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%t\t%t\n", d.Name, d.Cmd1(), d.Cmd2(), d.Times, d.ExpectsResponse, d.Extended)
		}
		return w.Flush()
	},
}
