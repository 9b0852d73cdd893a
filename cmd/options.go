package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(optionsCmd)
}

var optionsCmd = &cobra.Command{
	Use:   "options",
	Short: "Lists the accepted roots, base scales and modes",
	Long:  `Lists the accepted roots, base scales and modes`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		printOptions(cmd.OutOrStdout())
	},
}

func printOptions(w io.Writer) {
	o := createOptionsResponse()
	fmt.Fprintf(w, "roots:\t%s\n", strings.Join(o.Roots, "\t"))
	fmt.Fprintf(w, "base scales:\t%s\n", strings.Join(o.BaseScales, "\t"))
	fmt.Fprintf(w, "modes:\t%s\n", strings.Join(o.Modes, "\t"))
}
