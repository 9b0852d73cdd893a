package cmd

import (
	"fmt"
	"io"

	"github.com/jsphweid/modalchords/constants"
	"github.com/jsphweid/modalchords/note"
	"github.com/jsphweid/modalchords/scale"
	"github.com/spf13/cobra"
)

var (
	modesRoot      string
	modesBaseScale string
)

func init() {
	modesCmd.Flags().StringVar(&modesRoot, "root", constants.DefaultRoot, "root note")
	modesCmd.Flags().StringVar(&modesBaseScale, "base_scale", constants.DefaultBaseScale, "base scale name or semitone steps")
	rootCmd.AddCommand(modesCmd)
}

var modesCmd = &cobra.Command{
	Use:   "modes",
	Short: "Prints every mode starting on one root",
	Long:  `Prints every mode starting on one root`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printModes(cmd.OutOrStdout(), modesRoot, modesBaseScale)
	},
}

func printModes(w io.Writer, root, base string) error {
	r, err := note.Parse(root)
	if err != nil {
		return err
	}
	pattern, err := scale.ParseBaseScale(base)
	if err != nil {
		return err
	}
	for _, m := range scale.Modes() {
		s, err := scale.New(r, pattern, m)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%v\t%v\n", m, s)
	}
	return nil
}
