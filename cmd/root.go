package cmd

import (
	"fmt"
	"io"

	"github.com/jsphweid/modalchords/constants"
	"github.com/spf13/cobra"
)

// releaseVersion is set via ldflags during build
var releaseVersion = "dev"

var (
	rootNote  string
	baseScale string
	modeArg   string
	sevenths  bool
)

func init() {
	rootCmd.Flags().StringVar(&rootNote, "root", constants.DefaultRoot, "root note, e.g. C, F# or Bb")
	rootCmd.Flags().StringVar(&baseScale, "base_scale", constants.DefaultBaseScale, `"major", "minor" or semitone steps such as 2,1,2,2,1,3,1`)
	rootCmd.Flags().StringVar(&modeArg, "mode", constants.DefaultMode, "mode name (ionian..locrian) or degree 1-7")
	rootCmd.Flags().BoolVar(&sevenths, "seventh", true, "stack seventh chords instead of triads")
}

var rootCmd = &cobra.Command{
	Use:     "modalchords",
	Short:   "Modal scales and their chords",
	Long:    `Prints the scale for a root, base scale and mode, then the roman-numeral analysis and the chord on each degree.`,
	Version: releaseVersion,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return show(cmd.OutOrStdout(), rootNote, baseScale, modeArg, sevenths)
	},
}

func show(w io.Writer, root, base, mode string, seventh bool) error {
	s, chords, err := analyze(root, base, mode, seventh)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, render(s, chords))
	return err
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
