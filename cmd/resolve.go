// Package cmd implements the command-line interface for contar.
package cmd

import (
	"io"
	"os"

	"github.com/contar-cli/contar/filesystem"
	"github.com/contar-cli/contar/inline"
	"github.com/contar-cli/contar/open"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(resolveCmd)

	resolveCmd.Flags().BoolP("json", "j", false, "Format the command output as a JSON object")
	resolveCmd.Flags().StringP("format", "f", "", "Criteria for selecting a single stream format (best, worst or a zero-based index)")
	resolveCmd.Flags().BoolP("subs", "s", false, "Include subtitle file URLs in the plain output")
	resolveCmd.Flags().StringP("output", "o", "", "Specify a file path to write the command output")
	resolveCmd.Flags().Bool("open", false, "Open the requested page in the default browser instead of resolving it")
}

// resolveCmd resolves a cont.ar page URL in non-interactive, scriptable mode.
var resolveCmd = &cobra.Command{
	Use:   "resolve [url]",
	Short: "Resolve a cont.ar page URL into stream URLs or structured metadata",
	Long: `Resolve a cont.ar page URL non-interactively.

Episode pages yield the episode's ranked stream formats. Series pages
yield every episode of the series. Channel and genre pages yield the
page URLs of the series they list.

Format selectors:
  best - highest ranked format
  worst - lowest ranked format
  [number] - select format by rank index (starting from 0, worst first)`,
	Example: "contar resolve https://www.cont.ar/watch/d2815f05-f52f-499f-90d0-5671e9e71ce8 --format best",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("open")) {
			handleErr(open.Run(args[0]))
			return
		}

		var (
			writer io.Writer = os.Stdout
			err    error
		)

		if output := lo.Must(cmd.Flags().GetString("output")); output != "" {
			writer, err = filesystem.API().Create(output)
			handleErr(err)
		}

		formatPicker := mo.None[inline.FormatPicker]()
		if selector := lo.Must(cmd.Flags().GetString("format")); selector != "" {
			picker, err := inline.ParseFormatPicker(selector)
			handleErr(err)
			formatPicker = mo.Some(picker)
		}

		options := &inline.Options{
			Out:          writer,
			URL:          args[0],
			Json:         lo.Must(cmd.Flags().GetBool("json")),
			FormatPicker: formatPicker,
			Subtitles:    lo.Must(cmd.Flags().GetBool("subs")),
		}

		handleErr(inline.Run(cmd.Context(), options))
	},
}
