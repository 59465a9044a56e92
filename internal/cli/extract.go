package cli

import (
	"github.com/spf13/cobra"

	"github.com/hueshift/hueshift/internal/qss"
)

var extractOutput string

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringVarP(&extractOutput, "output", "o", "", "write the palette JSON to a file (default stdout)")
}

var extractCmd = &cobra.Command{
	Use:   "extract <stylesheet.qss>",
	Short: "Extract a color palette from a Qt stylesheet",
	Long:  "Extract a color palette from a Qt stylesheet. Extraction is heuristic:\nroles the stylesheet never mentions keep their default color.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := fileStore().LoadStylesheet(args[0])
		if err != nil {
			return err
		}

		p := qss.Extract(text)
		if extractOutput == "" {
			return printJSON(p)
		}
		return fileStore().SavePaletteJSON(extractOutput, p)
	},
}
