package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hueshift/hueshift/internal/convert"
	"github.com/hueshift/hueshift/internal/preview"
)

var previewAsPalette bool

func init() {
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().BoolVar(&previewAsPalette, "palette", false, "show the derived widget palette instead of terminal swatches")
}

var previewCmd = &cobra.Command{
	Use:   "preview [theme]",
	Short: "Render theme color swatches in the terminal",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := cfg.DefaultTheme
		if len(args) > 0 {
			name = args[0]
		}
		t, err := resolveTerminalTheme(context.Background(), name)
		if err != nil {
			return err
		}

		if previewAsPalette {
			fmt.Println(preview.Palette(convert.TerminalToPalette(t)))
			return nil
		}
		fmt.Println(preview.TerminalTheme(t))
		return nil
	},
}
