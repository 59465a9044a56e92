package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/hueshift/hueshift/internal/convert"
	"github.com/hueshift/hueshift/internal/qss"
)

var (
	convertOutput    string
	convertThemeName string
)

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.AddCommand(convertToQSSCmd)
	convertCmd.AddCommand(convertFromQSSCmd)

	convertToQSSCmd.Flags().StringVarP(&convertOutput, "output", "o", "", "write the stylesheet to a file (default stdout)")
	convertFromQSSCmd.Flags().StringVarP(&convertOutput, "output", "o", "", "write the theme JSON to a file (default stdout)")
	convertFromQSSCmd.Flags().StringVarP(&convertThemeName, "name", "n", "Extracted Theme", "name for the resulting theme")
}

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert between terminal themes and Qt stylesheets",
}

var convertToQSSCmd = &cobra.Command{
	Use:   "terminal-to-qss <theme.json|theme-name>",
	Short: "Convert a terminal theme to a Qt stylesheet",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := resolveTerminalTheme(context.Background(), args[0])
		if err != nil {
			return err
		}

		sheet := qss.Generate(convert.TerminalToPalette(t))
		if convertOutput == "" {
			cmd.Print(sheet)
			return nil
		}
		return fileStore().SaveStylesheet(convertOutput, sheet)
	},
}

var convertFromQSSCmd = &cobra.Command{
	Use:   "qss-to-terminal <stylesheet.qss>",
	Short: "Derive a terminal theme from a Qt stylesheet",
	Long:  "Derive a terminal theme from a Qt stylesheet. The ANSI colors are\nsynthesized from the extracted palette, so the result is a starting\npoint rather than a faithful recovery.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := fileStore().LoadStylesheet(args[0])
		if err != nil {
			return err
		}

		t := convert.PaletteToTerminal(qss.Extract(text), convertThemeName)
		if convertOutput == "" {
			return printJSON(t)
		}
		return fileStore().SaveTerminalThemeJSON(convertOutput, t)
	},
}
