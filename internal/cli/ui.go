package cli

import (
	"context"
	"errors"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/hueshift/hueshift/internal/tui"
)

func init() {
	rootCmd.AddCommand(uiCmd)
}

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Browse the theme library interactively",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return errors.New("the theme browser requires an interactive terminal")
		}

		themes, err := loadThemeLibrary(context.Background())
		if err != nil {
			return err
		}
		return tui.Run(themes)
	},
}
