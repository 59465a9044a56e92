package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hueshift/hueshift/internal/color"
	"github.com/hueshift/hueshift/internal/theme"
)

var validateAsPalette bool

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().BoolVar(&validateAsPalette, "palette", false, "validate as a palette instead of a terminal theme")
}

var validateCmd = &cobra.Command{
	Use:   "validate <theme.json>",
	Short: "Check that every color in a theme file is a canonical hex value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}

		var raw map[string]string
		if err := json.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("failed to parse %s: %w", args[0], err)
		}

		fields := theme.TerminalFields
		if validateAsPalette {
			fields = theme.PaletteFields
		}

		bad := 0
		for _, field := range fields {
			value, ok := raw[field]
			if !ok {
				fmt.Printf("%-14s missing\n", field)
				bad++
				continue
			}
			if !color.IsValidHex(value) {
				fmt.Printf("%-14s %q is not canonical (use %s)\n", field, value, color.Normalize(value))
				bad++
			}
		}
		if bad > 0 {
			return fmt.Errorf("%d of %d fields are not canonical", bad, len(fields))
		}
		fmt.Printf("all %d fields are canonical\n", len(fields))
		return nil
	},
}
