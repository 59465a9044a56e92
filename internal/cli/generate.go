package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hueshift/hueshift/internal/convert"
	"github.com/hueshift/hueshift/internal/qss"
	"github.com/hueshift/hueshift/internal/theme"
)

var (
	generatePaletteFile string
	generateOutput      string
	generateWidgets     string
)

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&generatePaletteFile, "palette", "p", "", "generate from a palette JSON file instead of a theme name")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "write the stylesheet to a file (default stdout)")
	generateCmd.Flags().StringVarP(&generateWidgets, "widgets", "w", "", "append overrides from the named widget theme")
}

var generateCmd = &cobra.Command{
	Use:   "generate [theme]",
	Short: "Generate a Qt stylesheet from a theme or palette",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		p, err := resolvePalette(ctx, args)
		if err != nil {
			return err
		}

		sheet := qss.Generate(p)
		if generateWidgets != "" {
			wt, err := lookupWidgetTheme(generateWidgets)
			if err != nil {
				return err
			}
			sheet = qss.GenerateWithOverrides(p, wt)
		}
		if generateOutput == "" {
			fmt.Print(sheet)
			return nil
		}
		if err := fileStore().SaveStylesheet(generateOutput, sheet); err != nil {
			return err
		}
		log.Info().Str("path", generateOutput).Msg("stylesheet written")
		return nil
	},
}

func resolvePalette(ctx context.Context, args []string) (theme.Palette, error) {
	if generatePaletteFile != "" {
		return readPaletteFile(generatePaletteFile)
	}

	name := cfg.DefaultTheme
	if len(args) > 0 {
		name = args[0]
	}
	t, err := lookupTheme(ctx, name)
	if err != nil {
		return theme.Palette{}, err
	}
	return convert.TerminalToPalette(t), nil
}

func readPaletteFile(path string) (theme.Palette, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return theme.Palette{}, fmt.Errorf("failed to read palette: %w", err)
	}

	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return theme.Palette{}, fmt.Errorf("failed to parse palette %s: %w", path, err)
	}
	return theme.PaletteFromMap(raw), nil
}

func readTerminalThemeFile(path string) (theme.TerminalTheme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return theme.TerminalTheme{}, fmt.Errorf("failed to read theme: %w", err)
	}

	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return theme.TerminalTheme{}, fmt.Errorf("failed to parse theme %s: %w", path, err)
	}
	t := theme.TerminalFromMap(raw)
	if t.Name == "" {
		t.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return t, nil
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
