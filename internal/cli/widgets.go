package cli

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/hueshift/hueshift/internal/declaration"
	"github.com/hueshift/hueshift/internal/theme"
)

func init() {
	rootCmd.AddCommand(widgetsCmd)
	widgetsCmd.AddCommand(widgetsListCmd)
	widgetsCmd.AddCommand(widgetsShowCmd)
	widgetsCmd.AddCommand(widgetsSetCmd)
	widgetsCmd.AddCommand(widgetsRemoveCmd)
	widgetsCmd.AddCommand(widgetsColorsCmd)
}

var widgetsCmd = &cobra.Command{
	Use:   "widgets",
	Short: "Manage per-widget stylesheet overrides",
}

var widgetsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List widget override themes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		themes, err := fileStore().LoadWidgetThemes(cfg.WidgetThemesFile)
		if err != nil {
			return err
		}

		names := make([]string, 0, len(themes))
		for name := range themes {
			names = append(names, name)
		}
		sort.Strings(names)

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tSELECTORS")
		for _, name := range names {
			fmt.Fprintf(w, "%s\t%d\n", name, themes[name].Len())
		}
		return w.Flush()
	},
}

var widgetsShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print the selectors and blocks of a widget theme",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		wt, err := lookupWidgetTheme(args[0])
		if err != nil {
			return err
		}
		for _, selector := range wt.Selectors() {
			block, _ := wt.Get(selector)
			fmt.Printf("%s {\n    %s\n}\n", selector, declaration.Parse(block).Serialize())
		}
		return nil
	},
}

var widgetsSetCmd = &cobra.Command{
	Use:   "set <name> <selector> <block>",
	Short: "Set the style block for a selector",
	Long:  "Set the style block for a selector, e.g.\n\n  hueshift widgets set custom QPushButton \"background-color: #FF0000; border-radius: 4px\"\n\nThe theme is created if it does not exist yet.",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, selector, block := args[0], args[1], args[2]

		props := declaration.Parse(block)
		if props.Len() == 0 {
			return fmt.Errorf("block %q contains no declarations", block)
		}
		if !theme.IsKnownSelector(selector) {
			log.Warn().Str("selector", selector).Msg("selector is not in the known Qt selector catalog")
		}

		themes, err := fileStore().LoadWidgetThemes(cfg.WidgetThemesFile)
		if err != nil {
			return err
		}
		wt, ok := themes[name]
		if !ok {
			wt = theme.NewWidgetTheme(name)
			themes[name] = wt
		}
		wt.Set(selector, props.Serialize())

		return fileStore().SaveWidgetThemes(cfg.WidgetThemesFile, themes)
	},
}

var widgetsRemoveCmd = &cobra.Command{
	Use:   "remove <name> <selector>",
	Short: "Remove a selector from a widget theme",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		themes, err := fileStore().LoadWidgetThemes(cfg.WidgetThemesFile)
		if err != nil {
			return err
		}
		wt, ok := themes[args[0]]
		if !ok {
			return fmt.Errorf("unknown widget theme %q", args[0])
		}
		if !wt.Remove(args[1]) {
			return fmt.Errorf("theme %q has no selector %q", args[0], args[1])
		}
		return fileStore().SaveWidgetThemes(cfg.WidgetThemesFile, themes)
	},
}

var widgetsColorsCmd = &cobra.Command{
	Use:   "colors <name>",
	Short: "Report the first color found in each selector block",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		wt, err := lookupWidgetTheme(args[0])
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "SELECTOR\tCOLOR")
		for _, selector := range wt.Selectors() {
			block, _ := wt.Get(selector)
			if value, ok := declaration.ExtractColorToken(block); ok {
				fmt.Fprintf(w, "%s\t%s\n", selector, value)
			} else {
				fmt.Fprintf(w, "%s\t-\n", selector)
			}
		}
		return w.Flush()
	},
}

func lookupWidgetTheme(name string) (*theme.WidgetTheme, error) {
	themes, err := fileStore().LoadWidgetThemes(cfg.WidgetThemesFile)
	if err != nil {
		return nil, err
	}
	wt, ok := themes[name]
	if !ok {
		return nil, fmt.Errorf("unknown widget theme %q", name)
	}
	return wt, nil
}
