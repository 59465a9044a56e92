package cli

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/hueshift/hueshift/internal/store"
)

var (
	themesExportOutput string
	themesImportForce  bool
)

func init() {
	rootCmd.AddCommand(themesCmd)
	themesCmd.AddCommand(themesListCmd)
	themesCmd.AddCommand(themesShowCmd)
	themesCmd.AddCommand(themesImportCmd)
	themesCmd.AddCommand(themesExportCmd)
	themesCmd.AddCommand(themesDeleteCmd)
	themesCmd.AddCommand(themesDuplicateCmd)

	themesExportCmd.Flags().StringVarP(&themesExportOutput, "output", "o", "", "write the theme JSON to a file (default stdout)")
	themesImportCmd.Flags().BoolVarP(&themesImportForce, "force", "f", false, "overwrite an existing theme with the same name")
}

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "Manage the theme library",
}

var themesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all themes in the library",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		themes, err := loadThemeLibrary(ctx)
		if err != nil {
			return err
		}

		names := make([]string, 0, len(themes))
		for name := range themes {
			names = append(names, name)
		}
		sort.Strings(names)

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tBACKGROUND\tFOREGROUND")
		for _, name := range names {
			t := themes[name]
			fmt.Fprintf(w, "%s\t%s\t%s\n", name, t.Background, t.Foreground)
		}
		return w.Flush()
	},
}

var themesShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print a theme as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := lookupTheme(context.Background(), args[0])
		if err != nil {
			return err
		}
		return printJSON(t)
	},
}

var themesImportCmd = &cobra.Command{
	Use:   "import <theme.json>",
	Short: "Add a theme file to the library",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		t, err := readTerminalThemeFile(args[0])
		if err != nil {
			return err
		}

		database, err := openDatabase(ctx)
		if err != nil {
			return err
		}
		defer database.Close()
		repo := store.NewRepository(database)

		if !themesImportForce {
			if _, err := repo.Get(ctx, store.FormatTerminal, t.Name); err == nil {
				return fmt.Errorf("theme %q already exists (use --force to overwrite)", t.Name)
			}
		}
		if err := repo.SaveTerminalTheme(ctx, t); err != nil {
			return err
		}
		log.Info().Str("theme", t.Name).Msg("theme imported")
		fmt.Printf("imported %q\n", t.Name)
		return nil
	},
}

var themesExportCmd = &cobra.Command{
	Use:   "export <name>",
	Short: "Write a library theme to a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := lookupTheme(context.Background(), args[0])
		if err != nil {
			return err
		}
		if themesExportOutput == "" {
			return printJSON(t)
		}
		return fileStore().SaveTerminalThemeJSON(themesExportOutput, t)
	},
}

var themesDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Remove a theme from the library",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		database, err := openDatabase(ctx)
		if err != nil {
			return err
		}
		defer database.Close()

		if err := store.NewRepository(database).Delete(ctx, store.FormatTerminal, args[0]); err != nil {
			return err
		}
		fmt.Printf("deleted %q\n", args[0])
		return nil
	},
}

var themesDuplicateCmd = &cobra.Command{
	Use:   "duplicate <name> <new-name>",
	Short: "Copy a theme under a new name",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		database, err := openDatabase(ctx)
		if err != nil {
			return err
		}
		defer database.Close()
		repo := store.NewRepository(database)

		if err := repo.Duplicate(ctx, store.FormatTerminal, args[0], args[1]); err != nil {
			if !errors.Is(err, store.ErrThemeNotFound) {
				return err
			}
			// Builtin and file themes are not in the database; fall back
			// to the merged library for the source.
			t, lookupErr := lookupTheme(ctx, args[0])
			if lookupErr != nil {
				return err
			}
			t.Name = args[1]
			if saveErr := repo.SaveTerminalTheme(ctx, t); saveErr != nil {
				return saveErr
			}
		}
		fmt.Printf("duplicated %q as %q\n", args[0], args[1])
		return nil
	},
}
