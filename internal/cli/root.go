// Package cli implements the hueshift command line interface.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/hueshift/hueshift/internal/config"
	"github.com/hueshift/hueshift/internal/store"
	"github.com/hueshift/hueshift/internal/theme"
)

var (
	cfgFile  string
	noColor  bool
	logLevel string

	cfg *config.Config
	log zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:           "hueshift",
	Short:         "Convert color themes between terminal schemes and Qt stylesheets",
	Long:          "Hueshift converts terminal color schemes to Qt stylesheets and back,\nand keeps a local library of named themes.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.config/hueshift/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

func setup() error {
	loaded, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	cfg = loaded
	if noColor {
		cfg.NoColor = true
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	log = newLogger(cfg)
	return nil
}

func newLogger(cfg *config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil {
		level = zerolog.WarnLevel
	}

	var out io.Writer = os.Stderr
	if !cfg.NoColor && term.IsTerminal(int(os.Stderr.Fd())) {
		out = zerolog.ConsoleWriter{Out: os.Stderr}
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

func openDatabase(ctx context.Context) (*store.DB, error) {
	database, err := store.Open(cfg.DatabasePath)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(ctx); err != nil {
		database.Close()
		return nil, err
	}
	return database, nil
}

func fileStore() *store.FileStore {
	return store.NewFileStore(log, cfg.Backup)
}

// loadThemeLibrary merges the builtin themes with the theme file and the
// database. Later sources win on name collisions.
func loadThemeLibrary(ctx context.Context) (map[string]theme.TerminalTheme, error) {
	themes := theme.BuiltinTerminalThemes()

	fromFile, err := fileStore().LoadTerminalThemes(cfg.ThemesFile)
	if err != nil {
		return nil, err
	}
	for name, t := range fromFile {
		themes[name] = t
	}

	database, err := openDatabase(ctx)
	if err != nil {
		log.Debug().Err(err).Msg("theme database unavailable, using file themes only")
		return themes, nil
	}
	defer database.Close()

	fromDB, err := store.NewRepository(database).TerminalThemes(ctx)
	if err != nil {
		return nil, err
	}
	for name, t := range fromDB {
		themes[name] = t
	}
	return themes, nil
}

// resolveTerminalTheme treats the argument as a JSON file when one
// exists at that path, and as a library theme name otherwise.
func resolveTerminalTheme(ctx context.Context, arg string) (theme.TerminalTheme, error) {
	if _, err := os.Stat(arg); err == nil {
		return readTerminalThemeFile(arg)
	}
	return lookupTheme(ctx, arg)
}

func lookupTheme(ctx context.Context, name string) (theme.TerminalTheme, error) {
	themes, err := loadThemeLibrary(ctx)
	if err != nil {
		return theme.TerminalTheme{}, err
	}
	t, ok := themes[name]
	if !ok {
		return theme.TerminalTheme{}, fmt.Errorf("unknown theme %q", name)
	}
	return t, nil
}
