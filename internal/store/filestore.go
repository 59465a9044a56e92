package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/hueshift/hueshift/internal/theme"
)

// FileStore reads and writes theme collections as JSON documents and
// stylesheets as plain text, the interchange formats other tools expect.
// When backups are enabled, every overwrite first copies the existing
// file aside with a timestamp suffix.
type FileStore struct {
	logger zerolog.Logger
	backup bool
}

// NewFileStore creates a FileStore.
func NewFileStore(logger zerolog.Logger, backup bool) *FileStore {
	return &FileStore{logger: logger, backup: backup}
}

// LoadTerminalThemes reads a name-to-theme JSON object. A missing file is
// an empty collection, not an error.
func (s *FileStore) LoadTerminalThemes(path string) (map[string]theme.TerminalTheme, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return map[string]theme.TerminalTheme{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read themes from %s: %w", path, err)
	}

	var raw map[string]map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse themes from %s: %w", path, err)
	}

	themes := make(map[string]theme.TerminalTheme, len(raw))
	for name, fields := range raw {
		if fields["name"] == "" {
			fields["name"] = name
		}
		themes[name] = theme.TerminalFromMap(fields)
	}
	s.logger.Debug().Int("count", len(themes)).Str("path", path).Msg("loaded terminal themes")
	return themes, nil
}

// SaveTerminalThemes writes a name-to-theme JSON object.
func (s *FileStore) SaveTerminalThemes(path string, themes map[string]theme.TerminalTheme) error {
	out := make(map[string]map[string]string, len(themes))
	for name, t := range themes {
		out[name] = t.ToMap()
	}
	return s.writeJSON(path, out)
}

// LoadWidgetThemes reads a name-to-widget-theme JSON object.
func (s *FileStore) LoadWidgetThemes(path string) (map[string]*theme.WidgetTheme, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return map[string]*theme.WidgetTheme{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read widget themes from %s: %w", path, err)
	}

	var raw map[string]map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse widget themes from %s: %w", path, err)
	}

	themes := make(map[string]*theme.WidgetTheme, len(raw))
	for name, styles := range raw {
		themes[name] = theme.WidgetThemeFromMap(name, styles)
	}
	return themes, nil
}

// SaveWidgetThemes writes a name-to-widget-theme JSON object. Each value
// is the selector-to-block map; the theme name is the key.
func (s *FileStore) SaveWidgetThemes(path string, themes map[string]*theme.WidgetTheme) error {
	out := make(map[string]map[string]string, len(themes))
	for name, w := range themes {
		out[name] = w.ToMap()
	}
	return s.writeJSON(path, out)
}

// LoadStylesheet reads stylesheet text.
func (s *FileStore) LoadStylesheet(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read stylesheet from %s: %w", path, err)
	}
	return string(data), nil
}

// SaveStylesheet writes stylesheet text.
func (s *FileStore) SaveStylesheet(path, text string) error {
	if err := s.backupIfExists(path); err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("failed to write stylesheet to %s: %w", path, err)
	}
	s.logger.Debug().Str("path", path).Msg("saved stylesheet")
	return nil
}

// SavePaletteJSON writes a palette as indented JSON.
func (s *FileStore) SavePaletteJSON(path string, p theme.Palette) error {
	return s.writeJSON(path, p)
}

// SaveTerminalThemeJSON writes a single terminal theme as indented JSON.
func (s *FileStore) SaveTerminalThemeJSON(path string, t theme.TerminalTheme) error {
	return s.writeJSON(path, t)
}

func (s *FileStore) writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", path, err)
	}
	if err := s.backupIfExists(path); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	s.logger.Debug().Str("path", path).Msg("saved themes")
	return nil
}

func (s *FileStore) backupIfExists(path string) error {
	if !s.backup {
		return nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read %s for backup: %w", path, err)
	}
	backupPath := fmt.Sprintf("%s.bak-%s", path, time.Now().UTC().Format("20060102-150405"))
	if err := os.WriteFile(backupPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write backup %s: %w", backupPath, err)
	}
	s.logger.Info().Str("backup", backupPath).Msg("created backup")
	return nil
}
