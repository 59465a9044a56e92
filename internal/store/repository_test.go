package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hueshift/hueshift/internal/theme"
)

func setupTestRepository(t *testing.T) *Repository {
	t.Helper()

	db, err := OpenInMemory()
	require.NoError(t, err, "open in-memory database")
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.Migrate(context.Background()), "migrate schema")

	return NewRepository(db)
}

func TestRepositoryTerminalThemeRoundTrip(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()

	src := theme.DefaultDarkTheme()
	require.NoError(t, repo.SaveTerminalTheme(ctx, src))

	got, err := repo.TerminalTheme(ctx, "Default Dark")
	require.NoError(t, err)
	assert.Equal(t, src, got)
}

func TestRepositoryGetMissing(t *testing.T) {
	repo := setupTestRepository(t)

	_, err := repo.TerminalTheme(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrThemeNotFound)
}

func TestRepositoryPutOverwrites(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()

	first := theme.DefaultDarkTheme()
	require.NoError(t, repo.SaveTerminalTheme(ctx, first))

	second := first
	second.Background = "#101010"
	require.NoError(t, repo.SaveTerminalTheme(ctx, second))

	got, err := repo.TerminalTheme(ctx, first.Name)
	require.NoError(t, err)
	assert.Equal(t, second.Background, got.Background)

	themes, err := repo.TerminalThemes(ctx)
	require.NoError(t, err)
	assert.Len(t, themes, 1)
}

func TestRepositoryListOrderedByName(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()

	for _, name := range []string{"Zenburn", "Alpha", "Monokai"} {
		src := theme.DefaultDarkTheme()
		src.Name = name
		require.NoError(t, repo.SaveTerminalTheme(ctx, src))
	}

	recs, err := repo.List(ctx, FormatTerminal)
	require.NoError(t, err)
	require.Len(t, recs, 3)
	assert.Equal(t, "Alpha", recs[0].Name)
	assert.Equal(t, "Monokai", recs[1].Name)
	assert.Equal(t, "Zenburn", recs[2].Name)
}

func TestRepositoryDelete(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveTerminalTheme(ctx, theme.DefaultDarkTheme()))
	require.NoError(t, repo.Delete(ctx, FormatTerminal, "Default Dark"))

	assert.ErrorIs(t, repo.Delete(ctx, FormatTerminal, "Default Dark"), ErrThemeNotFound)
}

func TestRepositoryDuplicate(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveTerminalTheme(ctx, theme.DefaultDarkTheme()))
	require.NoError(t, repo.Duplicate(ctx, FormatTerminal, "Default Dark", "My Dark"))

	got, err := repo.TerminalTheme(ctx, "My Dark")
	require.NoError(t, err)
	assert.Equal(t, "My Dark", got.Name, "duplicated payload carries the new name")
	assert.Equal(t, theme.DefaultDarkTheme().Background, got.Background)

	// Duplicating onto an existing name is refused
	assert.ErrorIs(t, repo.Duplicate(ctx, FormatTerminal, "Default Dark", "My Dark"), ErrThemeExists)
	// Duplicating a missing theme reports not found
	assert.ErrorIs(t, repo.Duplicate(ctx, FormatTerminal, "missing", "other"), ErrThemeNotFound)
}

func TestRepositoryWidgetThemeRoundTrip(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()

	src := theme.NewWidgetTheme("custom")
	src.Set("QWidget", "background-color: #282828;")
	src.Set("QPushButton", "background-color: #458588; color: #EBDBB2;")
	require.NoError(t, repo.SaveWidgetTheme(ctx, src))

	got, err := repo.WidgetTheme(ctx, "custom")
	require.NoError(t, err)
	assert.Equal(t, src.ToMap(), got.ToMap())
	assert.Equal(t, "custom", got.Name)
}

func TestRepositoryFormatsAreIndependent(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()

	term := theme.DefaultDarkTheme()
	term.Name = "shared-name"
	require.NoError(t, repo.SaveTerminalTheme(ctx, term))

	w := theme.NewWidgetTheme("shared-name")
	w.Set("QWidget", "color: #FFFFFF;")
	require.NoError(t, repo.SaveWidgetTheme(ctx, w))

	// Same name in two formats coexists
	_, err := repo.TerminalTheme(ctx, "shared-name")
	require.NoError(t, err)
	_, err = repo.WidgetTheme(ctx, "shared-name")
	require.NoError(t, err)

	// Deleting one format leaves the other
	require.NoError(t, repo.Delete(ctx, FormatTerminal, "shared-name"))
	_, err = repo.WidgetTheme(ctx, "shared-name")
	assert.NoError(t, err)
}
