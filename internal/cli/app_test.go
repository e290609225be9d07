package cli

import (
	"bufio"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/avelichko/schoolinv/internal/config"
	"github.com/avelichko/schoolinv/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func silencePrintln(t *testing.T) {
	t.Helper()
	orig := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = orig })
}

func stubPassword(t *testing.T, pw string) {
	t.Helper()
	orig := getPassword
	getPassword = func(_ io.Writer, _ string) ([]byte, error) { return []byte(pw), nil }
	t.Cleanup(func() { getPassword = orig })
}

func readerFromLines(lines ...string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(strings.Join(lines, "\n") + "\n"))
}

func newTestApp(t *testing.T) *App {
	t.Helper()

	dir := t.TempDir()
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.DatabasePath = filepath.Join(dir, "test.db")
	cfg.ExportDir = dir
	cfg.SyncDelay = time.Hour

	app, err := NewApp(cfg)
	require.NoError(t, err)
	t.Cleanup(app.registry.Close)
	return app
}

func signUp(t *testing.T, app *App) {
	t.Helper()
	ctx := context.Background()

	stubPassword(t, "secret1")
	app.reader = readerFromLines("zavhoz@school.ru", "Иванов И.И.", "МБОУ СОШ №5", "Завхоз")
	require.NoError(t, app.Register(ctx))

	app.reader = readerFromLines("zavhoz@school.ru")
	require.NoError(t, app.Confirm(ctx))
	require.True(t, app.isLoggedIn())
}

func TestAppRegisterConfirmLogin(t *testing.T) {
	silencePrintln(t)
	app := newTestApp(t)
	ctx := context.Background()

	signUp(t, app)
	require.NoError(t, app.Logout(ctx))
	assert.False(t, app.isLoggedIn())

	app.reader = readerFromLines("zavhoz@school.ru")
	require.NoError(t, app.Login(ctx))
	assert.True(t, app.isLoggedIn())
}

func TestAppAddSelectDelete(t *testing.T) {
	silencePrintln(t)
	app := newTestApp(t)
	ctx := context.Background()
	signUp(t, app)

	photo := filepath.Join(t.TempDir(), "item.png")
	require.NoError(t, os.WriteFile(photo, []byte{0x89, 0x50, 0x4E, 0x47}, 0o600))

	// фото, категория, наименование, количество, единица, инв. номер,
	// модель, серийный, ответственный, кабинет, состояние, дата, примечание
	app.reader = readerFromLines(photo, "Техника", "Проектор", "2", "", "INV-1",
		"Epson EB-X06", "SN123", "Иванов И.И.", "207", "", "", "нет")
	require.NoError(t, app.Add(ctx))

	records := app.registry.All()
	require.Len(t, records, 1)
	assert.Equal(t, "Проектор", records[0].Name)
	assert.Equal(t, 2, records[0].Quantity)
	assert.Equal(t, models.DefaultUnit, records[0].Unit)
	assert.Equal(t, models.StatusGood, records[0].Status)
	assert.True(t, strings.HasPrefix(records[0].PhotoURL, "data:image/png;base64,"))

	require.NoError(t, app.List(ctx, ""))
	require.NoError(t, app.Select(ctx, []string{"1"}))
	assert.Equal(t, 1, app.recordSel.Len())

	// отказ от подтверждения ничего не удаляет
	app.reader = readerFromLines("n")
	require.NoError(t, app.Delete(ctx))
	assert.Len(t, app.registry.All(), 1)

	app.reader = readerFromLines("y")
	require.NoError(t, app.Delete(ctx))
	assert.Empty(t, app.registry.All())
	assert.Equal(t, 0, app.recordSel.Len())
}

func TestAppAddRejectsMissingPhoto(t *testing.T) {
	silencePrintln(t)
	app := newTestApp(t)
	ctx := context.Background()
	signUp(t, app)

	app.reader = readerFromLines(" ")
	require.NoError(t, app.Add(ctx))
	assert.Empty(t, app.registry.All())
}

func TestAppExport(t *testing.T) {
	silencePrintln(t)
	app := newTestApp(t)
	ctx := context.Background()
	signUp(t, app)

	photo := filepath.Join(t.TempDir(), "item.png")
	require.NoError(t, os.WriteFile(photo, []byte{0x89, 0x50, 0x4E, 0x47}, 0o600))
	app.reader = readerFromLines(photo, "Мебель", "Стол", "1", "", "",
		"", "", "Иванов И.И.", "101", "", "", "")
	require.NoError(t, app.Add(ctx))

	require.NoError(t, app.Export(ctx))

	matches, err := filepath.Glob(filepath.Join(app.config.ExportDir, "inventory_export_*.xlsx"))
	require.NoError(t, err)
	require.Len(t, matches, 1)
}

func TestAppNavigationClearsSelection(t *testing.T) {
	silencePrintln(t)
	app := newTestApp(t)
	ctx := context.Background()
	signUp(t, app)

	photo := filepath.Join(t.TempDir(), "item.png")
	require.NoError(t, os.WriteFile(photo, []byte{0x89, 0x50, 0x4E, 0x47}, 0o600))
	app.reader = readerFromLines(photo, "Мебель", "Стол", "1", "", "",
		"", "", "Иванов И.И.", "101", "", "", "")
	require.NoError(t, app.Add(ctx))

	app.navigate(models.ViewRegistry)
	require.NoError(t, app.List(ctx, ""))
	require.NoError(t, app.Select(ctx, []string{"1"}))
	require.Equal(t, 1, app.recordSel.Len())

	// уход из реестра снимает выбор
	app.navigate(models.ViewStats)
	assert.Equal(t, 0, app.recordSel.Len())
}

func TestAppDeleteAccountPurges(t *testing.T) {
	silencePrintln(t)
	app := newTestApp(t)
	ctx := context.Background()
	signUp(t, app)

	photo := filepath.Join(t.TempDir(), "item.png")
	require.NoError(t, os.WriteFile(photo, []byte{0x89, 0x50, 0x4E, 0x47}, 0o600))
	app.reader = readerFromLines(photo, "Мебель", "Стол", "1", "", "",
		"", "", "Иванов И.И.", "101", "", "", "")
	require.NoError(t, app.Add(ctx))

	app.reader = readerFromLines("y")
	require.NoError(t, app.DeleteAccount(ctx))

	assert.False(t, app.isLoggedIn())
	assert.Empty(t, app.registry.All())

	// вход после удаления невозможен
	app.reader = readerFromLines("zavhoz@school.ru")
	require.NoError(t, app.Login(ctx))
	assert.False(t, app.isLoggedIn())
}
