package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/avelichko/schoolinv/internal/models"
	"github.com/avelichko/schoolinv/internal/xlsxio"
)

// rememberList keeps the records last shown, so select <n> can resolve row
// numbers to stable record ids even after the listing scrolls away.
func (a *App) rememberList(records []models.InventoryRecord) {
	a.lastRecords = records
}

func syncMark(r models.InventoryRecord) string {
	if r.IsSynced {
		return "✓"
	}
	return "…"
}

// List prints the registry, optionally filtered by a search term, and
// remembers the listing for subsequent select commands.
func (a *App) List(ctx context.Context, term string) error {
	records := a.registry.Search(term)
	a.rememberList(records)

	if len(records) == 0 {
		printlnFn("Реестр пуст.")
		return nil
	}

	for i, r := range records {
		sel := " "
		if a.recordSel.Has(r.ID) {
			sel = "*"
		}
		printlnFn(fmt.Sprintf("%s%3d. [%s] %s — %s, каб. %s, инв. № %s, %d %s, %s",
			sel, i+1, syncMark(r), r.Category, r.Name, r.RoomNumber,
			r.InventoryNumber, r.Quantity, r.Unit, r.Status))
	}
	printlnFn(fmt.Sprintf("Всего: %d, выбрано: %d", len(records), a.recordSel.Len()))
	return nil
}

func (a *App) resolveRecordRows(args []string) ([]string, error) {
	ids := make([]string, 0, len(args))
	for _, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil || n < 1 || n > len(a.lastRecords) {
			return nil, fmt.Errorf("no such row: %s", arg)
		}
		ids = append(ids, a.lastRecords[n-1].ID)
	}
	return ids, nil
}

// Select toggles the selection of the given row numbers from the last listing.
func (a *App) Select(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: select <n...>")
		return nil
	}
	ids, err := a.resolveRecordRows(args)
	if err != nil {
		printlnFn("Нет такой строки. Выполните list и повторите.")
		return nil
	}
	for _, id := range ids {
		a.recordSel.Toggle(id)
	}
	printlnFn("Выбрано записей:", a.recordSel.Len())
	return nil
}

// SelectAll selects every record in the last listing.
func (a *App) SelectAll(ctx context.Context) error {
	ids := make([]string, 0, len(a.lastRecords))
	for _, r := range a.lastRecords {
		ids = append(ids, r.ID)
	}
	a.recordSel.SelectAll(ids)
	printlnFn("Выбрано записей:", a.recordSel.Len())
	return nil
}

// ClearSelection drops the record selection.
func (a *App) ClearSelection(ctx context.Context) error {
	a.recordSel.Clear()
	printlnFn("Выбор снят.")
	return nil
}

// Delete removes the selected records after an explicit confirmation.
func (a *App) Delete(ctx context.Context) error {
	n := a.recordSel.Len()
	if n == 0 {
		printlnFn("Ничего не выбрано.")
		return nil
	}
	if !Confirm(a.reader, fmt.Sprintf("Удалить выбранные записи (%d)?", n), os.Stdout) {
		printlnFn("Отменено.")
		return nil
	}

	ids := a.recordSel.Values()
	removed, err := a.registry.DeleteMany(ctx, ids)
	if err != nil {
		printlnFn("Ошибка удаления:", err.Error())
		return err
	}
	a.recordSel.RemoveAll(ids)
	printlnFn("Удалено записей:", removed)
	return a.List(ctx, "")
}

// Export writes the selected records (or the whole registry when nothing is
// selected) to an .xlsx file in the configured export directory.
func (a *App) Export(ctx context.Context) error {
	records := a.registry.All()
	if a.recordSel.Len() > 0 {
		filtered := make([]models.InventoryRecord, 0, a.recordSel.Len())
		for _, r := range records {
			if a.recordSel.Has(r.ID) {
				filtered = append(filtered, r)
			}
		}
		records = filtered
	}
	if len(records) == 0 {
		printlnFn("Экспортировать нечего.")
		return nil
	}

	f, err := a.registry.Export(records)
	if err != nil {
		printlnFn("Ошибка экспорта:", err.Error())
		return err
	}
	defer f.Close()

	path := filepath.Join(a.config.ExportDir, xlsxio.ExportFileName(time.Now()))
	if err := f.SaveAs(path); err != nil {
		printlnFn("Ошибка записи файла:", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Экспортировано записей: %d → %s", len(records), path))
	return nil
}
