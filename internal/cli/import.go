package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Upload imports a catalog spreadsheet. Rows without both a category and a
// name are skipped; the skipped rows are listed after the aggregate count.
func (a *App) Upload(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		printlnFn("Не удалось прочитать файл:", err.Error())
		return nil
	}

	res, err := a.catalog.ImportFile(ctx, data, filepath.Base(path))
	if err != nil {
		printlnFn("Импорт не выполнен:", err.Error())
		return nil
	}

	printlnFn("Импортировано позиций:", res.Imported)
	for _, msg := range res.RowErrors {
		printlnFn(" ", msg)
	}
	return nil
}

// Files lists the imported files with item counts, remembering the listing
// for selfile row numbers.
func (a *App) Files(ctx context.Context) error {
	groups := a.catalog.GroupBySourceFile()
	a.lastGroups = groups

	if len(groups) == 0 {
		printlnFn("Номенклатура не импортирована.")
		return nil
	}

	for i, g := range groups {
		sel := " "
		if a.fileSel.Has(g.FileName) {
			sel = "*"
		}
		printlnFn(fmt.Sprintf("%s%3d. %s — %d позиций, импорт %s", sel, i+1, g.FileName, g.Count, g.LatestImportDate))
	}
	printlnFn(fmt.Sprintf("Файлов: %d, выбрано: %d", len(groups), a.fileSel.Len()))
	return nil
}

// SelectFile toggles file groups by their row number in the last listing.
func (a *App) SelectFile(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: selfile <n...>")
		return nil
	}
	for _, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil || n < 1 || n > len(a.lastGroups) {
			printlnFn("Нет такой строки. Выполните files и повторите.")
			return nil
		}
		a.fileSel.Toggle(a.lastGroups[n-1].FileName)
	}
	printlnFn("Выбрано файлов:", a.fileSel.Len())
	return nil
}

// Items lists the catalog positions themselves, remembering the listing for
// selitem row numbers.
func (a *App) Items(ctx context.Context) error {
	items := a.catalog.All()
	a.lastCatalog = items

	if len(items) == 0 {
		printlnFn("Номенклатура пуста.")
		return nil
	}

	for i, it := range items {
		sel := " "
		if a.catalogSel.Has(it.ID) {
			sel = "*"
		}
		src := it.SourceFile
		if src == "" {
			src = "—"
		}
		printlnFn(fmt.Sprintf("%s%3d. %s — %s (%s)", sel, i+1, it.Category, it.Name, src))
	}
	printlnFn(fmt.Sprintf("Позиций: %d, выбрано: %d", len(items), a.catalogSel.Len()))
	return nil
}

// SelectItem toggles catalog positions by their row number in the last
// listing. The selection holds ids, so it survives re-listing.
func (a *App) SelectItem(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: selitem <n...>")
		return nil
	}
	for _, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil || n < 1 || n > len(a.lastCatalog) {
			printlnFn("Нет такой строки. Выполните items и повторите.")
			return nil
		}
		a.catalogSel.Toggle(a.lastCatalog[n-1].ID)
	}
	printlnFn("Выбрано позиций:", a.catalogSel.Len())
	return nil
}

// DeleteItems removes the selected catalog positions.
func (a *App) DeleteItems(ctx context.Context) error {
	n := a.catalogSel.Len()
	if n == 0 {
		printlnFn("Ничего не выбрано.")
		return nil
	}
	if !Confirm(a.reader, fmt.Sprintf("Удалить выбранные позиции (%d)?", n), os.Stdout) {
		printlnFn("Отменено.")
		return nil
	}

	ids := a.catalogSel.Values()
	removed, err := a.catalog.DeleteByIDs(ctx, ids)
	if err != nil {
		printlnFn("Ошибка удаления:", err.Error())
		return err
	}
	a.catalogSel.RemoveAll(ids)
	printlnFn("Удалено позиций:", removed)
	return a.Items(ctx)
}

// DeleteFiles removes every catalog item that came from the selected files.
func (a *App) DeleteFiles(ctx context.Context) error {
	n := a.fileSel.Len()
	if n == 0 {
		printlnFn("Ничего не выбрано.")
		return nil
	}
	if !Confirm(a.reader, fmt.Sprintf("Удалить позиции выбранных файлов (%d)?", n), os.Stdout) {
		printlnFn("Отменено.")
		return nil
	}

	names := a.fileSel.Values()
	removed, err := a.catalog.DeleteBySourceFiles(ctx, names)
	if err != nil {
		printlnFn("Ошибка удаления:", err.Error())
		return err
	}
	a.fileSel.RemoveAll(names)
	printlnFn("Удалено позиций:", removed)
	return a.Files(ctx)
}

// ClearCatalog wipes the whole catalog after confirmation.
func (a *App) ClearCatalog(ctx context.Context) error {
	if len(a.catalog.All()) == 0 {
		printlnFn("Номенклатура пуста.")
		return nil
	}
	if !Confirm(a.reader, "Очистить всю номенклатуру?", os.Stdout) {
		printlnFn("Отменено.")
		return nil
	}
	if err := a.catalog.Clear(ctx); err != nil {
		printlnFn("Ошибка очистки:", err.Error())
		return err
	}
	a.catalogSel.Clear()
	a.fileSel.Clear()
	printlnFn("Номенклатура очищена.")
	return nil
}
