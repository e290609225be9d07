// Package xlsxio is the spreadsheet codec: it turns uploaded .xlsx bytes into
// header-keyed row maps for the catalog import, and renders the registry into
// the export workbook.
package xlsxio

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/avelichko/schoolinv/internal/common"
	"github.com/avelichko/schoolinv/internal/models"
	"github.com/xuri/excelize/v2"
)

// ExportSheetName is the single sheet the registry is exported to.
const ExportSheetName = "Inventory"

// PhotoPlaceholder replaces embedded data-URL photos in the export, which
// would otherwise blow up the cell.
const PhotoPlaceholder = "Локальное фото (Base64)"

// ParseSheet reads the first sheet of an .xlsx file into row maps keyed by
// the header row. Cells beyond the header width are ignored; missing cells
// are absent from the map.
//
// An unreadable file or a sheet without at least one data row returns
// common.ErrorImportEmpty (wrapped), and nothing is imported.
func ParseSheet(data []byte) ([]map[string]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorImportEmpty, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, common.ErrorImportEmpty
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(rows) < 2 {
		return nil, common.ErrorImportEmpty
	}

	header := rows[0]
	out := make([]map[string]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		m := make(map[string]string, len(header))
		for i, name := range header {
			if name == "" || i >= len(row) {
				continue
			}
			m[name] = row[i]
		}
		out = append(out, m)
	}
	return out, nil
}

// exportColumns defines the export schema: literal headers in the order the
// registry has always been exported in, plus per-column widths.
var exportColumns = []struct {
	header string
	width  float64
}{
	{"№", 5},
	{"Категория", 20},
	{"Наименование", 30},
	{"Количество", 10},
	{"Единица измерения", 10},
	{"Инвентарный номер", 20},
	{"Модель", 15},
	{"Серийный номер", 20},
	{"Ответственный", 25},
	{"№ кабинета", 12},
	{"Ссылка на фото", 20},
	{"Состояние", 15},
	{"Дата инвентаризации", 15},
	{"Примечание", 40},
}

// BuildExport renders records into a new workbook with a single "Inventory"
// sheet, one row per record in input order. The input is not mutated.
func BuildExport(records []models.InventoryRecord) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), ExportSheetName); err != nil {
		return nil, err
	}

	for i, col := range exportColumns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(ExportSheetName, cell, col.header); err != nil {
			return nil, err
		}
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(ExportSheetName, name, name, col.width); err != nil {
			return nil, err
		}
	}

	for n, r := range records {
		photo := r.PhotoURL
		if strings.HasPrefix(photo, "data:") {
			photo = PhotoPlaceholder
		}
		values := []any{
			n + 1, r.Category, r.Name, r.Quantity, r.Unit,
			r.InventoryNumber, r.Model, r.SerialNumber, r.Responsible, r.RoomNumber,
			photo, string(r.Status), r.Date, r.Note,
		}
		for i, v := range values {
			cell, err := excelize.CoordinatesToCellName(i+1, n+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(ExportSheetName, cell, v); err != nil {
				return nil, err
			}
		}
	}

	return f, nil
}

// ExportFileName returns the conventional export file name for the given day.
func ExportFileName(now time.Time) string {
	return fmt.Sprintf("inventory_export_%s.xlsx", now.Format("2006-01-02"))
}
