package xlsxio

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/avelichko/schoolinv/internal/common"
	"github.com/avelichko/schoolinv/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// buildSheet assembles an in-memory .xlsx with the given rows on the first
// sheet. rows[0] is the header.
func buildSheet(t *testing.T, rows [][]any) []byte {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for rn, row := range rows {
		for cn, v := range row {
			cell, err := excelize.CoordinatesToCellName(cn+1, rn+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, v))
		}
	}
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return buf.Bytes()
}

func TestParseSheet(t *testing.T) {
	data := buildSheet(t, [][]any{
		{"Категория", "Наименование", "extra"},
		{"Электроника", "Проектор BenQ", "ignored"},
		{"Мебель", "Парта"},
	})

	rows, err := ParseSheet(data)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Электроника", rows[0]["Категория"])
	assert.Equal(t, "Проектор BenQ", rows[0]["Наименование"])
	assert.Equal(t, "Мебель", rows[1]["Категория"])
	_, hasExtra := rows[1]["extra"]
	assert.False(t, hasExtra, "short row has no cell for the extra column")
}

func TestParseSheet_NotASpreadsheet(t *testing.T) {
	_, err := ParseSheet([]byte("definitely not a zip"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrorImportEmpty))
}

func TestParseSheet_HeaderOnly(t *testing.T) {
	data := buildSheet(t, [][]any{{"category", "name"}})
	_, err := ParseSheet(data)
	require.ErrorIs(t, err, common.ErrorImportEmpty)
}

func TestBuildExport(t *testing.T) {
	records := []models.InventoryRecord{
		{
			ID: "r1", Category: "Электроника", Name: "Проектор", Quantity: 2, Unit: "шт",
			InventoryNumber: "INV-001", RoomNumber: "204", Responsible: "Иванов И.И.",
			Status: models.StatusGood, Date: "2026-08-30",
			PhotoURL: "data:image/jpeg;base64,AAAA",
		},
		{
			ID: "r2", Category: "Мебель", Name: "Парта", Quantity: 15, Unit: "шт",
			Status: models.StatusUsed, Date: "2026-08-30",
			PhotoURL: "https://example.org/photo.jpg",
		},
	}

	f, err := BuildExport(records)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	rows, err := f.GetRows(ExportSheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3, "one header row plus one row per record")

	assert.Equal(t, "№", rows[0][0])
	assert.Equal(t, "Примечание", rows[0][13])

	// порядок строк совпадает с порядком записей
	assert.Equal(t, "1", rows[1][0])
	assert.Equal(t, "Проектор", rows[1][2])
	assert.Equal(t, PhotoPlaceholder, rows[1][10])
	assert.Equal(t, "2", rows[2][0])
	assert.Equal(t, "https://example.org/photo.jpg", rows[2][10])
	assert.Equal(t, string(models.StatusUsed), rows[2][11])
}

func TestBuildExport_DoesNotMutateInput(t *testing.T) {
	records := []models.InventoryRecord{{ID: "r1", Name: "Глобус", PhotoURL: "data:image/png;base64,BB", Quantity: 1}}
	f, err := BuildExport(records)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	assert.Equal(t, "data:image/png;base64,BB", records[0].PhotoURL)
}

func TestExportFileName(t *testing.T) {
	ts := time.Date(2026, 8, 31, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "inventory_export_2026-08-31.xlsx", ExportFileName(ts))
}
