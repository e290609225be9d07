package cli

import (
	"context"
	"encoding/base64"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/avelichko/schoolinv/internal/models"
	"github.com/avelichko/schoolinv/internal/services"
)

// loadPhoto turns the user's photo reference into the stored photoUrl value:
// an http(s) link is kept as-is, a local path is embedded as a base64 data
// URL the way the records have always stored local photos.
func loadPhoto(ref string) (url string, raw []byte, mimeType string, err error) {
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref, nil, "", nil
	}

	raw, err = os.ReadFile(ref)
	if err != nil {
		return "", nil, "", fmt.Errorf("failed to read photo: %w", err)
	}

	mimeType = mime.TypeByExtension(filepath.Ext(ref))
	if mimeType == "" {
		mimeType = "image/jpeg"
	}
	url = fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(raw))
	return url, raw, mimeType, nil
}

// Add runs the interactive new-record form. The photo comes first so its
// analysis, when available, can pre-fill category, model and serial number.
func (a *App) Add(ctx context.Context) error {
	photoRef, err := getSimpleText(a.reader, "Фото (путь к файлу или http-ссылка, обязательно)", os.Stdout)
	if err != nil {
		return err
	}
	if strings.TrimSpace(photoRef) == "" {
		printlnFn("Фотография обязательна.")
		return nil
	}

	photoURL, raw, mimeType, err := loadPhoto(photoRef)
	if err != nil {
		printlnFn("Не удалось прочитать файл:", err.Error())
		return nil
	}

	var sug services.Suggestion
	if len(raw) > 0 && a.vision.Enabled() {
		printlnFn("Анализ фотографии...")
		sug = a.vision.Analyze(ctx, raw, mimeType)
	}

	if cats := a.catalog.Categories(); len(cats) > 0 {
		printlnFn("Категории номенклатуры:", strings.Join(cats, ", "))
	}
	category, err := GetTextDefault(a.reader, "Категория", sug.Category, os.Stdout)
	if err != nil {
		return err
	}
	if names := a.catalog.NamesFor(category); len(names) > 0 {
		printlnFn("Наименования в категории:", strings.Join(names, ", "))
	}
	name, err := getSimpleText(a.reader, "Наименование", os.Stdout)
	if err != nil {
		return err
	}
	quantity, err := GetInt(a.reader, "Количество", 1, os.Stdout)
	if err != nil {
		printlnFn("Количество должно быть числом.")
		return nil
	}
	unit, err := GetTextDefault(a.reader, "Единица измерения", models.DefaultUnit, os.Stdout)
	if err != nil {
		return err
	}
	invNumber, err := getSimpleText(a.reader, "Инвентарный номер", os.Stdout)
	if err != nil {
		return err
	}
	model, err := GetTextDefault(a.reader, "Модель", sug.Model, os.Stdout)
	if err != nil {
		return err
	}
	serial, err := GetTextDefault(a.reader, "Серийный номер", sug.SerialNumber, os.Stdout)
	if err != nil {
		return err
	}
	responsible, err := getSimpleText(a.reader, "Ответственный", os.Stdout)
	if err != nil {
		return err
	}
	room, err := getSimpleText(a.reader, "№ кабинета", os.Stdout)
	if err != nil {
		return err
	}

	statuses := models.AllStatuses()
	labels := make([]string, 0, len(statuses))
	for _, s := range statuses {
		labels = append(labels, string(s))
	}
	printlnFn("Состояние:", strings.Join(labels, " / "))
	status, err := GetTextDefault(a.reader, "Состояние", string(models.StatusGood), os.Stdout)
	if err != nil {
		return err
	}
	date, err := GetTextDefault(a.reader, "Дата инвентаризации (ГГГГ-ММ-ДД)", "", os.Stdout)
	if err != nil {
		return err
	}
	note, err := getSimpleText(a.reader, "Примечание", os.Stdout)
	if err != nil {
		return err
	}

	r, err := a.registry.Add(ctx, services.RecordDraft{
		Category:        category,
		Name:            name,
		Quantity:        quantity,
		Unit:            unit,
		InventoryNumber: invNumber,
		Model:           model,
		SerialNumber:    serial,
		Responsible:     responsible,
		RoomNumber:      room,
		Status:          models.ItemStatus(status),
		Date:            date,
		Note:            note,
		PhotoURL:        photoURL,
	})
	if err != nil {
		printlnFn("Запись не сохранена:", err.Error())
		return nil
	}

	printlnFn("Запись добавлена:", r.Name, "(синхронизация...)")
	return nil
}
