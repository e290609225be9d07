package services

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/avelichko/schoolinv/internal/logging"
	"github.com/avelichko/schoolinv/internal/models"
	"github.com/avelichko/schoolinv/internal/store"
	"github.com/avelichko/schoolinv/internal/xlsxio"
	"github.com/google/uuid"
)

// HeaderAliases lists the spreadsheet column headers accepted for the
// category and name columns. Matching is exact (case-sensitive), mirroring
// the files this tool historically receives.
type HeaderAliases struct {
	Category []string `json:"category"`
	Name     []string `json:"name"`
}

// DefaultHeaderAliases accepts the English and Russian headers seen in
// practice.
func DefaultHeaderAliases() HeaderAliases {
	return HeaderAliases{
		Category: []string{"category", "Category", "Категория"},
		Name:     []string{"name", "Name", "Наименование"},
	}
}

// ImportResult reports the outcome of one file import. Skipped rows are
// described in RowErrors; Imported is the authoritative count.
type ImportResult struct {
	Imported  int
	RowErrors []string
}

// CatalogService manages the reference catalog built from imported
// spreadsheets.
type CatalogService interface {
	Hydrate(ctx context.Context) error
	All() []models.CatalogItem
	ImportFile(ctx context.Context, data []byte, fileName string) (ImportResult, error)
	GroupBySourceFile() []models.FileGroup
	DeleteByIDs(ctx context.Context, ids []string) (int, error)
	DeleteBySourceFiles(ctx context.Context, names []string) (int, error)
	Clear(ctx context.Context) error
	Categories() []string
	NamesFor(category string) []string
}

type catalogService struct {
	db      *sql.DB
	log     logging.Logger
	aliases HeaderAliases

	mu    sync.Mutex
	items []models.CatalogItem
}

func NewCatalogService(db *sql.DB, log logging.Logger, aliases HeaderAliases) CatalogService {
	if len(aliases.Category) == 0 && len(aliases.Name) == 0 {
		aliases = DefaultHeaderAliases()
	}
	return &catalogService{db: db, log: log, aliases: aliases}
}

func (s *catalogService) getStore() store.Store {
	return store.NewSQLiteStore(s.db)
}

func (s *catalogService) Hydrate(ctx context.Context) error {
	items, err := store.LoadSnapshot[[]models.CatalogItem](ctx, s.getStore(), store.KeyCatalog)
	if err != nil {
		return fmt.Errorf("failed to hydrate catalog: %w", err)
	}
	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
	return nil
}

func (s *catalogService) All() []models.CatalogItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.CatalogItem, len(s.items))
	copy(out, s.items)
	return out
}

func pickAlias(row map[string]string, aliases []string) string {
	for _, a := range aliases {
		if v, ok := row[a]; ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

// ImportFile parses the first sheet of an xlsx file and appends every row
// that carries both a category and a name. Rows missing either are skipped
// and reported in the result; a file that cannot be parsed or has no data
// rows admits nothing.
func (s *catalogService) ImportFile(ctx context.Context, data []byte, fileName string) (ImportResult, error) {
	var res ImportResult

	rows, err := xlsxio.ParseSheet(data)
	if err != nil {
		return res, fmt.Errorf("failed to read %s: %w", fileName, err)
	}

	now := time.Now().Format(time.RFC3339)
	batch := make([]models.CatalogItem, 0, len(rows))
	for i, row := range rows {
		category := pickAlias(row, s.aliases.Category)
		name := pickAlias(row, s.aliases.Name)
		if category == "" || name == "" {
			// нумерация строк как в файле: заголовок + 1
			res.RowErrors = append(res.RowErrors,
				fmt.Sprintf("Строка %d: отсутствует категория или наименование", i+2))
			continue
		}
		batch = append(batch, models.CatalogItem{
			ID:         uuid.NewString(),
			Category:   category,
			Name:       name,
			SourceFile: fileName,
			ImportDate: now,
		})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.items
	s.items = append(s.items, batch...)
	if err := s.persistLocked(ctx); err != nil {
		s.items = prev
		return ImportResult{}, err
	}

	res.Imported = len(batch)
	s.log.Info(ctx, "catalog imported", "file", fileName, "imported", res.Imported, "skipped", len(res.RowErrors))
	return res, nil
}

// GroupBySourceFile summarizes provenance per file. Items without a source
// file (old snapshots) are not part of any group.
func (s *catalogService) GroupBySourceFile() []models.FileGroup {
	s.mu.Lock()
	defer s.mu.Unlock()

	byFile := make(map[string]*models.FileGroup)
	order := make([]string, 0)
	for _, it := range s.items {
		if it.SourceFile == "" {
			continue
		}
		g, ok := byFile[it.SourceFile]
		if !ok {
			g = &models.FileGroup{FileName: it.SourceFile}
			byFile[it.SourceFile] = g
			order = append(order, it.SourceFile)
		}
		g.Count++
		if it.ImportDate > g.LatestImportDate {
			g.LatestImportDate = it.ImportDate
		}
	}

	out := make([]models.FileGroup, 0, len(order))
	for _, name := range order {
		out = append(out, *byFile[name])
	}
	return out
}

func (s *catalogService) DeleteByIDs(ctx context.Context, ids []string) (int, error) {
	drop := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}
	return s.deleteWhere(ctx, func(it models.CatalogItem) bool {
		_, ok := drop[it.ID]
		return ok
	})
}

func (s *catalogService) DeleteBySourceFiles(ctx context.Context, names []string) (int, error) {
	drop := make(map[string]struct{}, len(names))
	for _, n := range names {
		drop[n] = struct{}{}
	}
	return s.deleteWhere(ctx, func(it models.CatalogItem) bool {
		_, ok := drop[it.SourceFile]
		return ok
	})
}

func (s *catalogService) deleteWhere(ctx context.Context, match func(models.CatalogItem) bool) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.items[:0:0]
	for _, it := range s.items {
		if !match(it) {
			kept = append(kept, it)
		}
	}
	removed := len(s.items) - len(kept)
	if removed == 0 {
		return 0, nil
	}

	prev := s.items
	s.items = kept
	if err := s.persistLocked(ctx); err != nil {
		s.items = prev
		return 0, err
	}

	s.log.Info(ctx, "catalog items deleted", "count", removed)
	return removed, nil
}

func (s *catalogService) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	if err := s.getStore().Delete(ctx, store.KeyCatalog); err != nil {
		return err
	}
	s.log.Info(ctx, "catalog cleared")
	return nil
}

// Categories returns the distinct categories, sorted, for form completion.
func (s *catalogService) Categories() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, it := range s.items {
		if _, ok := seen[it.Category]; ok {
			continue
		}
		seen[it.Category] = struct{}{}
		out = append(out, it.Category)
	}
	sort.Strings(out)
	return out
}

// NamesFor returns the distinct item names of a category, sorted.
func (s *catalogService) NamesFor(category string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, it := range s.items {
		if it.Category != category {
			continue
		}
		if _, ok := seen[it.Name]; ok {
			continue
		}
		seen[it.Name] = struct{}{}
		out = append(out, it.Name)
	}
	sort.Strings(out)
	return out
}

func (s *catalogService) persistLocked(ctx context.Context) error {
	return store.SaveSnapshot(ctx, s.getStore(), store.KeyCatalog, s.items)
}
