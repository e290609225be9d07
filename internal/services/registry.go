// Package services contains the application services: the inventory registry,
// the catalog import, user accounts and the optional photo-analysis helper.
// Each service owns one collection, mutates it only through its own
// operations and re-persists the whole snapshot after every mutation.
package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/avelichko/schoolinv/internal/common"
	"github.com/avelichko/schoolinv/internal/logging"
	"github.com/avelichko/schoolinv/internal/models"
	"github.com/avelichko/schoolinv/internal/store"
	"github.com/avelichko/schoolinv/internal/xlsxio"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

// RecordDraft is the validated-on-submit form input for a new record.
type RecordDraft struct {
	Category        string
	Name            string
	Quantity        int
	Unit            string
	InventoryNumber string
	Model           string
	SerialNumber    string
	Responsible     string
	RoomNumber      string
	Status          models.ItemStatus
	Date            string
	Note            string
	PhotoURL        string
}

// RegistryStats summarizes the registry for the statistics view.
type RegistryStats struct {
	Records       int
	Synced        int
	TotalQuantity int
	ByStatus      map[models.ItemStatus]int
	ByRoom        map[string]int
}

// RegistryService manages the inventory record collection.
//
// Contract:
//   - Add validates the draft, prepends the new record (newest first),
//     persists, and schedules the simulated sync acknowledgment.
//   - The delayed sync targets the record by id against state current at
//     fire time; a record deleted in the meantime is silently skipped.
//   - DeleteMany removes all matching ids in one step and is idempotent.
//   - Search is a case-insensitive substring match over name, inventory
//     number and room number; an empty term matches everything.
//   - Close stops outstanding sync timers.
type RegistryService interface {
	Hydrate(ctx context.Context) error
	All() []models.InventoryRecord
	Add(ctx context.Context, draft RecordDraft) (models.InventoryRecord, error)
	DeleteMany(ctx context.Context, ids []string) (int, error)
	Search(term string) []models.InventoryRecord
	Export(records []models.InventoryRecord) (*excelize.File, error)
	Stats() RegistryStats
	PurgeAll(ctx context.Context) error
	Close()
}

type registryService struct {
	db        *sql.DB
	log       logging.Logger
	syncDelay time.Duration

	mu      sync.Mutex
	records []models.InventoryRecord
	timers  map[string]*time.Timer
	closed  bool
}

// NewRegistryService constructs a RegistryService over the given database.
// syncDelay is how long a record stays unsynced before the simulated
// acknowledgment flips it.
func NewRegistryService(db *sql.DB, log logging.Logger, syncDelay time.Duration) RegistryService {
	return &registryService{
		db:        db,
		log:       log,
		syncDelay: syncDelay,
		timers:    make(map[string]*time.Timer),
	}
}

func (s *registryService) getStore() store.Store {
	return store.NewSQLiteStore(s.db)
}

// Hydrate loads the persisted collection. A missing or corrupt snapshot
// hydrates as empty.
func (s *registryService) Hydrate(ctx context.Context) error {
	records, err := store.LoadSnapshot[[]models.InventoryRecord](ctx, s.getStore(), store.KeyRecords)
	if err != nil {
		return fmt.Errorf("failed to hydrate records: %w", err)
	}
	s.mu.Lock()
	s.records = records
	s.mu.Unlock()
	return nil
}

// All returns a copy of the collection, newest first.
func (s *registryService) All() []models.InventoryRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.InventoryRecord, len(s.records))
	copy(out, s.records)
	return out
}

func validateDraft(d RecordDraft) error {
	if strings.TrimSpace(d.PhotoURL) == "" {
		return common.ErrorPhotoRequired
	}
	if d.Quantity < 1 {
		return common.ErrorBadQuantity
	}
	for field, v := range map[string]string{
		"category":    d.Category,
		"name":        d.Name,
		"responsible": d.Responsible,
		"roomNumber":  d.RoomNumber,
	} {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("%w: %s is required", common.ErrorValidation, field)
		}
	}
	if d.Status != "" && !models.ValidStatus(d.Status) {
		return fmt.Errorf("%w: unknown status %q", common.ErrorValidation, d.Status)
	}
	return nil
}

// Add validates the draft and admits it as a new unsynced record at the
// front of the collection.
func (s *registryService) Add(ctx context.Context, draft RecordDraft) (models.InventoryRecord, error) {
	var zero models.InventoryRecord

	if err := validateDraft(draft); err != nil {
		return zero, err
	}

	r := models.InventoryRecord{
		ID:              uuid.NewString(),
		Category:        draft.Category,
		Name:            draft.Name,
		Quantity:        draft.Quantity,
		Unit:            draft.Unit,
		InventoryNumber: draft.InventoryNumber,
		Model:           draft.Model,
		SerialNumber:    draft.SerialNumber,
		Responsible:     draft.Responsible,
		RoomNumber:      draft.RoomNumber,
		Status:          draft.Status,
		Date:            draft.Date,
		Note:            draft.Note,
		PhotoURL:        draft.PhotoURL,
		IsSynced:        false,
	}
	if r.Unit == "" {
		r.Unit = models.DefaultUnit
	}
	if r.Status == "" {
		r.Status = models.StatusGood
	}
	if r.Date == "" {
		r.Date = time.Now().Format("2006-01-02")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append([]models.InventoryRecord{r}, s.records...)
	if err := s.persistLocked(ctx); err != nil {
		s.records = s.records[1:]
		return zero, err
	}

	s.scheduleSyncLocked(r.ID)
	s.log.Info(ctx, "record added", "id", r.ID, "name", r.Name, "room", r.RoomNumber)
	return r, nil
}

// scheduleSyncLocked arms the one-shot timer simulating the server
// acknowledgment. The callback resolves the record by id at fire time, so
// adds and deletes during the delay cannot redirect it.
func (s *registryService) scheduleSyncLocked(id string) {
	if s.closed {
		return
	}
	s.timers[id] = time.AfterFunc(s.syncDelay, func() {
		s.markSynced(id)
	})
}

func (s *registryService) markSynced(id string) {
	ctx := context.Background()

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.timers, id)
	if s.closed {
		return
	}

	for i := range s.records {
		if s.records[i].ID != id {
			continue
		}
		s.records[i].IsSynced = true
		if err := s.persistLocked(ctx); err != nil {
			s.log.Error(ctx, "failed to persist sync flag", "id", id, "error", err)
			return
		}
		s.log.Info(ctx, "record synced", "id", id)
		return
	}
	// the record was deleted during the delay; nothing to do
}

// DeleteMany removes every record whose id is in ids. The removal and the
// snapshot write happen as one step; repeating the call changes nothing.
func (s *registryService) DeleteMany(ctx context.Context, ids []string) (int, error) {
	drop := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.records[:0:0]
	for _, r := range s.records {
		if _, ok := drop[r.ID]; !ok {
			kept = append(kept, r)
		}
	}
	removed := len(s.records) - len(kept)
	if removed == 0 {
		return 0, nil
	}

	prev := s.records
	s.records = kept
	if err := s.persistLocked(ctx); err != nil {
		s.records = prev
		return 0, err
	}

	s.log.Info(ctx, "records deleted", "count", removed)
	return removed, nil
}

// Search filters the collection by a case-insensitive substring over name,
// inventory number and room number.
func (s *registryService) Search(term string) []models.InventoryRecord {
	all := s.All()
	term = strings.ToLower(term)
	if term == "" {
		return all
	}

	out := make([]models.InventoryRecord, 0, len(all))
	for _, r := range all {
		if strings.Contains(strings.ToLower(r.Name), term) ||
			strings.Contains(strings.ToLower(r.InventoryNumber), term) ||
			strings.Contains(strings.ToLower(r.RoomNumber), term) {
			out = append(out, r)
		}
	}
	return out
}

// Export renders the given records into the export workbook without touching
// the stored collection.
func (s *registryService) Export(records []models.InventoryRecord) (*excelize.File, error) {
	return xlsxio.BuildExport(records)
}

// Stats aggregates the registry for the statistics view.
func (s *registryService) Stats() RegistryStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := RegistryStats{
		Records:  len(s.records),
		ByStatus: make(map[models.ItemStatus]int),
		ByRoom:   make(map[string]int),
	}
	for _, r := range s.records {
		st.TotalQuantity += r.Quantity
		st.ByStatus[r.Status]++
		st.ByRoom[r.RoomNumber]++
		if r.IsSynced {
			st.Synced++
		}
	}
	return st
}

// PurgeAll wipes the whole collection (account deletion path).
func (s *registryService) PurgeAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = nil
	if err := s.getStore().Delete(ctx, store.KeyRecords); err != nil {
		return err
	}
	s.log.Info(ctx, "registry purged")
	return nil
}

// Close stops outstanding sync timers. Records still unsynced stay unsynced.
func (s *registryService) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	for id, tm := range s.timers {
		tm.Stop()
		delete(s.timers, id)
	}
}

func (s *registryService) persistLocked(ctx context.Context) error {
	return store.SaveSnapshot(ctx, s.getStore(), store.KeyRecords, s.records)
}
