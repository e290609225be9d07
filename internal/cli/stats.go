package cli

import (
	"context"
	"fmt"
	"sort"

	"github.com/avelichko/schoolinv/internal/models"
)

// Stats prints the registry summary: totals, per-status and per-room counts.
func (a *App) Stats(ctx context.Context) error {
	st := a.registry.Stats()

	printlnFn("Записей в реестре:   ", st.Records)
	printlnFn("Единиц имущества:    ", st.TotalQuantity)
	printlnFn("Синхронизировано:    ", fmt.Sprintf("%d из %d", st.Synced, st.Records))

	if len(st.ByStatus) > 0 {
		printlnFn("По состоянию:")
		for _, s := range models.AllStatuses() {
			if n := st.ByStatus[s]; n > 0 {
				printlnFn(fmt.Sprintf("  %-16s %d", s, n))
			}
		}
	}

	if len(st.ByRoom) > 0 {
		rooms := make([]string, 0, len(st.ByRoom))
		for room := range st.ByRoom {
			rooms = append(rooms, room)
		}
		sort.Strings(rooms)

		printlnFn("По кабинетам:")
		for _, room := range rooms {
			printlnFn(fmt.Sprintf("  каб. %-10s %d", room, st.ByRoom[room]))
		}
	}
	return nil
}
