// Package store implements the persistent snapshot store: a durable
// key-value table holding whole-collection JSON blobs, one per logical key.
// Every mutation in the services re-saves the full collection, so the
// on-disk state never trails the in-memory state by more than one operation.
package store

import "context"

// Logical keys. The names match the legacy browser-storage snapshot format.
const (
	KeyCurrentUser = "inventory_user"
	KeyAllUsers    = "all_users"
	KeyCatalog     = "inventory_catalog"
	KeyRecords     = "inventory_records"

	pendingUserPrefix = "pending_user_"
)

// PendingUserKey returns the per-email key an unverified registration is
// parked under until the confirmation step.
func PendingUserKey(email string) string {
	return pendingUserPrefix + email
}

// Store describes the snapshot operations. Load reports absence via its
// second return value rather than an error.
type Store interface {
	Load(ctx context.Context, key string) ([]byte, bool, error)
	Save(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
