package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser_AdminDetection(t *testing.T) {
	tests := []struct {
		email string
		admin bool
	}{
		{"admin@school.org", true},
		{"teacher@school.org", false},
		{"schooladmin@lyceum1.ru", true},
	}
	for _, tc := range tests {
		u := NewUser(tc.email, "Иванов Иван", "Лицей №1", "Завхоз", "secret1")
		assert.Equal(t, tc.admin, u.IsAdmin, tc.email)
		assert.False(t, u.IsVerified)
		assert.True(t, u.NotificationsEnabled)
	}
}

func TestInventoryRecord_SnapshotFieldNames(t *testing.T) {
	// Snapshots must stay compatible with the legacy browser-storage format.
	r := InventoryRecord{ID: "r1", PhotoURL: "data:image/jpeg;base64,xxx", Status: StatusGood}
	b, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"photoUrl"`)
	assert.Contains(t, string(b), `"isSynced"`)
	assert.Contains(t, string(b), `"inventoryNumber"`)
}

func TestValidStatus(t *testing.T) {
	for _, s := range AllStatuses() {
		assert.True(t, ValidStatus(s))
	}
	assert.False(t, ValidStatus("Новое"))
}

func TestParseView(t *testing.T) {
	v, ok := ParseView("registry")
	require.True(t, ok)
	assert.Equal(t, ViewRegistry, v)
	assert.Equal(t, "Реестр имущества", v.Title())

	_, ok = ParseView("settings")
	assert.False(t, ok)
}
