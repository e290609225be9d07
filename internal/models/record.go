package models

// ItemStatus classifies the physical condition of an inventoried item.
// The values are the user-facing Russian labels; they are persisted as-is.
type ItemStatus string

const (
	StatusExcellent    ItemStatus = "Отличное"
	StatusGood         ItemStatus = "Хорошее"
	StatusUsed         ItemStatus = "Б/У"
	StatusRepairNeeded ItemStatus = "Требует ремонта"
	StatusWriteOff     ItemStatus = "Списание"
)

// AllStatuses lists the statuses in form order.
func AllStatuses() []ItemStatus {
	return []ItemStatus{StatusExcellent, StatusGood, StatusUsed, StatusRepairNeeded, StatusWriteOff}
}

// ValidStatus reports whether s is one of the known statuses.
func ValidStatus(s ItemStatus) bool {
	switch s {
	case StatusExcellent, StatusGood, StatusUsed, StatusRepairNeeded, StatusWriteOff:
		return true
	}
	return false
}

// DefaultUnit is the unit of measure preset in the add form.
const DefaultUnit = "шт"

// InventoryRecord is one inventoried physical item. Records are immutable
// after creation except for the IsSynced flag, which flips once when the
// simulated sync acknowledgment arrives.
type InventoryRecord struct {
	ID              string     `json:"id"`
	Category        string     `json:"category"`
	Name            string     `json:"name"`
	Quantity        int        `json:"quantity"`
	Unit            string     `json:"unit"`
	InventoryNumber string     `json:"inventoryNumber"`
	Model           string     `json:"model"`
	SerialNumber    string     `json:"serialNumber"`
	Responsible     string     `json:"responsible"`
	RoomNumber      string     `json:"roomNumber"`
	Status          ItemStatus `json:"status"`
	Date            string     `json:"date"`
	Note            string     `json:"note"`
	PhotoURL        string     `json:"photoUrl"`
	IsSynced        bool       `json:"isSynced"`
}
