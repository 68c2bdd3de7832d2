package domain

import "time"

// ChangeEntityType identifies which record a history entry refers to.
type ChangeEntityType string

const (
	ChangeEntityProfile     ChangeEntityType = "PROFILE"
	ChangeEntityMeasurement ChangeEntityType = "MEASUREMENT"
)

// ChangeHistoryEntry is one field-level change recorded against the
// user's profile or measurements.
type ChangeHistoryEntry struct {
	ID         int64            `json:"id"`
	EntityType ChangeEntityType `json:"entityType"`
	EntityID   *int64           `json:"entityId"`
	FieldName  string           `json:"fieldName"`
	OldValue   *string          `json:"oldValue"`
	NewValue   *string          `json:"newValue"`
	ChangedAt  time.Time        `json:"changedAt"`
}
