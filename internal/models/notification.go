package models

// Notification types.
const (
	NotificationTypeCreate       = "create"
	NotificationTypeUpdate       = "update"
	NotificationTypeDelete       = "delete"
	NotificationTypeStatusChange = "status_change"
	NotificationTypeArchive      = "archive"
	NotificationTypeSystem       = "system"
)

// Notification priorities.
const (
	NotificationPriorityLow    = "low"
	NotificationPriorityMedium = "medium"
	NotificationPriorityHigh   = "high"
)

// ValueChange carries the before/after values for update notifications.
type ValueChange struct {
	OldValue string `json:"oldValue,omitempty"`
	NewValue string `json:"newValue,omitempty"`
}

// Notification is one admin action record. EntityID/EntityName are weak
// references; deleting the entity does not cascade to its notifications.
type Notification struct {
	ID         string       `json:"id"`
	Type       string       `json:"type"`
	Category   string       `json:"category"`
	Title      string       `json:"title"`
	Message    string       `json:"message"`
	EntityID   string       `json:"entityId,omitempty"`
	EntityName string       `json:"entityName,omitempty"`
	ActionBy   string       `json:"actionBy"`
	Timestamp  string       `json:"timestamp"`
	IsRead     bool         `json:"isRead"`
	Priority   string       `json:"priority"`
	Metadata   *ValueChange `json:"metadata,omitempty"`
}

// CreateNotificationRequest represents the payload for appending a notification
type CreateNotificationRequest struct {
	Type       string       `json:"type" validate:"required"`
	Category   string       `json:"category" validate:"required"`
	Title      string       `json:"title" validate:"required"`
	Message    string       `json:"message"`
	EntityID   string       `json:"entityId"`
	EntityName string       `json:"entityName"`
	ActionBy   string       `json:"actionBy"`
	Priority   string       `json:"priority"`
	Metadata   *ValueChange `json:"metadata"`
}
