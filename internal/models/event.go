package models

// Event statuses. Transitions are free-form; no state machine is enforced.
const (
	EventStatusConfirmed  = "confirmed"
	EventStatusPlanning   = "planning"
	EventStatusInProgress = "in-progress"
	EventStatusCompleted  = "completed"
	EventStatusCancelled  = "cancelled"
)

type Event struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	ClientName  string   `json:"clientName"`
	ClientEmail string   `json:"clientEmail"`
	ClientPhone string   `json:"clientPhone"`
	EventType   string   `json:"eventType"`
	EventDate   string   `json:"eventDate"`
	EventTime   string   `json:"eventTime"`
	Location    string   `json:"location"`
	Budget      string   `json:"budget"`
	Status      string   `json:"status"`
	Description string   `json:"description"`
	Services    []string `json:"services"`
	LastUpdated string   `json:"lastUpdated"`
}

// CreateEventRequest represents the request body for creating an event
type CreateEventRequest struct {
	Title       string   `json:"title" validate:"required"`
	ClientName  string   `json:"clientName" validate:"required"`
	ClientEmail string   `json:"clientEmail" validate:"omitempty,email"`
	ClientPhone string   `json:"clientPhone"`
	EventType   string   `json:"eventType"`
	EventDate   string   `json:"eventDate"`
	EventTime   string   `json:"eventTime"`
	Location    string   `json:"location"`
	Budget      string   `json:"budget"`
	Status      string   `json:"status"`
	Description string   `json:"description"`
	Services    []string `json:"services"`
}

// UpdateEventRequest represents the request body for updating an event
type UpdateEventRequest struct {
	Title       string   `json:"title" validate:"required"`
	ClientName  string   `json:"clientName" validate:"required"`
	ClientEmail string   `json:"clientEmail" validate:"omitempty,email"`
	ClientPhone string   `json:"clientPhone"`
	EventType   string   `json:"eventType"`
	EventDate   string   `json:"eventDate"`
	EventTime   string   `json:"eventTime"`
	Location    string   `json:"location"`
	Budget      string   `json:"budget"`
	Status      string   `json:"status"`
	Description string   `json:"description"`
	Services    []string `json:"services"`
}
