package models

// Client statuses.
const (
	ClientStatusActive   = "active"
	ClientStatusInactive = "inactive"
	ClientStatusPending  = "pending"
	ClientStatusVIP      = "vip"
)

type Client struct {
	ID                      string   `json:"id"`
	Name                    string   `json:"name"`
	Email                   string   `json:"email"`
	Phone                   string   `json:"phone"`
	Location                string   `json:"location"`
	Status                  string   `json:"status"`
	TotalEvents             int      `json:"totalEvents"`
	TotalSpent              string   `json:"totalSpent"`
	PreferredServices       []string `json:"preferredServices"`
	Notes                   string   `json:"notes"`
	Rating                  int      `json:"rating"`
	CommunicationPreference string   `json:"communicationPreference"`
	LastUpdated             string   `json:"lastUpdated"`
}

// CreateClientRequest represents the request body for creating a client
type CreateClientRequest struct {
	Name                    string   `json:"name" validate:"required"`
	Email                   string   `json:"email" validate:"omitempty,email"`
	Phone                   string   `json:"phone"`
	Location                string   `json:"location"`
	Status                  string   `json:"status"`
	TotalEvents             int      `json:"totalEvents"`
	TotalSpent              string   `json:"totalSpent"`
	PreferredServices       []string `json:"preferredServices"`
	Notes                   string   `json:"notes"`
	Rating                  int      `json:"rating" validate:"omitempty,min=1,max=5"`
	CommunicationPreference string   `json:"communicationPreference"`
}

// UpdateClientRequest represents the request body for updating a client
type UpdateClientRequest struct {
	Name                    string   `json:"name" validate:"required"`
	Email                   string   `json:"email" validate:"omitempty,email"`
	Phone                   string   `json:"phone"`
	Location                string   `json:"location"`
	Status                  string   `json:"status"`
	TotalEvents             int      `json:"totalEvents"`
	TotalSpent              string   `json:"totalSpent"`
	PreferredServices       []string `json:"preferredServices"`
	Notes                   string   `json:"notes"`
	Rating                  int      `json:"rating" validate:"omitempty,min=1,max=5"`
	CommunicationPreference string   `json:"communicationPreference"`
}
