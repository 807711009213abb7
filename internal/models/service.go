package models

// Service statuses.
const (
	ServiceStatusActive   = "active"
	ServiceStatusInactive = "inactive"
	ServiceStatusDraft    = "draft"
)

// Service is a bookable decor service offering.
type Service struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Category      string   `json:"category"`
	Status        string   `json:"status"`
	BasePrice     string   `json:"basePrice"`
	Features      []string `json:"features"`
	Popularity    int      `json:"popularity"`
	TotalBookings int      `json:"totalBookings"`
	AverageRating float64  `json:"averageRating"`
	LastUpdated   string   `json:"lastUpdated"`
}

// CreateServiceRequest represents the request body for creating a service
type CreateServiceRequest struct {
	Title         string   `json:"title" validate:"required"`
	Description   string   `json:"description"`
	Category      string   `json:"category"`
	Status        string   `json:"status"`
	BasePrice     string   `json:"basePrice"`
	Features      []string `json:"features"`
	Popularity    int      `json:"popularity"`
	TotalBookings int      `json:"totalBookings"`
	AverageRating float64  `json:"averageRating"`
}

// UpdateServiceRequest represents the request body for updating a service
type UpdateServiceRequest struct {
	Title         string   `json:"title" validate:"required"`
	Description   string   `json:"description"`
	Category      string   `json:"category"`
	Status        string   `json:"status"`
	BasePrice     string   `json:"basePrice"`
	Features      []string `json:"features"`
	Popularity    int      `json:"popularity"`
	TotalBookings int      `json:"totalBookings"`
	AverageRating float64  `json:"averageRating"`
}
