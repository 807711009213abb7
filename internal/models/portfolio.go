package models

// Portfolio item statuses.
const (
	PortfolioStatusPublished = "published"
	PortfolioStatusDraft     = "draft"
	PortfolioStatusArchived  = "archived"
)

type PortfolioItem struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Status      string   `json:"status"`
	Image       string   `json:"image"`
	Tags        []string `json:"tags"`
	EventDate   string   `json:"eventDate"`
	ClientName  string   `json:"clientName"`
	Views       int      `json:"views"`
	Likes       int      `json:"likes"`
	Featured    bool     `json:"featured"`
	LastUpdated string   `json:"lastUpdated"`
}

// CreatePortfolioItemRequest represents the request body for creating a portfolio item
type CreatePortfolioItemRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Status      string   `json:"status"`
	Image       string   `json:"image"`
	Tags        []string `json:"tags"`
	EventDate   string   `json:"eventDate"`
	ClientName  string   `json:"clientName"`
	Featured    bool     `json:"featured"`
}

// UpdatePortfolioItemRequest represents the request body for updating a portfolio item
type UpdatePortfolioItemRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Status      string   `json:"status"`
	Image       string   `json:"image"`
	Tags        []string `json:"tags"`
	EventDate   string   `json:"eventDate"`
	ClientName  string   `json:"clientName"`
	Views       int      `json:"views"`
	Likes       int      `json:"likes"`
	Featured    bool     `json:"featured"`
}
