package models

// Inquiry statuses.
const (
	InquiryStatusNew        = "new"
	InquiryStatusInProgress = "in-progress"
	InquiryStatusResponded  = "responded"
	InquiryStatusConverted  = "converted"
	InquiryStatusArchived   = "archived"
)

// Inquiry is a contact-form submission. The clientName is a weak reference;
// it is never validated against the clients collection.
type Inquiry struct {
	ID          string `json:"id"`
	ClientName  string `json:"clientName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	EventType   string `json:"eventType"`
	EventDate   string `json:"eventDate"`
	Location    string `json:"location"`
	Budget      string `json:"budget"`
	Message     string `json:"message"`
	Status      string `json:"status"`
	SubmittedAt string `json:"submittedAt"`
	LastUpdated string `json:"lastUpdated"`
}

// SubmitInquiryRequest is the public contact-form payload. Missing required
// fields abort the submission before any write.
type SubmitInquiryRequest struct {
	ClientName string `json:"clientName" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone"`
	EventType  string `json:"eventType" validate:"required"`
	EventDate  string `json:"eventDate"`
	Location   string `json:"location"`
	Budget     string `json:"budget"`
	Message    string `json:"message" validate:"required"`
}

// UpdateInquiryRequest represents the request body for updating an inquiry
type UpdateInquiryRequest struct {
	ClientName string `json:"clientName" validate:"required"`
	Email      string `json:"email" validate:"omitempty,email"`
	Phone      string `json:"phone"`
	EventType  string `json:"eventType"`
	EventDate  string `json:"eventDate"`
	Location   string `json:"location"`
	Budget     string `json:"budget"`
	Message    string `json:"message"`
	Status     string `json:"status"`
}
