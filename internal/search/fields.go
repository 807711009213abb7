package search

import (
	"strings"

	"decor-backend/internal/models"
)

// Entity type identifiers used as result-map keys.
const (
	TypeEvents    = "events"
	TypeServices  = "services"
	TypePortfolio = "portfolio"
	TypeClients   = "clients"
	TypeInquiries = "inquiries"
)

// AllTypes lists every searchable entity type.
var AllTypes = []string{TypeEvents, TypeServices, TypePortfolio, TypeClients, TypeInquiries}

// fieldText is one weighted field of one entity, flattened to matchable
// text. The per-type builders below are the complete field sets; a field
// absent here cannot contribute to a score, so there is no fallback weight
// for unknown names.
type fieldText struct {
	Name   string
	Weight float64
	Text   string
}

func eventFields(e *models.Event) []fieldText {
	return []fieldText{
		{"title", 3, e.Title},
		{"clientName", 2.5, e.ClientName},
		{"eventType", 2, e.EventType},
		{"location", 1.5, e.Location},
		{"services", 1.5, joinList(e.Services)},
		{"description", 1, e.Description},
		{"clientEmail", 1, e.ClientEmail},
	}
}

func serviceFields(s *models.Service) []fieldText {
	return []fieldText{
		{"title", 3, s.Title},
		{"category", 2, s.Category},
		{"features", 1.5, joinList(s.Features)},
		{"description", 1, s.Description},
	}
}

func portfolioFields(p *models.PortfolioItem) []fieldText {
	return []fieldText{
		{"title", 3, p.Title},
		{"category", 2, p.Category},
		{"tags", 2, joinList(p.Tags)},
		{"clientName", 1.5, p.ClientName},
		{"description", 1, p.Description},
	}
}

func clientFields(c *models.Client) []fieldText {
	return []fieldText{
		{"name", 3, c.Name},
		{"email", 2, c.Email},
		{"location", 1.5, c.Location},
		{"preferredServices", 1.5, joinList(c.PreferredServices)},
		{"phone", 1, c.Phone},
		{"notes", 1, c.Notes},
	}
}

func inquiryFields(i *models.Inquiry) []fieldText {
	return []fieldText{
		{"clientName", 3, i.ClientName},
		{"eventType", 2, i.EventType},
		{"email", 1.5, i.Email},
		{"location", 1.5, i.Location},
		{"message", 1, i.Message},
	}
}

// joinList flattens a list field into one matchable string.
func joinList(values []string) string {
	return strings.Join(values, " ")
}
