package services

import (
	"context"
	"strings"

	"decor-backend/internal/repositories"
	"decor-backend/internal/search"
)

// SearchService snapshots the collections and hands them to the ranking
// engine. Each query reads fresh data; there is no index to keep in sync.
type SearchService struct {
	Events    *repositories.EventRepository
	Services  *repositories.ServiceRepository
	Portfolio *repositories.PortfolioRepository
	Clients   *repositories.ClientRepository
	Inquiries *repositories.InquiryRepository
}

func NewSearchService(
	events *repositories.EventRepository,
	services *repositories.ServiceRepository,
	portfolio *repositories.PortfolioRepository,
	clients *repositories.ClientRepository,
	inquiries *repositories.InquiryRepository,
) *SearchService {
	return &SearchService{
		Events:    events,
		Services:  services,
		Portfolio: portfolio,
		Clients:   clients,
		Inquiries: inquiries,
	}
}

// Search runs a query over the requested types, or all types when none are
// given. Blank queries come back empty without touching the store.
func (s *SearchService) Search(ctx context.Context, query string, types []string) *search.Response {
	snap := &search.Snapshot{}
	if len(strings.Fields(query)) == 0 {
		return search.Search(query, snap, types)
	}
	requested := types
	if len(requested) == 0 {
		requested = search.AllTypes
	}
	for _, t := range requested {
		switch t {
		case search.TypeEvents:
			snap.Events = s.Events.List(ctx)
		case search.TypeServices:
			snap.Services = s.Services.List(ctx)
		case search.TypePortfolio:
			snap.Portfolio = s.Portfolio.List(ctx)
		case search.TypeClients:
			snap.Clients = s.Clients.List(ctx)
		case search.TypeInquiries:
			snap.Inquiries = s.Inquiries.List(ctx)
		}
	}
	return search.Search(query, snap, types)
}
