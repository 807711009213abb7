package services

import (
	"context"
	"encoding/json"
	"log"
	"os"

	"decor-backend/internal/models"
	"decor-backend/internal/repositories"
)

// SeedData is the on-disk layout of a seed file. Absent collections keep
// whatever the store already holds.
type SeedData struct {
	Events    []models.Event         `json:"events"`
	Services  []models.Service       `json:"services"`
	Portfolio []models.PortfolioItem `json:"portfolio"`
	Clients   []models.Client        `json:"clients"`
	Inquiries []models.Inquiry       `json:"inquiries"`
}

// Seeder populates collections that have never been persisted. A collection
// that already exists in the store, even as an empty list, is left alone.
type Seeder struct {
	Events    *repositories.EventRepository
	Services  *repositories.ServiceRepository
	Portfolio *repositories.PortfolioRepository
	Clients   *repositories.ClientRepository
	Inquiries *repositories.InquiryRepository
}

func NewSeeder(
	events *repositories.EventRepository,
	services *repositories.ServiceRepository,
	portfolio *repositories.PortfolioRepository,
	clients *repositories.ClientRepository,
	inquiries *repositories.InquiryRepository,
) *Seeder {
	return &Seeder{
		Events:    events,
		Services:  services,
		Portfolio: portfolio,
		Clients:   clients,
		Inquiries: inquiries,
	}
}

// Run seeds from the given file, or from the built-in samples when path is
// empty. It returns the number of collections that were seeded.
func (s *Seeder) Run(ctx context.Context, path string) int {
	data := defaultSeedData()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			log.Printf("[Seed] Cannot read seed file %s: %v", path, err)
			return 0
		}
		data = &SeedData{}
		if err := json.Unmarshal(raw, data); err != nil {
			log.Printf("[Seed] Cannot parse seed file %s: %v", path, err)
			return 0
		}
	}

	stampAll(data)

	seeded := 0
	if len(data.Events) > 0 && s.Events.Seed(ctx, data.Events) {
		seeded++
	}
	if len(data.Services) > 0 && s.Services.Seed(ctx, data.Services) {
		seeded++
	}
	if len(data.Portfolio) > 0 && s.Portfolio.Seed(ctx, data.Portfolio) {
		seeded++
	}
	if len(data.Clients) > 0 && s.Clients.Seed(ctx, data.Clients) {
		seeded++
	}
	if len(data.Inquiries) > 0 && s.Inquiries.Seed(ctx, data.Inquiries) {
		seeded++
	}
	if seeded > 0 {
		log.Printf("[Seed] Seeded %d collections", seeded)
	}
	return seeded
}

// stampAll fills ids and timestamps the seed file may omit.
func stampAll(data *SeedData) {
	now := models.Now()
	for i := range data.Events {
		if data.Events[i].ID == "" {
			data.Events[i].ID = models.NewID()
		}
		if data.Events[i].LastUpdated == "" {
			data.Events[i].LastUpdated = now
		}
	}
	for i := range data.Services {
		if data.Services[i].ID == "" {
			data.Services[i].ID = models.NewID()
		}
		if data.Services[i].LastUpdated == "" {
			data.Services[i].LastUpdated = now
		}
	}
	for i := range data.Portfolio {
		if data.Portfolio[i].ID == "" {
			data.Portfolio[i].ID = models.NewID()
		}
		if data.Portfolio[i].LastUpdated == "" {
			data.Portfolio[i].LastUpdated = now
		}
	}
	for i := range data.Clients {
		if data.Clients[i].ID == "" {
			data.Clients[i].ID = models.NewID()
		}
		if data.Clients[i].LastUpdated == "" {
			data.Clients[i].LastUpdated = now
		}
	}
	for i := range data.Inquiries {
		if data.Inquiries[i].ID == "" {
			data.Inquiries[i].ID = models.NewID()
		}
		if data.Inquiries[i].SubmittedAt == "" {
			data.Inquiries[i].SubmittedAt = now
		}
		if data.Inquiries[i].LastUpdated == "" {
			data.Inquiries[i].LastUpdated = now
		}
		if data.Inquiries[i].Status == "" {
			data.Inquiries[i].Status = models.InquiryStatusNew
		}
	}
}

func defaultSeedData() *SeedData {
	return &SeedData{
		Services: []models.Service{
			{
				Title:       "Wedding Decoration",
				Description: "Full venue styling for weddings, from mandap and stage to table settings",
				Category:    "Wedding",
				Status:      models.ServiceStatusActive,
				BasePrice:   "$2,500",
				Features:    []string{"Stage design", "Floral arrangements", "Lighting", "Table styling"},
			},
			{
				Title:       "Birthday Party Setup",
				Description: "Themed birthday decor with balloon arches and backdrop walls",
				Category:    "Birthday",
				Status:      models.ServiceStatusActive,
				BasePrice:   "$600",
				Features:    []string{"Balloon arch", "Backdrop wall", "Themed props"},
			},
			{
				Title:       "Corporate Event Styling",
				Description: "Branded stage and booth decor for launches and conferences",
				Category:    "Corporate",
				Status:      models.ServiceStatusActive,
				BasePrice:   "$1,800",
				Features:    []string{"Branded backdrops", "Stage design", "Entrance styling"},
			},
		},
		Portfolio: []models.PortfolioItem{
			{
				Title:       "Garden Wedding at Rosewood Estate",
				Description: "An outdoor ceremony in white and blush with a floral arch",
				Category:    "Wedding",
				Status:      models.PortfolioStatusPublished,
				Tags:        []string{"outdoor", "floral", "romantic"},
				Featured:    true,
			},
			{
				Title:       "Neon Nights Product Launch",
				Description: "A neon-lit corporate launch with a custom LED stage",
				Category:    "Corporate",
				Status:      models.PortfolioStatusPublished,
				Tags:        []string{"neon", "stage", "modern"},
			},
		},
	}
}
