package repositories

import (
	"context"
	"encoding/json"

	"decor-backend/internal/models"
	"decor-backend/internal/store"
)

type InquiryRepository struct {
	Store *store.Store
}

func NewInquiryRepository(st *store.Store) *InquiryRepository {
	return &InquiryRepository{Store: st}
}

func (r *InquiryRepository) List(ctx context.Context) []models.Inquiry {
	inquiries := []models.Inquiry{}
	r.Store.Read(ctx, models.KeyInquiries, &inquiries)
	return inquiries
}

func (r *InquiryRepository) Get(ctx context.Context, id string) (*models.Inquiry, error) {
	for _, inq := range r.List(ctx) {
		if inq.ID == id {
			return &inq, nil
		}
	}
	return nil, ErrNotFound
}

// Create assigns id, submittedAt and lastUpdated and appends the inquiry.
func (r *InquiryRepository) Create(ctx context.Context, inq *models.Inquiry) {
	inq.ID = models.NewID()
	inq.SubmittedAt = models.Now()
	inq.LastUpdated = inq.SubmittedAt
	if inq.Status == "" {
		inq.Status = models.InquiryStatusNew
	}

	r.Store.Update(ctx, models.KeyInquiries, func(raw json.RawMessage) any {
		return append(decodeInquiries(raw), *inq)
	})
}

func (r *InquiryRepository) Update(ctx context.Context, inq *models.Inquiry) error {
	err := ErrNotFound
	r.Store.Update(ctx, models.KeyInquiries, func(raw json.RawMessage) any {
		inquiries := decodeInquiries(raw)
		for i := range inquiries {
			if inquiries[i].ID == inq.ID {
				inq.SubmittedAt = inquiries[i].SubmittedAt
				inq.LastUpdated = models.Now()
				inquiries[i] = *inq
				err = nil
				return inquiries
			}
		}
		return nil
	})
	return err
}

func (r *InquiryRepository) Delete(ctx context.Context, id string) {
	r.BulkDelete(ctx, []string{id})
}

func (r *InquiryRepository) BulkDelete(ctx context.Context, ids []string) int {
	removed := 0
	targets := make(map[string]bool, len(ids))
	for _, id := range ids {
		targets[id] = true
	}

	r.Store.Update(ctx, models.KeyInquiries, func(raw json.RawMessage) any {
		inquiries := decodeInquiries(raw)
		kept := inquiries[:0]
		for _, inq := range inquiries {
			if targets[inq.ID] {
				removed++
				continue
			}
			kept = append(kept, inq)
		}
		if removed == 0 {
			return nil
		}
		return kept
	})
	return removed
}

func (r *InquiryRepository) Seed(ctx context.Context, inquiries []models.Inquiry) bool {
	var existing []models.Inquiry
	if r.Store.Read(ctx, models.KeyInquiries, &existing) {
		return false
	}
	r.Store.Write(ctx, models.KeyInquiries, inquiries)
	return true
}

func (r *InquiryRepository) ReplaceAll(ctx context.Context, inquiries []models.Inquiry) {
	if inquiries == nil {
		inquiries = []models.Inquiry{}
	}
	r.Store.Write(ctx, models.KeyInquiries, inquiries)
}

func decodeInquiries(raw json.RawMessage) []models.Inquiry {
	inquiries := []models.Inquiry{}
	if raw != nil {
		json.Unmarshal(raw, &inquiries)
	}
	return inquiries
}
