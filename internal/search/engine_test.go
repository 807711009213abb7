package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"decor-backend/internal/models"
)

func sampleSnapshot() *Snapshot {
	return &Snapshot{
		Events: []models.Event{
			{ID: "e1", Title: "Wedding Gala", ClientName: "Priya Sharma", EventType: "wedding", Location: "Mumbai", Description: "Grand floral decor"},
			{ID: "e2", Title: "Corporate Summit", ClientName: "Acme Corp", EventType: "corporate", Location: "Pune", Description: "Stage and wedding-themed backdrop"},
		},
		Services: []models.Service{
			{ID: "s1", Title: "Floral Decoration", Category: "decor", Description: "Fresh flower arrangements"},
		},
		Clients: []models.Client{
			{ID: "c1", Name: "Priya Sharma", Email: "priya@example.com", Location: "Mumbai"},
		},
		Inquiries: []models.Inquiry{
			{ID: "i1", ClientName: "Rahul Verma", EventType: "wedding", Email: "rahul@example.com", Message: "Need decor for a reception"},
		},
	}
}

func TestSearchBlankQueryReturnsEmptyShape(t *testing.T) {
	resp := Search("   ", sampleSnapshot(), nil)

	assert.Equal(t, 0, resp.TotalResults)
	assert.Equal(t, float64(0), resp.ExecutionTimeMS)
	assert.Empty(t, resp.Types)
	require.Len(t, resp.Results, len(AllTypes))
	for _, typ := range AllTypes {
		hits, ok := resp.Results[typ]
		require.True(t, ok)
		assert.Empty(t, hits)
	}
}

func TestSearchRequestedTypesGetEmptyListsEvenWithoutHits(t *testing.T) {
	resp := Search("wedding", sampleSnapshot(), []string{TypeServices})

	require.Len(t, resp.Results, 1)
	hits, ok := resp.Results[TypeServices]
	require.True(t, ok)
	assert.Empty(t, hits)
	assert.Equal(t, 0, resp.TotalResults)
}

func TestSearchWholeTokenOutscoresSubstring(t *testing.T) {
	resp := Search("wedding", sampleSnapshot(), []string{TypeEvents})

	hits := resp.Results[TypeEvents]
	require.Len(t, hits, 2)
	// e1 matches "wedding" as a whole token in title and eventType; e2 only
	// as a substring of "wedding-themed" in the description.
	assert.Equal(t, "e1", hits[0].ID)
	assert.Equal(t, "e2", hits[1].ID)
	assert.Greater(t, hits[0].Score, hits[1].Score)
}

func TestSearchScoringWeightsAndPrefixBonus(t *testing.T) {
	snap := &Snapshot{
		Events: []models.Event{
			{ID: "e1", Title: "Wedding Gala", Description: "A grand wedding"},
		},
	}
	resp := Search("wedding", snap, []string{TypeEvents})

	hits := resp.Results[TypeEvents]
	require.Len(t, hits, 1)
	// Title: whole token +2, leading prefix +1, weight 3 -> 9.
	// Description: whole token +2, no prefix, weight 1 -> 2.
	assert.Equal(t, float64(11), hits[0].Score)
	assert.Equal(t, []string{"title", "description"}, hits[0].MatchedFields)
}

func TestSearchMultiWordQueryAccumulates(t *testing.T) {
	snap := &Snapshot{
		Clients: []models.Client{
			{ID: "c1", Name: "Priya Sharma"},
			{ID: "c2", Name: "Priya Patel"},
		},
	}
	resp := Search("priya sharma", snap, []string{TypeClients})

	hits := resp.Results[TypeClients]
	require.Len(t, hits, 2)
	assert.Equal(t, "c1", hits[0].ID)
	assert.Greater(t, hits[0].Score, hits[1].Score)
}

func TestSearchStableOrderOnTies(t *testing.T) {
	snap := &Snapshot{
		Services: []models.Service{
			{ID: "s1", Title: "Lighting"},
			{ID: "s2", Title: "Lighting"},
		},
	}
	resp := Search("lighting", snap, []string{TypeServices})

	hits := resp.Results[TypeServices]
	require.Len(t, hits, 2)
	assert.Equal(t, "s1", hits[0].ID)
	assert.Equal(t, "s2", hits[1].ID)
}

func TestSearchTypesListsOnlyTypesWithHits(t *testing.T) {
	resp := Search("wedding", sampleSnapshot(), nil)

	assert.Equal(t, []string{TypeEvents, TypeInquiries}, resp.Types)
	assert.Equal(t, resp.TotalResults, len(resp.Results[TypeEvents])+len(resp.Results[TypeInquiries]))
}

func TestSearchOnlyMatchingEventReturned(t *testing.T) {
	snap := &Snapshot{
		Events: []models.Event{
			{ID: "e1", Title: "Johnson Wedding"},
			{ID: "e2", Title: "Corporate Gala"},
		},
	}
	resp := Search("wedding", snap, []string{TypeEvents})

	hits := resp.Results[TypeEvents]
	require.Len(t, hits, 1)
	assert.Equal(t, "e1", hits[0].ID)
	assert.Contains(t, hits[0].MatchedFields, "title")
	assert.Equal(t, "Johnson <mark>Wedding</mark>", hits[0].HighlightedTitle)
}

func TestSearchCaseInsensitive(t *testing.T) {
	resp := Search("PRIYA", sampleSnapshot(), []string{TypeClients})
	require.Len(t, resp.Results[TypeClients], 1)
}

func TestHighlightPreservesCasing(t *testing.T) {
	out := Highlight("Wedding decor for a wedding", []string{"wedding"})
	assert.Equal(t, "<mark>Wedding</mark> decor for a <mark>wedding</mark>", out)
}

func TestHighlightSequentialWordsNest(t *testing.T) {
	// Later words are applied over already-marked text, so a word contained
	// in an earlier match gets wrapped inside the existing tags.
	out := Highlight("wedding", []string{"wedding", "wed"})
	assert.Equal(t, "<mark><mark>wed</mark>ding</mark>", out)
}

func TestHighlightNoMatchReturnsInput(t *testing.T) {
	assert.Equal(t, "plain text", Highlight("plain text", []string{"absent"}))
}
