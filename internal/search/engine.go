package search

import (
	"sort"
	"strings"
	"time"

	"decor-backend/internal/metrics"
	"decor-backend/internal/models"
)

// Snapshot is the data a single search pass runs over. Callers take it from
// the repositories once per query; the engine never touches storage itself.
type Snapshot struct {
	Events    []models.Event
	Services  []models.Service
	Portfolio []models.PortfolioItem
	Clients   []models.Client
	Inquiries []models.Inquiry
}

// Result is one scored hit. Record carries the full entity for the caller.
type Result struct {
	ID                     string   `json:"id"`
	Type                   string   `json:"type"`
	Title                  string   `json:"title"`
	Description            string   `json:"description"`
	HighlightedTitle       string   `json:"highlightedTitle"`
	HighlightedDescription string   `json:"highlightedDescription"`
	Score                  float64  `json:"score"`
	MatchedFields          []string `json:"matchedFields"`
	Record                 any      `json:"record"`
}

// Response groups hits per entity type. Types lists only the types that
// produced at least one hit, in AllTypes order.
type Response struct {
	Query           string              `json:"query"`
	Results         map[string][]Result `json:"results"`
	Types           []string            `json:"types"`
	TotalResults    int                 `json:"totalResults"`
	ExecutionTimeMS float64             `json:"executionTimeMs"`
}

// Search scores every entity in snap against query and returns per-type hit
// lists sorted by descending score. Ties keep collection order. A blank or
// whitespace-only query returns the empty shape without scanning anything.
func Search(query string, snap *Snapshot, types []string) *Response {
	resp := &Response{
		Query:   query,
		Results: make(map[string][]Result),
		Types:   []string{},
	}
	if len(types) == 0 {
		types = AllTypes
	}
	for _, t := range types {
		resp.Results[t] = []Result{}
	}

	words := strings.Fields(strings.ToLower(query))
	if len(words) == 0 {
		return resp
	}

	start := time.Now()
	for _, t := range types {
		switch t {
		case TypeEvents:
			for i := range snap.Events {
				e := &snap.Events[i]
				appendHit(resp, t, words, eventFields(e), e.ID, e.Title, e.Description, e)
			}
		case TypeServices:
			for i := range snap.Services {
				s := &snap.Services[i]
				appendHit(resp, t, words, serviceFields(s), s.ID, s.Title, s.Description, s)
			}
		case TypePortfolio:
			for i := range snap.Portfolio {
				p := &snap.Portfolio[i]
				appendHit(resp, t, words, portfolioFields(p), p.ID, p.Title, p.Description, p)
			}
		case TypeClients:
			for i := range snap.Clients {
				c := &snap.Clients[i]
				appendHit(resp, t, words, clientFields(c), c.ID, c.Name, c.Notes, c)
			}
		case TypeInquiries:
			for i := range snap.Inquiries {
				q := &snap.Inquiries[i]
				appendHit(resp, t, words, inquiryFields(q), q.ID, q.ClientName, q.Message, q)
			}
		}
	}

	for _, t := range AllTypes {
		hits, ok := resp.Results[t]
		if !ok {
			continue
		}
		sort.SliceStable(hits, func(i, j int) bool {
			return hits[i].Score > hits[j].Score
		})
		resp.TotalResults += len(hits)
		if len(hits) > 0 {
			resp.Types = append(resp.Types, t)
		}
	}

	elapsed := time.Since(start)
	resp.ExecutionTimeMS = float64(elapsed.Microseconds()) / 1000.0
	metrics.SearchQueriesTotal.Inc()
	metrics.SearchDuration.Observe(elapsed.Seconds())
	return resp
}

func appendHit(resp *Response, typ string, words []string, fields []fieldText, id, title, description string, record any) {
	score, matched := scoreFields(words, fields)
	if score <= 0 {
		return
	}
	resp.Results[typ] = append(resp.Results[typ], Result{
		ID:                     id,
		Type:                   typ,
		Title:                  title,
		Description:            description,
		HighlightedTitle:       Highlight(title, words),
		HighlightedDescription: Highlight(description, words),
		Score:                  score,
		MatchedFields:          matched,
		Record:                 record,
	})
}

// scoreFields applies the word-level scoring to every field and reports the
// names of fields that contributed, in declaration order.
func scoreFields(words []string, fields []fieldText) (float64, []string) {
	var total float64
	matched := []string{}
	for _, f := range fields {
		text := strings.ToLower(f.Text)
		if text == "" {
			continue
		}
		tokens := strings.Fields(text)
		var fieldScore float64
		for _, w := range words {
			if containsToken(tokens, w) {
				fieldScore += 2
			} else if strings.Contains(text, w) {
				fieldScore++
			}
			if strings.HasPrefix(text, w) {
				fieldScore++
			}
		}
		if fieldScore > 0 {
			total += fieldScore * f.Weight
			matched = append(matched, f.Name)
		}
	}
	return total, matched
}

func containsToken(tokens []string, word string) bool {
	for _, t := range tokens {
		if t == word {
			return true
		}
	}
	return false
}

// Highlight wraps every case-insensitive occurrence of each word in
// <mark> tags, preserving the original casing of the matched text. Words are
// applied one after another over the already-marked string, so a word that
// also occurs inside a previous word's match gets wrapped again. That nested
// wrapping is the established output shape and is kept as-is.
func Highlight(text string, words []string) string {
	out := text
	for _, w := range words {
		if w == "" {
			continue
		}
		out = markWord(out, w)
	}
	return out
}

func markWord(text, word string) string {
	lower := strings.ToLower(text)
	var b strings.Builder
	pos := 0
	for {
		idx := strings.Index(lower[pos:], word)
		if idx < 0 {
			b.WriteString(text[pos:])
			break
		}
		idx += pos
		b.WriteString(text[pos:idx])
		b.WriteString("<mark>")
		b.WriteString(text[idx : idx+len(word)])
		b.WriteString("</mark>")
		pos = idx + len(word)
	}
	return b.String()
}
