package search

import (
	"strings"

	"amphi/internal/domain"
)

// corpus stands in for a real search index
var corpus = []domain.SearchResult{
	{
		ID:          "1",
		Title:       "Project Architecture Documentation",
		Description: "Learn about the overall project architecture and tech stack",
		Type:        domain.ResultDocumentation,
		URL:         "/docs/architecture",
		Category:    "Documentation",
	},
	{
		ID:          "2",
		Title:       "Component Development Standards",
		Description: "Learn how to develop new components",
		Type:        domain.ResultDocumentation,
		URL:         "/docs/components",
		Category:    "Documentation",
	},
	{
		ID:          "3",
		Title:       "CardNav Component",
		Description: "Top navigation menu component",
		Type:        domain.ResultComponent,
		URL:         "/components/cardnav",
		Category:    "Components",
	},
	{
		ID:          "4",
		Title:       "User Authentication API",
		Description: "User login and registration related interfaces",
		Type:        domain.ResultAPI,
		URL:         "/api/auth",
		Category:    "API",
	},
	{
		ID:          "5",
		Title:       "Dashboard Page",
		Description: "User main console page",
		Type:        domain.ResultPage,
		URL:         "/dashboard",
		Category:    "Pages",
	},
}

// Corpus returns a copy of the static result corpus in source order
func Corpus() []domain.SearchResult {
	out := make([]domain.SearchResult, len(corpus))
	copy(out, corpus)
	return out
}

// Filter returns the entries whose title, description or category contain
// query, compared case-insensitively. Source order is preserved and a blank
// query matches nothing.
func Filter(items []domain.SearchResult, query string) []domain.SearchResult {
	if strings.TrimSpace(query) == "" {
		return nil
	}
	q := strings.ToLower(query)

	var out []domain.SearchResult
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Title), q) ||
			strings.Contains(strings.ToLower(item.Description), q) ||
			strings.Contains(strings.ToLower(item.Category), q) {
			out = append(out, item)
		}
	}
	return out
}
