package model

import "encoding/json"

// Pagination is server-authoritative; the client never recomputes totals
// except when synthesizing a single page for bare-array list responses.
type Pagination struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

// SinglePage is the pagination synthesized for list responses that arrive
// as a bare array.
func SinglePage(count int) Pagination {
	return Pagination{
		Total:      count,
		Page:       1,
		Limit:      count,
		TotalPages: 1,
	}
}

type PropertyList struct {
	Properties []Property `json:"properties"`
	Pagination Pagination `json:"pagination"`
}

type BlogList struct {
	Blogs      []Blog     `json:"blogs"`
	Pagination Pagination `json:"pagination"`
}

// TranslationResult is returned by the translate operations. The translated
// content shape differs per entity, so it stays raw.
type TranslationResult struct {
	ID                int             `json:"id"`
	TargetLanguage    string          `json:"targetLanguage"`
	TranslatedContent json.RawMessage `json:"translatedContent"`
	CreatedAt         string          `json:"createdAt"`
}
