package models

import "encoding/json"

// SearchMode selects the search processing mode.
type SearchMode string

const (
	SearchModeOneShot SearchMode = "one-shot"
	SearchModeAgentic SearchMode = "agentic"
)

// ExcerptConfig bounds the size of result excerpts.
type ExcerptConfig struct {
	MaxCharsPerResult *int `json:"max_chars_per_result,omitempty"`
	MaxCharsTotal     *int `json:"max_chars_total,omitempty"`
}

// SourcePolicy filters which sources may appear in results. AfterDate
// is only honoured by the search endpoint.
type SourcePolicy struct {
	IncludeDomains []string `json:"include_domains,omitempty"`
	ExcludeDomains []string `json:"exclude_domains,omitempty"`
	AfterDate      *string  `json:"after_date,omitempty"`
}

// FetchPolicy controls cached vs. live content retrieval.
type FetchPolicy struct {
	MaxAgeSeconds        *int  `json:"max_age_seconds,omitempty"`
	TimeoutSeconds       *int  `json:"timeout_seconds,omitempty"`
	DisableCacheFallback *bool `json:"disable_cache_fallback,omitempty"`
}

// SearchRequest is the body for the web search endpoint. At least one
// of Objective or SearchQueries should be set; the service rejects
// empty requests.
type SearchRequest struct {
	Objective     *string        `json:"objective,omitempty"`
	SearchQueries []string       `json:"search_queries,omitempty"`
	Mode          *SearchMode    `json:"mode,omitempty" validate:"omitempty,oneof=one-shot agentic"`
	MaxResults    *int           `json:"max_results,omitempty" validate:"omitempty,gte=1,lte=100"`
	Excerpts      *ExcerptConfig `json:"excerpts,omitempty"`
	SourcePolicy  *SourcePolicy  `json:"source_policy,omitempty"`
	FetchPolicy   *FetchPolicy   `json:"fetch_policy,omitempty"`
}

// SearchResult is a single web search hit.
type SearchResult struct {
	URL         string   `json:"url" validate:"required"`
	Title       *string  `json:"title,omitempty"`
	PublishDate *string  `json:"publish_date,omitempty"`
	Excerpts    []string `json:"excerpts,omitempty"`
}

// SearchResponse is the search endpoint response. Unknown wire fields
// are kept in Extra.
type SearchResponse struct {
	SearchID string           `json:"search_id" validate:"required"`
	Results  []SearchResult   `json:"results" validate:"dive"`
	Warnings []map[string]any `json:"warnings,omitempty"`
	Usage    []map[string]any `json:"usage,omitempty"`

	Extra map[string]any `json:"-"`
}

func (r *SearchResponse) UnmarshalJSON(data []byte) error {
	type alias SearchResponse
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	a.Extra = extraFields(data, "search_id", "results", "warnings", "usage")
	*r = SearchResponse(a)
	return nil
}
