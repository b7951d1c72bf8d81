package models

import "encoding/json"

// ExcerptSettings tunes excerpt extraction when a bare boolean toggle
// is not enough.
type ExcerptSettings struct {
	MaxCharsPerResult *int `json:"max_chars_per_result,omitempty"`
	MaxCharsTotal     *int `json:"max_chars_total,omitempty"`
}

// FullContentSettings tunes full-content extraction.
type FullContentSettings struct {
	MaxChars *int `json:"max_chars,omitempty"`
}

// ExtractRequest is the body for the content extraction endpoint.
// Excerpts and FullContent accept either a bool toggle or a settings
// object on the wire, so they are typed as any; use a bool,
// *ExcerptSettings or *FullContentSettings.
type ExtractRequest struct {
	URLs          []string     `json:"urls" validate:"required,min=1,dive,url"`
	Objective     *string      `json:"objective,omitempty"`
	SearchQueries []string     `json:"search_queries,omitempty"`
	FetchPolicy   *FetchPolicy `json:"fetch_policy,omitempty"`
	Excerpts      any          `json:"excerpts,omitempty"`
	FullContent   any          `json:"full_content,omitempty"`
}

// ExtractResult is a successful extraction for one URL.
type ExtractResult struct {
	URL         string   `json:"url" validate:"required"`
	Title       *string  `json:"title,omitempty"`
	Excerpts    []string `json:"excerpts,omitempty"`
	FullContent *string  `json:"full_content,omitempty"`
}

// ExtractError is a failed extraction for one URL.
type ExtractError struct {
	URL            string  `json:"url" validate:"required"`
	ErrorType      string  `json:"error_type" validate:"required"`
	HTTPStatusCode *int    `json:"http_status_code,omitempty"`
	Content        *string `json:"content,omitempty"`
}

// ExtractResponse is the extraction endpoint response. Per-URL
// failures arrive in Errors alongside the successes; the call itself
// still succeeds. Unknown wire fields are kept in Extra.
type ExtractResponse struct {
	ExtractID string           `json:"extract_id" validate:"required"`
	Results   []ExtractResult  `json:"results" validate:"dive"`
	Errors    []ExtractError   `json:"errors" validate:"dive"`
	Warnings  []map[string]any `json:"warnings,omitempty"`
	Usage     map[string]any   `json:"usage,omitempty"`

	Extra map[string]any `json:"-"`
}

func (r *ExtractResponse) UnmarshalJSON(data []byte) error {
	type alias ExtractResponse
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	a.Extra = extraFields(data, "extract_id", "results", "errors", "warnings", "usage")
	*r = ExtractResponse(a)
	return nil
}
