package server

import "github.com/webwinghq/webwing/models"

// Simplified request bodies accepted by the proxy. The full remote
// schemas live in models; these cover the common fields and let the
// proxy fill in the rest.

type searchBody struct {
	Objective     *string  `json:"objective"`
	SearchQueries []string `json:"search_queries"`
	MaxResults    int      `json:"max_results" validate:"omitempty,gte=1,lte=100"`
	Mode          string   `json:"mode" validate:"omitempty,oneof=one-shot agentic"`
}

type extractBody struct {
	URLs        []string `json:"urls" validate:"required,min=1"`
	Objective   *string  `json:"objective"`
	FullContent bool     `json:"full_content"`
}

type monitorCreateBody struct {
	Query      string  `json:"query" validate:"required,min=1"`
	Cadence    string  `json:"cadence" validate:"omitempty,oneof=hourly daily weekly"`
	WebhookURL *string `json:"webhook_url" validate:"omitempty,url"`
}

type monitorUpdateBody struct {
	Query   *string `json:"query"`
	Cadence *string `json:"cadence" validate:"omitempty,oneof=hourly daily weekly"`
	Status  *string `json:"status" validate:"omitempty,oneof=active canceled"`
}

type taskRunBody struct {
	Processor         string `json:"processor" validate:"required"`
	Input             string `json:"input" validate:"required"`
	WaitForCompletion *bool  `json:"wait_for_completion"`
}

type taskGroupBody struct {
	Processor string  `json:"processor" validate:"required"`
	Name      *string `json:"name"`
}

type findallBody struct {
	Objective       string                  `json:"objective" validate:"required,min=1"`
	EntityType      string                  `json:"entity_type" validate:"required"`
	MatchConditions []models.MatchCondition `json:"match_conditions" validate:"required,min=1,dive"`
	MatchLimit      int                     `json:"match_limit" validate:"omitempty,gte=5,lte=1000"`
	Generator       string                  `json:"generator" validate:"omitempty,oneof=base core pro preview"`
}

type findallExtendBody struct {
	AdditionalMatches int `json:"additional_matches" validate:"omitempty,gte=1"`
}

type findallEnrichBody struct {
	EnrichmentType string   `json:"enrichment_type" validate:"required"`
	Fields         []string `json:"fields" validate:"required,min=1"`
}

type dispatchBody struct {
	ID          string `json:"id"`
	Project     string `json:"project" validate:"required"`
	Description string `json:"description" validate:"required"`
	Priority    int    `json:"priority" validate:"omitempty,gte=1,lte=10"`
	TurnBudget  int    `json:"turn_budget" validate:"omitempty,gte=1,lte=100"`
}

// healthResponse reports process and configuration status.
type healthResponse struct {
	Status                string `json:"status"`
	ParallelAPIConfigured bool   `json:"parallel_api_configured"`
	Version               string `json:"version"`
}
