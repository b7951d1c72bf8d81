package models

import (
	"encoding/json"
	"time"
)

// FindAllGenerator is the entity-discovery processing tier.
type FindAllGenerator string

const (
	GeneratorBase    FindAllGenerator = "base"
	GeneratorCore    FindAllGenerator = "core"
	GeneratorPro     FindAllGenerator = "pro"
	GeneratorPreview FindAllGenerator = "preview"
)

// FindAllRunStatus is the entity-discovery run lifecycle status.
type FindAllRunStatus string

const (
	FindAllQueued    FindAllRunStatus = "queued"
	FindAllActive    FindAllRunStatus = "active"
	FindAllCompleted FindAllRunStatus = "completed"
	FindAllCancelled FindAllRunStatus = "cancelled"
)

// MatchCondition is one matching criterion for entity discovery.
// Conditions come from the caller; nothing defaults them.
type MatchCondition struct {
	Field    string `json:"field" validate:"required"`
	Operator string `json:"operator" validate:"required"`
	Value    any    `json:"value" validate:"required"`
}

// FindAllRequest is the body for creating an entity-discovery run.
type FindAllRequest struct {
	Objective       string            `json:"objective" validate:"required,min=1"`
	EntityType      string            `json:"entity_type" validate:"required"`
	MatchConditions []MatchCondition  `json:"match_conditions" validate:"required,min=1,dive"`
	Generator       FindAllGenerator  `json:"generator" validate:"required,oneof=base core pro preview"`
	MatchLimit      int               `json:"match_limit" validate:"gte=5,lte=1000"`
	ExcludeList     []string          `json:"exclude_list,omitempty"`
	Metadata        map[string]string `json:"metadata,omitempty" validate:"omitempty,dive,keys,max=16,endkeys,max=512"`
	Webhook         *WebhookConfig    `json:"webhook,omitempty"`
}

// FindAllStatusMetrics tracks run progress.
type FindAllStatusMetrics struct {
	MatchesFound         int `json:"matches_found"`
	PagesSearched        int `json:"pages_searched"`
	EnrichmentsCompleted int `json:"enrichments_completed"`
}

// FindAllStatus is the nested status object of a run.
type FindAllStatus struct {
	Status   FindAllRunStatus      `json:"status" validate:"required,oneof=queued active completed cancelled"`
	IsActive bool                  `json:"is_active"`
	Metrics  *FindAllStatusMetrics `json:"metrics,omitempty"`
}

// FindAllRun is the entity-discovery run resource. Unknown wire fields
// are kept in Extra.
type FindAllRun struct {
	FindAllID  string            `json:"findall_id" validate:"required"`
	Status     FindAllStatus     `json:"status"`
	Generator  FindAllGenerator  `json:"generator" validate:"required,oneof=base core pro preview"`
	Metadata   map[string]string `json:"metadata,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
	ModifiedAt time.Time         `json:"modified_at"`

	Extra map[string]any `json:"-"`
}

func (r *FindAllRun) UnmarshalJSON(data []byte) error {
	type alias FindAllRun
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	a.Extra = extraFields(data,
		"findall_id", "status", "generator", "metadata", "created_at", "modified_at")
	*r = FindAllRun(a)
	return nil
}

// ExtendFindAllRequest asks a run for more matches.
type ExtendFindAllRequest struct {
	AdditionalMatches int `json:"additional_matches" validate:"gte=1"`
}

// EnrichmentRequest adds an enrichment to an existing run.
type EnrichmentRequest struct {
	EnrichmentType string         `json:"enrichment_type" validate:"required"`
	Fields         []string       `json:"fields" validate:"required,min=1"`
	Options        map[string]any `json:"options,omitempty"`
}

// FindAllMatch is one discovered entity.
type FindAllMatch struct {
	EntityID   string         `json:"entity_id" validate:"required"`
	EntityType string         `json:"entity_type" validate:"required"`
	Data       map[string]any `json:"data,omitempty"`
	Confidence float64        `json:"confidence" validate:"gte=0,lte=1"`
	SourceURL  *string        `json:"source_url,omitempty"`
}

// FindAllResult is the full result of an entity-discovery run.
type FindAllResult struct {
	FindAllID    string         `json:"findall_id" validate:"required"`
	Matches      []FindAllMatch `json:"matches" validate:"dive"`
	TotalMatches int            `json:"total_matches"`
	Schema       map[string]any `json:"schema,omitempty"`
}
