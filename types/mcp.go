package types

// MCP tool parameter types. Field tags carry the schema descriptions
// the SDK publishes to clients.

// SearchToolParams for running a web search.
type SearchToolParams struct {
	Objective     string   `json:"objective,omitempty" mcp:"Natural language description of what to find"`
	SearchQueries []string `json:"search_queries,omitempty" mcp:"Explicit search queries to run"`
	MaxResults    int      `json:"max_results,omitempty" mcp:"Maximum number of results (1-100, default 10)"`
	Mode          string   `json:"mode,omitempty" mcp:"Search mode: one-shot or agentic"`
}

// ExtractToolParams for extracting content from URLs.
type ExtractToolParams struct {
	URLs        []string `json:"urls" mcp:"URLs to extract content from (required)"`
	Objective   string   `json:"objective,omitempty" mcp:"Focus extraction on this objective"`
	FullContent bool     `json:"full_content,omitempty" mcp:"Return full page content instead of excerpts only"`
}

// MonitorCreateParams for creating a recurring monitor.
type MonitorCreateParams struct {
	Query      string `json:"query" mcp:"What to monitor for (required)"`
	Cadence    string `json:"cadence,omitempty" mcp:"Execution cadence: hourly, daily or weekly (default daily)"`
	WebhookURL string `json:"webhook_url,omitempty" mcp:"Webhook URL to notify on new events"`
}

// MonitorListParams for listing monitors. No filters are supported.
type MonitorListParams struct{}

// MonitorDeleteParams for deleting a monitor.
type MonitorDeleteParams struct {
	MonitorID string `json:"monitor_id" mcp:"Monitor ID to delete (required)"`
}

// TaskRunParams for submitting a deep-research task run.
type TaskRunParams struct {
	Processor         string `json:"processor" mcp:"Processor tier to run the task on (required)"`
	Input             string `json:"input" mcp:"Task input text (required)"`
	WaitForCompletion *bool  `json:"wait_for_completion,omitempty" mcp:"Block until the run finishes (default true)"`
}

// TaskStatusParams for checking a task run.
type TaskStatusParams struct {
	RunID string `json:"run_id" mcp:"Task run ID to check (required)"`
}

// MatchConditionParam is one entity-matching criterion. Conditions are
// required on every discovery run and always come from the caller.
type MatchConditionParam struct {
	Field    string `json:"field" mcp:"Entity field the condition applies to (required)"`
	Operator string `json:"operator" mcp:"Comparison operator, e.g. equals, contains, gt (required)"`
	Value    string `json:"value" mcp:"Value to compare against (required)"`
}

// FindAllParams for starting an entity-discovery run.
type FindAllParams struct {
	Objective       string                `json:"objective" mcp:"What kind of entities to discover (required)"`
	EntityType      string                `json:"entity_type" mcp:"Type of entity to find, e.g. company, person (required)"`
	MatchConditions []MatchConditionParam `json:"match_conditions" mcp:"Criteria an entity must satisfy to match (required)"`
	MatchLimit      int                   `json:"match_limit,omitempty" mcp:"Maximum matches to find (5-1000, default 50)"`
	Generator       string                `json:"generator,omitempty" mcp:"Processing tier: base, core, pro or preview (default core)"`
}

// FindAllResultParams for fetching discovery matches.
type FindAllResultParams struct {
	FindAllID string `json:"findall_id" mcp:"Entity-discovery run ID (required)"`
}

// DispatchTaskParams for recording a local agent task.
type DispatchTaskParams struct {
	Project     string `json:"project" mcp:"Project the task belongs to (required)"`
	Description string `json:"description" mcp:"What the dispatched worker should do (required)"`
	Priority    int    `json:"priority,omitempty" mcp:"Priority 1-10, higher is more urgent (default 5)"`
	TurnBudget  int    `json:"turn_budget,omitempty" mcp:"Maximum agent turns allowed (1-100, default 10)"`
}

// DispatchStatusParams for checking a dispatched task.
type DispatchStatusParams struct {
	TaskID string `json:"task_id" mcp:"Dispatched task ID (required)"`
}

// DispatchCancelParams for cancelling a dispatched task.
type DispatchCancelParams struct {
	TaskID string `json:"task_id" mcp:"Dispatched task ID to cancel (required)"`
}

// MCP tool response types.

// SearchToolResponse summarises a search call.
type SearchToolResponse struct {
	SearchID    string   `json:"search_id"`
	ResultCount int      `json:"result_count"`
	URLs        []string `json:"urls"`
}

// ExtractToolResponse summarises an extraction call.
type ExtractToolResponse struct {
	ExtractID    string `json:"extract_id"`
	ResultCount  int    `json:"result_count"`
	FailureCount int    `json:"failure_count"`
}

// MonitorToolResponse describes one monitor.
type MonitorToolResponse struct {
	MonitorID string `json:"monitor_id"`
	Query     string `json:"query"`
	Status    string `json:"status"`
	Cadence   string `json:"cadence"`
}

// MonitorListToolResponse lists monitors.
type MonitorListToolResponse struct {
	Monitors []MonitorToolResponse `json:"monitors"`
	Count    int                   `json:"count"`
}

// MonitorDeleteToolResponse confirms a deletion.
type MonitorDeleteToolResponse struct {
	MonitorID string `json:"monitor_id"`
	Deleted   bool   `json:"deleted"`
}

// TaskRunToolResponse describes a task run and, when completed, its
// result.
type TaskRunToolResponse struct {
	RunID    string         `json:"run_id"`
	Status   string         `json:"status"`
	IsActive bool           `json:"is_active"`
	Result   map[string]any `json:"result,omitempty"`
}

// FindAllToolResponse describes an entity-discovery run.
type FindAllToolResponse struct {
	FindAllID    string `json:"findall_id"`
	Status       string `json:"status"`
	IsActive     bool   `json:"is_active"`
	MatchesFound int    `json:"matches_found,omitempty"`
}

// FindAllResultToolResponse carries discovery matches. Matches beyond
// the truncation cap are counted but not returned.
type FindAllResultToolResponse struct {
	FindAllID    string           `json:"findall_id"`
	TotalMatches int              `json:"total_matches"`
	Matches      []map[string]any `json:"matches"`
	Truncated    bool             `json:"truncated"`
}

// DispatchToolResponse describes a dispatched task record.
type DispatchToolResponse struct {
	TaskID      string `json:"task_id"`
	Status      string `json:"status"`
	Project     string `json:"project"`
	Description string `json:"description"`
	Priority    int    `json:"priority"`
	TurnBudget  int    `json:"turn_budget"`
	CreatedAt   string `json:"created_at"`
	CompletedAt string `json:"completed_at,omitempty"`
}
