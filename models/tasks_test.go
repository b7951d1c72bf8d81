package models

import (
	"encoding/json"
	"testing"
)

func TestTaskRunStatus_IsActive(t *testing.T) {
	active := map[TaskRunStatus]bool{
		TaskRunQueued:         true,
		TaskRunActionRequired: true,
		TaskRunRunning:        true,
		TaskRunCancelling:     true,
		TaskRunCompleted:      false,
		TaskRunFailed:         false,
		TaskRunCancelled:      false,
	}

	// Every known status must be classified, one way or the other.
	if len(active) != len(TaskRunStatuses) {
		t.Fatalf("expected %d statuses, classification table has %d", len(TaskRunStatuses), len(active))
	}

	for _, status := range TaskRunStatuses {
		want, ok := active[status]
		if !ok {
			t.Errorf("status %q missing from classification table", status)
			continue
		}
		if got := status.IsActive(); got != want {
			t.Errorf("IsActive(%q) = %v, want %v", status, got, want)
		}
	}
}

func TestTaskRun_UnmarshalJSON_KeepsUnknownFields(t *testing.T) {
	data := []byte(`{
		"run_id": "trun_123",
		"status": "running",
		"is_active": true,
		"processor": "base",
		"some_future_field": "value",
		"another": {"nested": 1}
	}`)

	var run TaskRun
	if err := json.Unmarshal(data, &run); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if run.RunID != "trun_123" {
		t.Errorf("RunID = %q, want %q", run.RunID, "trun_123")
	}
	if run.Status != TaskRunRunning {
		t.Errorf("Status = %q, want %q", run.Status, TaskRunRunning)
	}
	if run.Extra == nil {
		t.Fatal("Extra should capture unknown fields")
	}
	if _, ok := run.Extra["some_future_field"]; !ok {
		t.Error("Extra missing some_future_field")
	}
	if _, ok := run.Extra["another"]; !ok {
		t.Error("Extra missing another")
	}
	if _, ok := run.Extra["run_id"]; ok {
		t.Error("Extra should not contain known field run_id")
	}
}

func TestTaskRun_UnmarshalJSON_NoExtraWhenAllKnown(t *testing.T) {
	data := []byte(`{"run_id": "trun_1", "status": "queued", "processor": "base"}`)

	var run TaskRun
	if err := json.Unmarshal(data, &run); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if run.Extra != nil {
		t.Errorf("Extra = %v, want nil", run.Extra)
	}
}

func TestSearchRequest_OmitsAbsentFields(t *testing.T) {
	objective := "find recent climate reports"
	req := SearchRequest{Objective: &objective}

	data, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var wire map[string]any
	if err := json.Unmarshal(data, &wire); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	// Absent optionals must be dropped from the body, not sent as null.
	if len(wire) != 1 {
		t.Errorf("wire body has %d keys (%v), want exactly 1", len(wire), wire)
	}
	if wire["objective"] != objective {
		t.Errorf("objective = %v, want %q", wire["objective"], objective)
	}
}

func TestTaskRunRequest_Validation(t *testing.T) {
	tests := []struct {
		name    string
		req     TaskRunRequest
		wantErr bool
	}{
		{
			name:    "valid",
			req:     TaskRunRequest{Processor: "base", Input: "research something"},
			wantErr: false,
		},
		{
			name:    "missing processor",
			req:     TaskRunRequest{Input: "research something"},
			wantErr: true,
		},
		{
			name:    "missing input",
			req:     TaskRunRequest{Processor: "base"},
			wantErr: true,
		},
		{
			name: "metadata key too long",
			req: TaskRunRequest{
				Processor: "base",
				Input:     "x",
				Metadata:  map[string]string{"a_key_longer_than_sixteen": "v"},
			},
			wantErr: true,
		},
		{
			name: "metadata within bounds",
			req: TaskRunRequest{
				Processor: "base",
				Input:     "x",
				Metadata:  map[string]string{"team": "research"},
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(tt.req)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateStruct() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestFindAllRequest_RequiresMatchConditions(t *testing.T) {
	req := FindAllRequest{
		Objective:  "series B fintech startups",
		EntityType: "company",
		Generator:  GeneratorCore,
		MatchLimit: 50,
	}
	if err := ValidateStruct(req); err == nil {
		t.Error("expected validation error for missing match conditions")
	}

	req.MatchConditions = []MatchCondition{
		{Field: "funding_stage", Operator: "equals", Value: "series_b"},
	}
	if err := ValidateStruct(req); err != nil {
		t.Errorf("unexpected validation error: %v", err)
	}
}
