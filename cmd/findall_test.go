package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMatchConditions(t *testing.T) {
	tests := []struct {
		name    string
		raw     []string
		wantErr bool
	}{
		{"empty input", nil, true},
		{"valid condition", []string{"industry:contains:fintech"}, false},
		{"value with colons", []string{"homepage:equals:https://example.com"}, false},
		{"missing value", []string{"industry:contains"}, true},
		{"empty field", []string{":contains:fintech"}, true},
		{"empty operator", []string{"industry::fintech"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conditions, err := parseMatchConditions(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Len(t, conditions, len(tt.raw))
		})
	}
}

func TestParseMatchConditions_ValuesSurviveSplitting(t *testing.T) {
	conditions, err := parseMatchConditions([]string{"homepage:equals:https://example.com:8080/path"})
	require.NoError(t, err)
	require.Len(t, conditions, 1)
	assert.Equal(t, "homepage", conditions[0].Field)
	assert.Equal(t, "equals", conditions[0].Operator)
	assert.Equal(t, "https://example.com:8080/path", conditions[0].Value)
}
