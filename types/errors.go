package types

import "fmt"

// ConfigurationError means a required setting is absent. It is raised
// before any network call is attempted.
type ConfigurationError struct {
	Setting string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s is not set", e.Setting)
}

// NewConfigurationError creates a ConfigurationError for a setting.
func NewConfigurationError(setting string) *ConfigurationError {
	return &ConfigurationError{Setting: setting}
}

// ValidationError means a local request failed type or range
// constraints before any network call.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return "validation error: " + e.Message
}

// NewValidationError wraps a validation failure message.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// NotFoundError means a registry operation referenced an unknown
// identifier.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

// InvalidStateError means a registry operation was attempted on a
// record whose status forbids it (terminal records never mutate).
type InvalidStateError struct {
	ID     string
	Status string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("task %s is already %s and cannot change state", e.ID, e.Status)
}
