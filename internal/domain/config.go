package domain

// ToolConfig holds presentation and bookkeeping options read from .dirqc.yaml.
// The rule tables themselves are fixed and deliberately not configurable.
type ToolConfig struct {
	// DefaultTestType is used when no --type flag is given.
	DefaultTestType string `yaml:"default_test_type" json:"default_test_type"`
	// History toggles run-history recording. Unset means enabled.
	History *bool `yaml:"history" json:"history,omitempty"`
	// ASCII switches report symbols to an ASCII-only fallback.
	ASCII bool `yaml:"ascii" json:"ascii"`
}

// DefaultConfig returns the options used when no config file exists.
func DefaultConfig() ToolConfig {
	return ToolConfig{DefaultTestType: string(TestTypeOther)}
}

// HistoryEnabled reports whether runs should be recorded.
func (c ToolConfig) HistoryEnabled() bool {
	return c.History == nil || *c.History
}
