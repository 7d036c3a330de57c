// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "paperscreen/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`
}

// PubMedConfig holds settings for the PubMed E-utilities stage.
type PubMedConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// MaxResults caps the number of PMIDs returned by a search (default 100).
	MaxResults int `json:"max_results" yaml:"max_results" mapstructure:"max_results"`

	// APIKey is an optional NCBI API key for higher rate limits.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty" mapstructure:"api_key"`
}

// ReportConfig holds settings for report output.
type ReportConfig struct {
	// OutputFile is the default path for the CSV report; "" means stdout.
	OutputFile string `json:"output_file,omitempty" yaml:"output_file,omitempty" mapstructure:"output_file"`
}

// LoggingConfig holds settings for diagnostic logging.
type LoggingConfig struct {
	// Level is the minimum log level (trace, debug, info, warn, error).
	Level string `json:"level" yaml:"level" mapstructure:"level"`

	// Format is the output format: console or json.
	Format string `json:"format" yaml:"format" mapstructure:"format"`

	// Output is the output destination: stderr or stdout.
	Output string `json:"output" yaml:"output" mapstructure:"output"`
}

// PipelineConfig groups all stage configurations for the pipeline and
// documents the shape of the paperscreen.yaml config file.
type PipelineConfig struct {
	PubMed  PubMedConfig  `json:"pubmed" yaml:"pubmed" mapstructure:"pubmed"`
	Report  ReportConfig  `json:"report" yaml:"report" mapstructure:"report"`
	Logging LoggingConfig `json:"logging" yaml:"logging" mapstructure:"logging"`
}
