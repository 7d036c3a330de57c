// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package runfile saves a pipeline run to a YAML file so results can be
// inspected or reloaded later without re-querying PubMed.
package runfile

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/paperscreen/pkg/types"
)

// RunFile is the on-disk representation of one report run.
type RunFile struct {
	Query   string                `yaml:"query"`
	Config  RunConfig             `yaml:"config"`
	PMIDs   []string              `yaml:"pmids,omitempty"`
	Papers  []types.FilteredPaper `yaml:"papers"`
	Summary RunSummary            `yaml:"summary"`
}

// RunConfig stores the settings that produced the results.
type RunConfig struct {
	MaxResults int `yaml:"max_results"`
}

// RunSummary stores result counts and a timestamp.
type RunSummary struct {
	Found     int       `yaml:"found"`
	Parsed    int       `yaml:"parsed"`
	Matched   int       `yaml:"matched"`
	Timestamp time.Time `yaml:"timestamp"`
}

// Write saves the query, the PMIDs it matched, and the filtered report to a
// YAML file.
func Write(path, query string, cfg types.PubMedConfig, pmids []string, parsed int, papers []types.FilteredPaper) error {
	rf := RunFile{
		Query:  query,
		Config: RunConfig{MaxResults: cfg.MaxResults},
		PMIDs:  pmids,
		Papers: papers,
		Summary: RunSummary{
			Found:     len(pmids),
			Parsed:    parsed,
			Matched:   len(papers),
			Timestamp: time.Now(),
		},
	}

	data, err := yaml.Marshal(&rf)
	if err != nil {
		return fmt.Errorf("marshaling run file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Read loads a previously saved run file from disk.
func Read(path string) (*RunFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading run file: %w", err)
	}
	var rf RunFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parsing run file: %w", err)
	}
	return &rf, nil
}
