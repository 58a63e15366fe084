package config

import (
	"errors"
	"fmt"
	"os"

	"trialboard/internal/model"

	"gopkg.in/yaml.v3"
)

// DefaultColumns are the clinical-trial workflow stages used when no
// columns file is configured.
func DefaultColumns() []model.Column {
	return []model.Column{
		{ID: "planning", Name: "Planning", Color: "#64748b"},
		{ID: "regulatory", Name: "Regulatory", Color: "#f59e0b"},
		{ID: "site-initiation", Name: "Site Initiation", Color: "#3b82f6"},
		{ID: "recruiting", Name: "Recruiting", Color: "#8b5cf6"},
		{ID: "study", Name: "Study", Color: "#22c55e"},
	}
}

type columnsFile struct {
	Columns []model.Column `yaml:"columns"`
}

// LoadColumns reads the ordered column list from path, or returns the
// defaults when path is empty.
func LoadColumns(path string) ([]model.Column, error) {
	if path == "" {
		return DefaultColumns(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read columns file: %w", err)
	}
	return ParseColumns(data)
}

// ParseColumns decodes and validates a columns document. Positions follow
// document order.
func ParseColumns(data []byte) ([]model.Column, error) {
	var f columnsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse columns: %w", err)
	}
	if len(f.Columns) == 0 {
		return nil, errors.New("columns file defines no columns")
	}

	seen := make(map[string]bool, len(f.Columns))
	for i := range f.Columns {
		c := &f.Columns[i]
		if c.ID == "" {
			return nil, fmt.Errorf("column %d has no id", i)
		}
		if seen[c.ID] {
			return nil, fmt.Errorf("duplicate column id %q", c.ID)
		}
		seen[c.ID] = true
		if c.Name == "" {
			c.Name = c.ID
		}
		c.Position = i
	}
	return f.Columns, nil
}
