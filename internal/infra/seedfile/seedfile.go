// Package seedfile parses YAML seed files listing tasks to create at
// startup. Seed files are read once and never written back.
package seedfile

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// Draft describes one task entry in a seed file.
//
// Example file:
//
//	- title: Write report
//	  priority: high
//	- title: Call Bob
//	  description: "re: report"
//	  priority: low
type Draft struct {
	Title       string `yaml:"title" validate:"required,max=200"`
	Description string `yaml:"description" validate:"max=2000"`
	Priority    string `yaml:"priority" validate:"omitempty,oneof=low medium high"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Parse decodes and validates a seed file. Drafts without a priority
// fall back to the given default.
func Parse(content []byte, defaultPriority domain.Priority) ([]Draft, error) {
	var drafts []Draft
	if err := yaml.Unmarshal(content, &drafts); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}

	for i := range drafts {
		if drafts[i].Priority == "" {
			drafts[i].Priority = string(defaultPriority)
		}
		if err := validate.Struct(&drafts[i]); err != nil {
			return nil, fmt.Errorf("seed file entry %d: %w", i+1, err)
		}
	}
	return drafts, nil
}
