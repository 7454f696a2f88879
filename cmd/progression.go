package cmd

import (
	"fmt"
	"os"
	"time"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/services"

	"gopkg.in/yaml.v3"
)

// progressionFile is the YAML layout of a progression table:
//
//	steps:
//	  - status: pending
//	    eta: 40-50 min
//	  - status: confirmed
//	    delay: 3s
//	    eta: 35-45 min
type progressionFile struct {
	Steps []progressionStep `yaml:"steps"`
}

type progressionStep struct {
	Status string `yaml:"status"`
	Delay  string `yaml:"delay"`
	ETA    string `yaml:"eta"`
}

// LoadProgression reads the table at path, or returns the built-in one when
// path is empty.
func LoadProgression(path string) (services.Progression, error) {
	if path == "" {
		return services.DefaultProgression(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return services.Progression{}, fmt.Errorf("read progression file: %w", err)
	}
	return ParseProgression(data)
}

func ParseProgression(data []byte) (services.Progression, error) {
	var file progressionFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return services.Progression{}, fmt.Errorf("parse progression file: %w", err)
	}

	delays := make(map[order.Status]time.Duration, len(file.Steps))
	etas := make(map[order.Status]string, len(file.Steps))
	for _, step := range file.Steps {
		status, err := order.ParseStatus(step.Status)
		if err != nil {
			return services.Progression{}, err
		}
		etas[status] = step.ETA
		if step.Delay == "" {
			continue
		}
		delay, err := time.ParseDuration(step.Delay)
		if err != nil {
			return services.Progression{}, fmt.Errorf("delay for %s: %w", status, err)
		}
		delays[status] = delay
	}

	p, err := services.NewProgression(delays, etas)
	if err != nil {
		return services.Progression{}, err
	}
	// Checkout starts at pending, so every later status needs a delay.
	if _, err = p.Plan(order.Pending); err != nil {
		return services.Progression{}, fmt.Errorf("progression file: %w", err)
	}
	return p, nil
}
